package report

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// SampleSource generates an offline demo row set shaped like the live
// endpoint's. The first row is fixed so documented demo links (?c=86,
// #task=17096) always resolve.
type SampleSource struct {
	faker *gofakeit.Faker
}

// NewSampleSource seeds a deterministic generator.
func NewSampleSource(seed int64) *SampleSource {
	return &SampleSource{faker: gofakeit.New(seed)}
}

var sampleStatuses = []string{"Done", "In Progress", "Open"}

func (s *SampleSource) Fetch(_ context.Context) ([]Row, error) {
	rows := []Row{
		{
			"Number":                     "17096",
			"Name":                       "MasTec Union Ridge CMS From AWD",
			"ReleasesBOLTrackingNumber":  "https://parcelsapp.com/en/tracking/836689906",
			"MilestoneName":              "Union Ridge",
			"ProjectName":                "Releases",
			"Type":                       "Releases",
			"Status":                     "Done",
			"DueDate":                    "08/26/2025 11:59:59 PM",
			"CompletionDate":             "08/22/2025 01:12:22 PM",
			"ReleasesContractDate":       "09/04/2025",
			"CustomerName":               "MasTec, Inc.",
			"CustomerNumber":             "86",
			"CustomerAddressFullAddress": "P.O. Box 38, Clinton, IN 47842, USA",
			"QuoteShipToLocation":        "MasTec - Union Ridge",
			"ReleasesItemNo1":            "CMS Cabinet",
			"ReleasesItem1Qty":           "2",
			"ReleasesItemNo2":            "Anchor Kit",
			"ReleasesItem2Qty":           "2 boxes",
		},
	}

	f := s.faker
	number := 17100
	for c := 0; c < 6; c++ {
		customer := f.Company()
		customerNumber := fmt.Sprintf("%d", f.Number(100, 999))
		addr := f.Address()
		address := fmt.Sprintf("%s, %s, %s %s, USA", addr.Street, addr.City, addr.State, addr.Zip)

		milestones := f.Number(1, 3)
		for m := 0; m < milestones; m++ {
			milestone := f.City()
			tasks := f.Number(1, 4)
			for t := 0; t < tasks; t++ {
				number++
				status := sampleStatuses[f.Number(0, len(sampleStatuses)-1)]
				due := f.DateRange(time.Now().AddDate(0, -2, 0), time.Now().AddDate(0, 1, 0))

				row := Row{
					"Number":                     fmt.Sprintf("%d", number),
					"Name":                       fmt.Sprintf("%s %s %s", customer, milestone, f.Word()),
					"MilestoneName":              milestone,
					"ProjectName":                "Releases",
					"Type":                       "Releases",
					"Status":                     status,
					"DueDate":                    due.Format("01/02/2006 03:04:05 PM"),
					"ReleasesContractDate":       due.AddDate(0, 0, 9).Format("01/02/2006"),
					"CustomerName":               customer,
					"CustomerNumber":             customerNumber,
					"CustomerAddressFullAddress": address,
					"QuoteShipToLocation":        fmt.Sprintf("%s - %s", customer, milestone),
				}
				if status == "Done" {
					row["CompletionDate"] = due.AddDate(0, 0, -f.Number(1, 6)).Format("01/02/2006 03:04:05 PM")
				}
				items := f.Number(0, 3)
				for i := 1; i <= items; i++ {
					row[fmt.Sprintf("ReleasesItemNo%d", i)] = f.ProductName()
					if f.Bool() {
						row[fmt.Sprintf("ReleasesItem%dQty", i)] = fmt.Sprintf("%d", f.Number(1, 40))
					} else {
						row[fmt.Sprintf("ReleasesItem%dQty", i)] = fmt.Sprintf("%d pallets", f.Number(1, 6))
					}
				}
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}
