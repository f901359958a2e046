package service

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kwren/shipview/internal/filtering"
	"github.com/kwren/shipview/internal/normalize"
)

const exportSheet = "Deliveries"

var exportHeader = []string{
	"Customer", "Milestone", "Address", "Task #", "Task",
	"Status", "Due", "Completed", "Contract", "Ship To", "Items",
}

// Exporter writes the currently visible grouped view to an xlsx workbook.
type Exporter struct{}

// Export saves one workbook with a row per visible record, in display order.
func (Exporter) Export(path string, sections []filtering.Section) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRow(f, 1, exportHeader); err != nil {
		return err
	}

	rowIdx := 2
	for _, sec := range sections {
		for _, rec := range sec.Records {
			cells := []string{
				sec.Customer,
				sec.Milestone,
				sec.Address,
				rec.Number(),
				rec.Name(),
				rec.Status(),
				rec.DueDisplay,
				rec.CompletionDisplay,
				rec.ContractDisplay,
				rec.ShipTo(),
				joinItems(rec.Items),
			}
			if err := writeRow(f, rowIdx, cells); err != nil {
				return err
			}
			rowIdx++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, cells []string) error {
	for col, v := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, name, v); err != nil {
			return fmt.Errorf("set cell %s: %w", name, err)
		}
	}
	return nil
}

func joinItems(items []normalize.LineItem) string {
	var parts []string
	for _, it := range items {
		if it.Qty.IsEmpty() {
			parts = append(parts, it.Name)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s x%s", it.Name, it.Qty.Display()))
	}
	return strings.Join(parts, "; ")
}
