package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layouts the report source is known to emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 03:04:05 PM",
	"1/2/2006 3:04:05 PM",
	"01/02/2006",
	"1/2/2006",
}

var mdyPrefix = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)

// DisplayDate renders a source date value as YYYY-MM-DD. Unparseable values
// degrade to the original string, never an error.
func DisplayDate(val string) string {
	s := strings.TrimSpace(val)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	// Last resort for MM/DD/YYYY prefixes the layouts above missed.
	if m := mdyPrefix.FindStringSubmatch(s); m != nil {
		mm, _ := strconv.Atoi(m[1])
		dd, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d-%02d", m[3], mm, dd)
	}
	return s
}
