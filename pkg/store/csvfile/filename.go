package csvfile

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// Processed filings are named FY<year>_Q<quarter>.csv; the fiscal year and
// quarter are filename metadata, not file content.
var filingNamePattern = regexp.MustCompile(`FY(\d{4})[-_]Q([1-4])`)

// FilingName returns the canonical file name for a filing's extract.
func FilingName(fiscalYear, quarter int) string {
	return fmt.Sprintf("FY%04d_Q%d.csv", fiscalYear, quarter)
}

// ParseFilingName extracts the fiscal year and quarter from a processed file
// path.
func ParseFilingName(path string) (fiscalYear, quarter int, err error) {
	match := filingNamePattern.FindStringSubmatch(filepath.Base(path))
	if match == nil {
		return 0, 0, fmt.Errorf("cannot parse fiscal year/quarter from %q", filepath.Base(path))
	}
	fiscalYear, _ = strconv.Atoi(match[1])
	quarter, _ = strconv.Atoi(match[2])
	return fiscalYear, quarter, nil
}
