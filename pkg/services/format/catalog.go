package format

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

// LoadCatalogFile reads presentation-label overrides from an ini file with
// one section per report type:
//
//	[net-cash-flow]
//	tran = TRAN
//	closing_balance = Closing Balance
//
// The returned tables replace entries of the built-in defaults key by key;
// sections for unknown report types are preserved so the caller can decide
// whether that is drift.
func LoadCatalogFile(path string) (map[string]domain.FormattingTable, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	catalogs := make(map[string]domain.FormattingTable)
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection || len(section.Keys()) == 0 {
			continue
		}
		table := make(domain.FormattingTable, len(section.Keys()))
		for _, key := range section.Keys() {
			table[domain.CategoryKey(key.Name())] = key.String()
		}
		catalogs[section.Name()] = table
	}
	return catalogs, nil
}

// MergeCatalog overlays override labels onto a base table without mutating
// either input.
func MergeCatalog(base domain.FormattingTable, overrides domain.FormattingTable) domain.FormattingTable {
	merged := make(domain.FormattingTable, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
