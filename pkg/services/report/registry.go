package report

import (
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/de-tools/fiscal-atlas/pkg/services/format"
)

// Kind distinguishes the two report families: cash reports carry one value
// grid per filing, department reports carry one row per department and
// variable with restatement semantics.
type Kind string

const (
	KindCash       Kind = "cash"
	KindDepartment Kind = "department"
)

// Definition is the static configuration for one report type: where its
// table window sits, which categories appear in which order, what must
// reconcile, and how overlapping filings dedup.
type Definition struct {
	Name string
	Kind Kind

	// Window extraction (cash reports only).
	Anchor      string
	StopAnchor  string
	TotalColumn bool

	// Ordered category identifiers, one per expected window row.
	Categories []domain.CategoryKey

	ValidationGroups []domain.ValidationGroup
	DedupPolicies    []domain.DedupPolicy

	// Formatting is the category presentation table. Nil for report types
	// whose series are published with canonical keys.
	Formatting domain.FormattingTable
}

// Registry manages report type definitions.
type Registry interface {
	// Register adds a new report type definition
	Register(def Definition) error
	// Get returns the definition for the named report type
	Get(name string) (Definition, error)
	// ListReportTypes returns the registered report type names, sorted
	ListReportTypes() []string
}

type registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() Registry {
	return &registry{defs: make(map[string]Definition)}
}

// NewDefaultRegistry creates a registry populated with the built-in report
// family.
func NewDefaultRegistry() Registry {
	return NewRegistryWithCatalog(nil)
}

// NewRegistryWithCatalog creates the default registry with per-report-type
// formatting overrides layered over the built-in presentation tables.
func NewRegistryWithCatalog(catalog map[string]domain.FormattingTable) Registry {
	r := NewRegistry()
	for _, def := range builtinDefinitions() {
		if overrides, ok := catalog[def.Name]; ok {
			def.Formatting = format.MergeCatalog(def.Formatting, overrides)
		}
		// Built-in names are unique by construction.
		_ = r.Register(def)
	}
	return r
}

func (r *registry) Register(def Definition) error {
	if def.Name == "" {
		return fmt.Errorf("report type name cannot be empty")
	}
	if def.Kind == KindCash && len(def.Categories) == 0 {
		return fmt.Errorf("report type %q needs an ordered category list", def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("report type %q is already registered", def.Name)
	}

	r.defs[def.Name] = def
	return nil
}

func (r *registry) Get(name string) (Definition, error) {
	r.mu.RLock()
	def, exists := r.defs[name]
	r.mu.RUnlock()

	if !exists {
		return Definition{}, &domain.UnknownReportTypeError{Name: name}
	}
	return def, nil
}

func (r *registry) ListReportTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
