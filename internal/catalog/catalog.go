package catalog

import (
	"regexp"
	"sort"
)

// DataType identifies how a matched value is coerced before it is stored.
type DataType string

const (
	TypeString         DataType = "string"
	TypeInteger        DataType = "integer"
	TypeFloat          DataType = "float"
	TypeDate           DataType = "date"
	TypeCurrency       DataType = "currency"
	TypeCurrencyTriple DataType = "currency_triple"
)

// FieldDefinition is an immutable descriptor for one extractable field.
// Patterns are tried in order; the first match wins. Priority 1 fields are
// extracted before priority 2 fields, and a field already holding a value is
// never overwritten by a later pass.
type FieldDefinition struct {
	Name        string
	DisplayName string
	Patterns    []*regexp.Regexp
	DataType    DataType
	Category    string
	Required    bool
	Priority    int
	Validate    *regexp.Regexp
}

// Catalog is the process-wide registry of field definitions. Read-only after
// New returns; safe for concurrent use by independent parse workers.
type Catalog struct {
	defs   []FieldDefinition
	byName map[string]*FieldDefinition
	order  []string
}

// New builds the catalog with every known field definition compiled.
func New() *Catalog {
	defs := fieldDefinitions()

	c := &Catalog{
		defs:   defs,
		byName: make(map[string]*FieldDefinition, len(defs)),
	}
	for i := range c.defs {
		c.byName[c.defs[i].Name] = &c.defs[i]
	}

	// Extraction order: by priority, declaration order within a priority.
	idx := make([]int, len(c.defs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return c.defs[idx[a]].Priority < c.defs[idx[b]].Priority
	})
	c.order = make([]string, len(idx))
	for i, j := range idx {
		c.order[i] = c.defs[j].Name
	}
	return c
}

// Field returns the definition for name, or nil if unknown.
func (c *Catalog) Field(name string) *FieldDefinition {
	return c.byName[name]
}

// Names returns every field name in extraction (priority) order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of field definitions.
func (c *Catalog) Len() int { return len(c.defs) }

// SurchargeNames returns the names of every currency-triple surcharge field,
// in declaration order. Line totals are excluded; they are derived, not
// extracted surcharges.
func (c *Catalog) SurchargeNames() []string {
	var out []string
	for i := range c.defs {
		d := &c.defs[i]
		if d.DataType == TypeCurrencyTriple && d.Category == categorySurcharges {
			out = append(out, d.Name)
		}
	}
	return out
}

// FieldsByCategory groups field names by category, priority order within
// each group, categories in the fixed output order.
func (c *Catalog) FieldsByCategory() map[string][]string {
	groups := make(map[string][]string)
	for _, name := range c.order {
		d := c.byName[name]
		groups[d.Category] = append(groups[d.Category], name)
	}
	return groups
}

// CategoryOrder is the fixed category sequence used for workbook output.
func (c *Catalog) CategoryOrder() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
