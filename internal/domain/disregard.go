package domain

import (
	"fmt"
	"sort"
)

// DisregardTreatment classifies how a category is handled in a means test.
type DisregardTreatment string

const (
	// TreatmentFull removes the whole reported amount from assessment.
	TreatmentFull DisregardTreatment = "full"
	// TreatmentPartial means the amount stays assessable unless an explicit
	// deduction (for income, disability-related expenditure) is supplied.
	TreatmentPartial DisregardTreatment = "partial"
	// TreatmentNone means the category is always fully assessable.
	TreatmentNone DisregardTreatment = "none"
	// TreatmentTemporary removes the amount for a limited number of weeks
	// from the event that triggered the disregard.
	TreatmentTemporary DisregardTreatment = "temporary"
)

// DisregardKind separates income-side from asset-side categories.
type DisregardKind string

const (
	DisregardIncome DisregardKind = "income"
	DisregardAsset  DisregardKind = "asset"
)

// DisregardRule is one entry in the disregard catalog.
type DisregardRule struct {
	Category      string             `yaml:"category" json:"category"`
	Kind          DisregardKind      `yaml:"kind" json:"kind"`
	Treatment     DisregardTreatment `yaml:"treatment" json:"treatment"`
	Discretionary bool               `yaml:"discretionary" json:"discretionary"`
	DurationWeeks int                `yaml:"duration_weeks,omitempty" json:"duration_weeks,omitempty"`
	Description   string             `yaml:"description,omitempty" json:"description,omitempty"`
}

// DisregardCatalog maps category names to their treatment. Loaded once at
// startup, read-only afterwards; a new legislative year replaces the whole
// catalog rather than editing entries in place.
type DisregardCatalog struct {
	rules map[DisregardKind]map[string]DisregardRule
}

// NewDisregardCatalog builds a catalog from a rule list, rejecting duplicate
// category names within a kind.
func NewDisregardCatalog(rules []DisregardRule) (*DisregardCatalog, error) {
	c := &DisregardCatalog{rules: map[DisregardKind]map[string]DisregardRule{
		DisregardIncome: {},
		DisregardAsset:  {},
	}}
	for _, r := range rules {
		if r.Kind != DisregardIncome && r.Kind != DisregardAsset {
			return nil, fmt.Errorf("disregard %q: unknown kind %q", r.Category, r.Kind)
		}
		switch r.Treatment {
		case TreatmentFull, TreatmentPartial, TreatmentNone, TreatmentTemporary:
		default:
			return nil, fmt.Errorf("disregard %q: unknown treatment %q", r.Category, r.Treatment)
		}
		if r.Treatment == TreatmentTemporary && r.DurationWeeks <= 0 {
			return nil, fmt.Errorf("disregard %q: temporary treatment requires duration_weeks", r.Category)
		}
		if _, dup := c.rules[r.Kind][r.Category]; dup {
			return nil, fmt.Errorf("duplicate %s disregard category %q", r.Kind, r.Category)
		}
		c.rules[r.Kind][r.Category] = r
	}
	return c, nil
}

// Lookup returns the rule for a category of the given kind.
func (c *DisregardCatalog) Lookup(kind DisregardKind, category string) (DisregardRule, bool) {
	r, ok := c.rules[kind][category]
	return r, ok
}

// Rules returns every rule of the given kind sorted by category name.
func (c *DisregardCatalog) Rules(kind DisregardKind) []DisregardRule {
	out := make([]DisregardRule, 0, len(c.rules[kind]))
	for _, r := range c.rules[kind] {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// AllRules returns the full catalog, assets first then income, each sorted.
func (c *DisregardCatalog) AllRules() []DisregardRule {
	return append(c.Rules(DisregardAsset), c.Rules(DisregardIncome)...)
}
