package config

import (
	"fmt"
	"os"
	"sort"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/carefund/carecalc/internal/calculation"
	"github.com/carefund/carecalc/internal/domain"
	"github.com/carefund/carecalc/pkg/dateutil"
)

// Registry holds the process-wide threshold records and disregard catalog.
// Both are loaded once at startup and treated as read-only by calculations;
// when a new legislative year becomes effective the whole set is replaced via
// an atomic swap, never edited field by field, so a concurrent reader can
// never observe a half-updated threshold set.
type Registry struct {
	thresholds atomic.Pointer[[]domain.Thresholds]
	catalog    atomic.Pointer[domain.DisregardCatalog]
}

// NewRegistry validates and installs the initial threshold records and
// disregard catalog.
func NewRegistry(thresholds []domain.Thresholds, catalog *domain.DisregardCatalog) (*Registry, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("at least one threshold record is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("a disregard catalog is required")
	}
	sorted, err := validateThresholdSet(thresholds)
	if err != nil {
		return nil, err
	}
	r := &Registry{}
	r.thresholds.Store(&sorted)
	r.catalog.Store(catalog)
	return r, nil
}

// ThresholdsFor returns the single record effective on the given date.
// Calculating with wrong-year constants is never acceptable, so a miss is a
// ThresholdUnavailableError rather than a default.
func (r *Registry) ThresholdsFor(at time.Time) (domain.Thresholds, error) {
	for _, t := range *r.thresholds.Load() {
		if t.Covers(at) {
			return t, nil
		}
	}
	return domain.Thresholds{}, &calculation.ThresholdUnavailableError{At: at}
}

// AllThresholds returns every loaded record, ordered by effective date.
func (r *Registry) AllThresholds() []domain.Thresholds {
	stored := *r.thresholds.Load()
	out := make([]domain.Thresholds, len(stored))
	copy(out, stored)
	return out
}

// Catalog returns the current disregard catalog.
func (r *Registry) Catalog() *domain.DisregardCatalog {
	return r.catalog.Load()
}

// SwapThresholds replaces the whole threshold set atomically.
func (r *Registry) SwapThresholds(thresholds []domain.Thresholds) error {
	sorted, err := validateThresholdSet(thresholds)
	if err != nil {
		return err
	}
	r.thresholds.Store(&sorted)
	return nil
}

// SwapCatalog replaces the whole disregard catalog atomically.
func (r *Registry) SwapCatalog(catalog *domain.DisregardCatalog) error {
	if catalog == nil {
		return fmt.Errorf("a disregard catalog is required")
	}
	r.catalog.Store(catalog)
	return nil
}

func validateThresholdSet(thresholds []domain.Thresholds) ([]domain.Thresholds, error) {
	sorted := make([]domain.Thresholds, len(thresholds))
	copy(sorted, thresholds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].EffectiveFrom.Before(sorted[j].EffectiveFrom) })

	for i, t := range sorted {
		if err := validateThresholds(t); err != nil {
			return nil, fmt.Errorf("threshold record %q: %w", t.Year, err)
		}
		if i > 0 && !sorted[i-1].EffectiveTo.Before(t.EffectiveFrom) {
			return nil, fmt.Errorf("threshold records %q and %q overlap", sorted[i-1].Year, t.Year)
		}
	}
	return sorted, nil
}

func validateThresholds(t domain.Thresholds) error {
	if t.Year == "" {
		return fmt.Errorf("year label is required")
	}
	if t.EffectiveFrom.IsZero() || t.EffectiveTo.IsZero() || !t.EffectiveFrom.Before(t.EffectiveTo) {
		return fmt.Errorf("effective date range is invalid")
	}
	// The label must name the charging year the record starts in; a record
	// labelled for the wrong year would mislead every audit trail built on it.
	if want := dateutil.ChargingYearLabel(t.EffectiveFrom); t.Year != want {
		return fmt.Errorf("year label %q does not match charging year %q", t.Year, want)
	}
	if !t.LowerCapitalLimit.IsPositive() || !t.UpperCapitalLimit.GreaterThan(t.LowerCapitalLimit) {
		return fmt.Errorf("capital limits must be positive with lower below upper")
	}
	if !t.PersonalExpensesAllowance.IsPositive() {
		return fmt.Errorf("personal expenses allowance must be positive")
	}
	if !t.MinimumIncomeGuarantee.Single.IsPositive() || !t.MinimumIncomeGuarantee.Couple.IsPositive() {
		return fmt.Errorf("minimum income guarantee amounts must be positive")
	}
	if !t.TariffRate.IsPositive() || !t.TariffBand.IsPositive() {
		return fmt.Errorf("tariff rate and band must be positive")
	}
	if t.PropertyDisregardWeeks <= 0 {
		return fmt.Errorf("property disregard window must be positive")
	}
	if !t.DPALoanToValue.IsPositive() || t.DPALoanToValue.GreaterThanOrEqual(decimalOne) {
		return fmt.Errorf("dpa loan-to-value must be between 0 and 1 exclusive")
	}
	return nil
}

// thresholdsFile is the on-disk shape of thresholds.yaml.
type thresholdsFile struct {
	Thresholds []domain.Thresholds `yaml:"thresholds"`
}

// disregardsFile is the on-disk shape of disregards.yaml.
type disregardsFile struct {
	Disregards []domain.DisregardRule `yaml:"disregards"`
}

// LoadRegistry builds a registry from the two versioned configuration files.
func LoadRegistry(thresholdsPath, disregardsPath string) (*Registry, error) {
	thresholds, err := LoadThresholds(thresholdsPath)
	if err != nil {
		return nil, err
	}
	catalog, err := LoadDisregardCatalog(disregardsPath)
	if err != nil {
		return nil, err
	}
	return NewRegistry(thresholds, catalog)
}

// LoadThresholds parses a thresholds.yaml file.
func LoadThresholds(path string) ([]domain.Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read thresholds file %s: %w", path, err)
	}
	var file thresholdsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse thresholds file %s: %w", path, err)
	}
	return file.Thresholds, nil
}

// LoadDisregardCatalog parses a disregards.yaml file.
func LoadDisregardCatalog(path string) (*domain.DisregardCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read disregards file %s: %w", path, err)
	}
	var file disregardsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse disregards file %s: %w", path, err)
	}
	catalog, err := domain.NewDisregardCatalog(file.Disregards)
	if err != nil {
		return nil, fmt.Errorf("invalid disregard catalog in %s: %w", path, err)
	}
	return catalog, nil
}
