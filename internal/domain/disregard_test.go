package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisregardCatalog(t *testing.T) {
	tests := []struct {
		name    string
		rules   []DisregardRule
		wantErr string
	}{
		{
			name: "valid catalog",
			rules: []DisregardRule{
				{Category: "earnings", Kind: DisregardIncome, Treatment: TreatmentFull},
				{Category: "earnings", Kind: DisregardAsset, Treatment: TreatmentFull},
			},
		},
		{
			name:    "unknown kind",
			rules:   []DisregardRule{{Category: "earnings", Kind: "liability", Treatment: TreatmentFull}},
			wantErr: "unknown kind",
		},
		{
			name:    "unknown treatment",
			rules:   []DisregardRule{{Category: "earnings", Kind: DisregardIncome, Treatment: "halved"}},
			wantErr: "unknown treatment",
		},
		{
			name: "duplicate category within a kind",
			rules: []DisregardRule{
				{Category: "earnings", Kind: DisregardIncome, Treatment: TreatmentFull},
				{Category: "earnings", Kind: DisregardIncome, Treatment: TreatmentNone},
			},
			wantErr: "duplicate",
		},
		{
			name:    "temporary without a duration",
			rules:   []DisregardRule{{Category: "sale_proceeds", Kind: DisregardAsset, Treatment: TreatmentTemporary}},
			wantErr: "duration_weeks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := NewDisregardCatalog(tt.rules)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, catalog)
		})
	}
}

func TestDisregardCatalogLookupIsKindScoped(t *testing.T) {
	catalog, err := NewDisregardCatalog([]DisregardRule{
		{Category: "pension", Kind: DisregardIncome, Treatment: TreatmentNone},
		{Category: "trust", Kind: DisregardAsset, Treatment: TreatmentFull},
	})
	require.NoError(t, err)

	_, ok := catalog.Lookup(DisregardIncome, "pension")
	assert.True(t, ok)
	_, ok = catalog.Lookup(DisregardAsset, "pension")
	assert.False(t, ok)
}

func TestDisregardCatalogRulesAreSorted(t *testing.T) {
	catalog, err := NewDisregardCatalog([]DisregardRule{
		{Category: "zebra", Kind: DisregardAsset, Treatment: TreatmentFull},
		{Category: "apple", Kind: DisregardAsset, Treatment: TreatmentFull},
		{Category: "mango", Kind: DisregardIncome, Treatment: TreatmentFull},
	})
	require.NoError(t, err)

	assets := catalog.Rules(DisregardAsset)
	require.Len(t, assets, 2)
	assert.Equal(t, "apple", assets[0].Category)
	assert.Equal(t, "zebra", assets[1].Category)

	all := catalog.AllRules()
	require.Len(t, all, 3)
	assert.Equal(t, "mango", all[2].Category, "assets list before income")
}
