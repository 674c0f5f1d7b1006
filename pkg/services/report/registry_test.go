package report

import (
	"testing"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		r := NewRegistry()
		def := Definition{
			Name:       "custom-cash",
			Kind:       KindCash,
			Anchor:     "TOTAL",
			Categories: []domain.CategoryKey{"a", "b"},
		}
		require.NoError(t, r.Register(def))

		got, err := r.Get("custom-cash")
		require.NoError(t, err)
		assert.Equal(t, def, got)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		r := NewRegistry()
		def := Definition{Name: "positions", Kind: KindDepartment}
		require.NoError(t, r.Register(def))
		assert.Error(t, r.Register(def))
	})

	t.Run("empty name", func(t *testing.T) {
		r := NewRegistry()
		assert.Error(t, r.Register(Definition{Kind: KindDepartment}))
	})

	t.Run("cash definition needs categories", func(t *testing.T) {
		r := NewRegistry()
		assert.Error(t, r.Register(Definition{Name: "bad-cash", Kind: KindCash}))
	})

	t.Run("unknown report type", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Get("nope")
		assert.Error(t, err)
	})
}

func TestDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t, []string{
		FundBalances,
		NetCashFlow,
		Obligations,
		PersonalServices,
		Positions,
		Revenue,
		Spending,
	}, r.ListReportTypes())

	t.Run("net cash flow window", func(t *testing.T) {
		def, err := r.Get(NetCashFlow)
		require.NoError(t, err)

		assert.Equal(t, KindCash, def.Kind)
		assert.Equal(t, "TOTAL DISBURSEMENTS", def.Anchor)
		assert.True(t, def.TotalColumn)
		assert.Len(t, def.Categories, 4)
		require.Len(t, def.ValidationGroups, 1)
		assert.Equal(t, domain.CategoryKey("closing_balance"), def.ValidationGroups[0].Total)
	})

	t.Run("positions dedup policies", func(t *testing.T) {
		def, err := r.Get(Positions)
		require.NoError(t, err)

		assert.Equal(t, KindDepartment, def.Kind)
		assert.Contains(t, def.DedupPolicies, domain.SupersedeYTDOnNewerFiling)
		assert.Contains(t, def.DedupPolicies, domain.LatestFinalWins)
	})

	t.Run("every validation group member is a known category", func(t *testing.T) {
		for _, name := range r.ListReportTypes() {
			def, err := r.Get(name)
			require.NoError(t, err)

			known := make(map[domain.CategoryKey]bool)
			for _, c := range def.Categories {
				known[c] = true
			}
			for _, group := range def.ValidationGroups {
				assert.True(t, known[group.Total], "%s: total %s", name, group.Total)
				for _, c := range group.Categories {
					assert.True(t, known[c], "%s: member %s", name, c)
				}
			}
		}
	})
}

func TestNewRegistryWithCatalog(t *testing.T) {
	r := NewRegistryWithCatalog(map[string]domain.FormattingTable{
		NetCashFlow: {"tran": "Tax and Revenue Anticipation Notes"},
	})

	def, err := r.Get(NetCashFlow)
	require.NoError(t, err)

	assert.Equal(t, "Tax and Revenue Anticipation Notes", def.Formatting["tran"])
	assert.Equal(t, "Opening Balance", def.Formatting["opening_balance"], "untouched entries survive")
}
