package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/accountctl/internal/i18n"
)

func TestKeysAreTranslated(t *testing.T) {
	for _, key := range Keys() {
		assert.True(t, i18n.Has(key), "missing translation for %s", key)
	}
}

func TestPlanPrices(t *testing.T) {
	tests := []struct {
		id      string
		monthly int
		annual  int
		popular bool
	}{
		{"basic", 29, 23, false},
		{"pro", 79, 63, true},
		{"enterprise", 199, 159, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, ok := PlanByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.monthly, p.Price(false))
			assert.Equal(t, tt.annual, p.Price(true))
			assert.Equal(t, tt.popular, p.Popular)
			assert.Less(t, p.Price(true), p.Price(false))
		})
	}
}

func TestPlanByID_Unknown(t *testing.T) {
	_, ok := PlanByID("weekly")
	assert.False(t, ok)
}

func TestPlanKeys(t *testing.T) {
	p, _ := PlanByID("pro")
	assert.Equal(t, "pricing.plans.pro.title", p.TitleKey())
	assert.Equal(t, "pricing.plans.pro.features", p.FeaturesKey())
}

func TestAnnualSavings(t *testing.T) {
	p, _ := PlanByID("basic")
	assert.Equal(t, 20, p.AnnualSavingsPercent())
	assert.Equal(t, 0, Plan{}.AnnualSavingsPercent())
}

func TestOnePopularPlan(t *testing.T) {
	n := 0
	for _, p := range Plans {
		if p.Popular {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestTestimonialsAreFiveStar(t *testing.T) {
	require.Len(t, Testimonials, 3)
	for _, tm := range Testimonials {
		assert.Equal(t, 5, tm.Rating, tm.Author)
	}
}
