package flowplan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTeamMetrics(t *testing.T) {
	t.Run("spend below plan", func(t *testing.T) {
		m := ComputeTeamMetrics(100, 20, 60)

		assert.Equal(t, 80.0, m.BaseLimit)
		assert.Equal(t, -20.0, m.OverVsBase)
		assert.Equal(t, 40.0, m.RemainingPlan)
		assert.Equal(t, 0.0, m.ConsumedBuffer)
		assert.Equal(t, 20.0, m.RemainingBuffer)
		assert.Equal(t, 60.0, m.YTGTotal)
	})

	t.Run("spend into buffer", func(t *testing.T) {
		m := ComputeTeamMetrics(100, 20, 110)

		assert.Equal(t, 30.0, m.OverVsBase)
		assert.Equal(t, 0.0, m.RemainingPlan)
		assert.Equal(t, 10.0, m.ConsumedBuffer)
		assert.Equal(t, 10.0, m.RemainingBuffer)
		assert.Equal(t, 10.0, m.YTGTotal)
	})

	t.Run("spend beyond plan and buffer", func(t *testing.T) {
		m := ComputeTeamMetrics(100, 20, 150)

		assert.Equal(t, 0.0, m.RemainingPlan)
		assert.Equal(t, 50.0, m.ConsumedBuffer)
		assert.Equal(t, 0.0, m.RemainingBuffer)
		assert.Equal(t, 0.0, m.YTGTotal)
	})

	t.Run("zero spend", func(t *testing.T) {
		m := ComputeTeamMetrics(100, 20, 0)

		assert.Equal(t, 100.0, m.RemainingPlan)
		assert.Equal(t, 0.0, m.ConsumedBuffer)
		assert.Equal(t, 20.0, m.RemainingBuffer)
		assert.Equal(t, 120.0, m.YTGTotal)
	})

	t.Run("negative plan accepted without rejection", func(t *testing.T) {
		m := ComputeTeamMetrics(-50, 10, 0)

		assert.Equal(t, 0.0, m.RemainingPlan)
		assert.Equal(t, 50.0, m.ConsumedBuffer)
		assert.Equal(t, 0.0, m.RemainingBuffer)
		assert.Equal(t, 0.0, m.YTGTotal)
	})
}

func TestComputeTeamMetrics_ClampsNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		plan := rng.Float64()*2000 - 500
		buffer := rng.Float64()*600 - 150
		ytd := rng.Float64()*3000 - 500

		m := ComputeTeamMetrics(plan, buffer, ytd)

		assert.GreaterOrEqual(t, m.RemainingPlan, 0.0)
		assert.GreaterOrEqual(t, m.ConsumedBuffer, 0.0)
		assert.GreaterOrEqual(t, m.RemainingBuffer, 0.0)
		assert.GreaterOrEqual(t, m.YTGTotal, 0.0)
	}
}

// Whenever spend has not exhausted plan+buffer, the year-to-go total must
// equal remaining plan plus remaining buffer, both sides computed
// independently.
func TestComputeTeamMetrics_YTGIdentity(t *testing.T) {
	check := func(plan, buffer, ytd float64) {
		t.Helper()
		m := ComputeTeamMetrics(plan, buffer, ytd)
		assert.InDelta(t, m.RemainingPlan+m.RemainingBuffer, m.YTGTotal, 1e-9,
			"plan=%v buffer=%v ytd=%v", plan, buffer, ytd)
	}

	// Boundary cases.
	check(1000, 200, 0)
	check(1000, 200, 1000)
	check(1000, 200, 1200)
	check(0, 0, 0)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 25; i++ {
		plan := rng.Float64() * 1000
		buffer := rng.Float64() * 300
		ytd := rng.Float64() * (plan + buffer)
		check(plan, buffer, ytd)
	}
}
