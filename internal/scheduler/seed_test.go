package scheduler

import (
	"testing"

	"github.com/rich365/rich365/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSeed_Formula(t *testing.T) {
	// I+N+T+J = 73+78+84+74 = 309; the role label sums to 178463.
	assert.Equal(t, 309*1000+178463*100+101, Seed(intjFounder, 101))

	employee := domain.Profile{PersonalityType: domain.INTJ, Role: domain.RoleEmployee}
	assert.Equal(t, 309*1000+124536*100+1231, Seed(employee, 1231))
}

func TestSeededRandom_RangeAndDeterminism(t *testing.T) {
	for seed := 0; seed < 5000; seed += 7 {
		v := SeededRandom(seed)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		assert.Equal(t, v, SeededRandom(seed))
	}
}

func TestSeededRandom_KnownValue(t *testing.T) {
	assert.InDelta(t, 0.4379486, SeededRandom(18155401), 1e-6)
}

func TestSeed_DiffersPerDay(t *testing.T) {
	assert.NotEqual(t, Seed(intjFounder, 101), Seed(intjFounder, 102))
}
