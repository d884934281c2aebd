package progress

import (
	"testing"

	"github.com/rich365/rich365/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextBadge(t *testing.T) {
	t.Run("fresh user tie goes to total badge", func(t *testing.T) {
		b := NextBadge(domain.UserStats{})
		require.NotNil(t, b)
		assert.Equal(t, "dedicated", b.ID)
	})

	t.Run("streak further along wins", func(t *testing.T) {
		b := NextBadge(domain.UserStats{CurrentStreak: 5, TotalCheckIns: 5})
		require.NotNil(t, b)
		assert.Equal(t, "newbie", b.ID)
	})

	t.Run("total further along wins", func(t *testing.T) {
		stats := domain.UserStats{CurrentStreak: 1, TotalCheckIns: 45, Badges: []string{"newbie"}}
		b := NextBadge(stats)
		require.NotNil(t, b)
		assert.Equal(t, "dedicated", b.ID)
	})

	t.Run("only streak badges left", func(t *testing.T) {
		stats := domain.UserStats{CurrentStreak: 40, TotalCheckIns: 250, Badges: []string{"newbie", "veteran", "dedicated", "master"}}
		b := NextBadge(stats)
		require.NotNil(t, b)
		assert.Equal(t, "tycoon", b.ID)
		assert.Equal(t, 60, Remaining(*b, stats))
	})

	t.Run("all earned", func(t *testing.T) {
		var ids []string
		for _, b := range Badges {
			ids = append(ids, b.ID)
		}
		assert.Nil(t, NextBadge(domain.UserStats{Badges: ids}))
	})
}

func TestEarnedBadges(t *testing.T) {
	got := EarnedBadges(domain.UserStats{Badges: []string{"master", "unknown", "newbie"}})
	require.Len(t, got, 2)
	assert.Equal(t, "newbie", got[0].ID)
	assert.Equal(t, "master", got[1].ID)

	b, ok := BadgeByID("veteran")
	assert.True(t, ok)
	assert.Equal(t, 30, b.Requirement)
}
