package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 30, DaysInMonth(2025, 4))
	assert.Equal(t, 31, DaysInMonth(2025, 12))
}

func TestFormatAndParseDate(t *testing.T) {
	s := FormatDate(2025, 3, 7)
	assert.Equal(t, "2025-03-07", s)

	d, err := ParseDate(s)
	require.NoError(t, err)
	assert.Equal(t, 7, d.Day())

	_, err = ParseDate("2025-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCategoryDisplayName(t *testing.T) {
	assert.Equal(t, "学习", CategoryLearning.DisplayName())
	assert.Equal(t, "执行", CategoryExecution.DisplayName())
	assert.Equal(t, "misc", Category("misc").DisplayName())
	assert.Len(t, Categories, 10)
}

func TestActionTemplatePreferences(t *testing.T) {
	tpl := ActionTemplate{
		PersonalityPreference: []Trait{TraitN, TraitT},
		RolePreference:        []Role{RoleInvestor},
	}
	assert.True(t, tpl.PrefersTrait(TraitN))
	assert.False(t, tpl.PrefersTrait(TraitS))
	assert.True(t, tpl.PrefersRole(RoleInvestor))
	assert.False(t, tpl.PrefersRole(RoleLearner))
}
