package scheduler

import (
	"testing"

	"github.com/rich365/rich365/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intjFounder = domain.Profile{PersonalityType: domain.INTJ, Role: domain.RoleEntrepreneur}

func TestScore_BaseOnly(t *testing.T) {
	tpl := domain.ActionTemplate{Title: "plain"}
	assert.Equal(t, 1, Score(tpl, intjFounder))
}

func TestScore_TraitMatches(t *testing.T) {
	tpl := domain.ActionTemplate{PersonalityPreference: []domain.Trait{domain.TraitN, domain.TraitT}}
	assert.Equal(t, 5, Score(tpl, intjFounder))

	tpl.PersonalityPreference = []domain.Trait{domain.TraitE, domain.TraitS}
	assert.Equal(t, 1, Score(tpl, intjFounder))
}

func TestScore_RoleMatch(t *testing.T) {
	tpl := domain.ActionTemplate{RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleCreator}}
	assert.Equal(t, 6, Score(tpl, intjFounder))

	tpl.RolePreference = []domain.Role{domain.RoleInvestor}
	assert.Equal(t, 1, Score(tpl, intjFounder))
}

func TestScore_Arithmetic(t *testing.T) {
	all := []domain.Trait{domain.TraitI, domain.TraitN, domain.TraitT, domain.TraitJ}
	fullTraits := domain.ActionTemplate{PersonalityPreference: all}
	roleOnly := domain.ActionTemplate{RolePreference: []domain.Role{domain.RoleEntrepreneur}}
	roleAndOne := domain.ActionTemplate{
		PersonalityPreference: []domain.Trait{domain.TraitN},
		RolePreference:        []domain.Role{domain.RoleEntrepreneur},
	}
	oneTrait := domain.ActionTemplate{PersonalityPreference: []domain.Trait{domain.TraitJ}}

	assert.Equal(t, 9, Score(fullTraits, intjFounder))
	assert.Equal(t, 6, Score(roleOnly, intjFounder))
	assert.Equal(t, 8, Score(roleAndOne, intjFounder))
	assert.Equal(t, 3, Score(oneTrait, intjFounder))

	// A four-letter trait match outranks a bare role match.
	assert.Greater(t, Score(fullTraits, intjFounder), Score(roleOnly, intjFounder))
	// Role plus one trait beats anything with at most one trait and no role.
	assert.Greater(t, Score(roleAndOne, intjFounder), Score(oneTrait, intjFounder))
}

func TestScoreTemplate_Reasons(t *testing.T) {
	st := ScoreTemplate(ScoringInput{
		Template: domain.ActionTemplate{
			PersonalityPreference: []domain.Trait{domain.TraitT, domain.TraitJ},
			RolePreference:        []domain.Role{domain.RoleEntrepreneur},
		},
		Profile: intjFounder,
		Weights: DefaultWeights(),
	})

	assert.Equal(t, 10, st.Score)
	require.Len(t, st.Reasons, 3)
	assert.Equal(t, ReasonBase, st.Reasons[0].Code)
	assert.Equal(t, ReasonTraitMatch, st.Reasons[1].Code)
	assert.Equal(t, 4, st.Reasons[1].Delta)
	assert.Contains(t, st.Reasons[1].Message, "TJ")
	assert.Equal(t, ReasonRoleMatch, st.Reasons[2].Code)
}
