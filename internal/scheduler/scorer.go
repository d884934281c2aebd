package scheduler

import (
	"fmt"
	"strings"

	"github.com/rich365/rich365/internal/domain"
)

type ScoringWeights struct {
	Base       int
	TraitMatch int
	RoleMatch  int
}

// DefaultWeights returns the fixed relevance weights. A role match is
// worth more than any single trait match.
func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Base:       1,
		TraitMatch: 2,
		RoleMatch:  5,
	}
}

type ReasonCode string

const (
	ReasonBase       ReasonCode = "BASE"
	ReasonTraitMatch ReasonCode = "TRAIT_MATCH"
	ReasonRoleMatch  ReasonCode = "ROLE_MATCH"
)

type ScoreReason struct {
	Code    ReasonCode
	Message string
	Delta   int
}

type ScoringInput struct {
	Template domain.ActionTemplate
	Profile  domain.Profile
	Weights  ScoringWeights
}

type ScoredTemplate struct {
	Template domain.ActionTemplate
	Score    int
	Reasons  []ScoreReason
	// Index is the position in the flattened catalogue.
	Index int
}

// ScoreTemplate computes the relevance of one template for one profile.
func ScoreTemplate(input ScoringInput) ScoredTemplate {
	result := ScoredTemplate{Template: input.Template}

	factors := []func(ScoringInput) (int, *ScoreReason){
		scoreBase,
		scoreTraitMatch,
		scoreRoleMatch,
	}
	for _, f := range factors {
		delta, reason := f(input)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

// Score is ScoreTemplate with the default weights, returning only the number.
func Score(t domain.ActionTemplate, p domain.Profile) int {
	return ScoreTemplate(ScoringInput{Template: t, Profile: p, Weights: DefaultWeights()}).Score
}

func scoreBase(input ScoringInput) (int, *ScoreReason) {
	return input.Weights.Base, &ScoreReason{
		Code:    ReasonBase,
		Message: "Catalogue entry",
		Delta:   input.Weights.Base,
	}
}

func scoreTraitMatch(input ScoringInput) (int, *ScoreReason) {
	if len(input.Template.PersonalityPreference) == 0 {
		return 0, nil
	}
	traits := input.Profile.PersonalityType.Traits()
	var matched []string
	for _, pref := range input.Template.PersonalityPreference {
		for _, t := range traits {
			if t == pref {
				matched = append(matched, string(pref))
				break
			}
		}
	}
	if len(matched) == 0 {
		return 0, nil
	}
	delta := len(matched) * input.Weights.TraitMatch
	return delta, &ScoreReason{
		Code:    ReasonTraitMatch,
		Message: fmt.Sprintf("Matches traits %s", strings.Join(matched, "")),
		Delta:   delta,
	}
}

func scoreRoleMatch(input ScoringInput) (int, *ScoreReason) {
	if !input.Template.PrefersRole(input.Profile.Role) {
		return 0, nil
	}
	return input.Weights.RoleMatch, &ScoreReason{
		Code:    ReasonRoleMatch,
		Message: fmt.Sprintf("Suited to %s", input.Profile.Role),
		Delta:   input.Weights.RoleMatch,
	}
}
