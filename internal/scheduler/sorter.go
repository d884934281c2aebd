package scheduler

import (
	"sort"

	"github.com/rich365/rich365/internal/domain"
)

// RankTemplates scores every template for p and orders them by score,
// highest first. The sort is stable so equal scores keep catalogue order.
func RankTemplates(templates []domain.ActionTemplate, p domain.Profile) []ScoredTemplate {
	weights := DefaultWeights()
	ranked := make([]ScoredTemplate, len(templates))
	for i, t := range templates {
		st := ScoreTemplate(ScoringInput{Template: t, Profile: p, Weights: weights})
		st.Index = i
		ranked[i] = st
	}
	CanonicalSort(ranked)
	return ranked
}

// CanonicalSort orders candidates by score descending, keeping the existing
// relative order of ties.
func CanonicalSort(candidates []ScoredTemplate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
