package progress

import "github.com/rich365/rich365/internal/domain"

var TreeLevels = []domain.TreeLevel{
	{Level: 0, Name: "种子", Emoji: "🌱", RequiredCheckIns: 0, Description: "财富之旅的起点"},
	{Level: 1, Name: "幼苗", Emoji: "🌿", RequiredCheckIns: 7, Description: "开始生根发芽"},
	{Level: 2, Name: "小树", Emoji: "🌳", RequiredCheckIns: 30, Description: "茁壮成长中"},
	{Level: 3, Name: "大树", Emoji: "🌲", RequiredCheckIns: 100, Description: "枝繁叶茂"},
	{Level: 4, Name: "参天大树", Emoji: "🎄", RequiredCheckIns: 200, Description: "财富根基稳固"},
	{Level: 5, Name: "摇钱树", Emoji: "💰", RequiredCheckIns: 365, Description: "财富自由之树"},
}

// TreeLevel returns the highest level reached with total check-ins.
func TreeLevel(total int) domain.TreeLevel {
	for i := len(TreeLevels) - 1; i >= 0; i-- {
		if total >= TreeLevels[i].RequiredCheckIns {
			return TreeLevels[i]
		}
	}
	return TreeLevels[0]
}

// NextTreeLevel returns nil once the tree is fully grown.
func NextTreeLevel(total int) *domain.TreeLevel {
	next := TreeLevel(total).Level + 1
	if next >= len(TreeLevels) {
		return nil
	}
	lvl := TreeLevels[next]
	return &lvl
}

// TreeProgress is the percentage of the way from the current level to the
// next, clamped to [0, 100].
func TreeProgress(total int) float64 {
	cur := TreeLevel(total)
	next := NextTreeLevel(total)
	if next == nil {
		return 100
	}
	p := float64(total-cur.RequiredCheckIns) / float64(next.RequiredCheckIns-cur.RequiredCheckIns) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
