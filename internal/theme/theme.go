// Package theme derives the monthly theme labels for a profile.
package theme

import "github.com/rich365/rich365/internal/domain"

var baseThemes = [12]domain.MonthTheme{
	{Month: 1, Name: "一月", Theme: "搞钱觉醒月", Description: "唤醒财富意识，开启行动之旅", Emoji: "🌅"},
	{Month: 2, Name: "二月", Theme: "投资学习月", Description: "学习投资知识，提升财商思维", Emoji: "📚"},
	{Month: 3, Name: "三月", Theme: "行动复利月", Description: "每日小行动，积累大财富", Emoji: "🚀"},
	{Month: 4, Name: "四月", Theme: "品牌经营月", Description: "打造个人品牌，扩大影响力", Emoji: "✨"},
	{Month: 5, Name: "五月", Theme: "副业探索月", Description: "开拓收入渠道，创造被动收入", Emoji: "💡"},
	{Month: 6, Name: "六月", Theme: "人脉拓展月", Description: "建立优质人脉，创造合作机会", Emoji: "🤝"},
	{Month: 7, Name: "七月", Theme: "技能变现月", Description: "将技能转化为收入来源", Emoji: "💰"},
	{Month: 8, Name: "八月", Theme: "内容创作月", Description: "持续输出内容，建立影响力", Emoji: "✍️"},
	{Month: 9, Name: "九月", Theme: "商业思维月", Description: "培养商业嗅觉，发现赚钱机会", Emoji: "🎯"},
	{Month: 10, Name: "十月", Theme: "效率提升月", Description: "优化工作流程，提高产出效率", Emoji: "⚡"},
	{Month: 11, Name: "十一月", Theme: "财富复盘月", Description: "总结经验教训，优化赚钱策略", Emoji: "📊"},
	{Month: 12, Name: "十二月", Theme: "目标规划月", Description: "制定新年计划，设定财富目标", Emoji: "🎁"},
}

var temperamentOverrides = map[domain.Temperament]map[int]string{
	domain.TemperamentAnalyst:  {3: "策略与复利月", 9: "商业创新月"},
	domain.TemperamentDiplomat: {4: "创意爆发月", 8: "影响力建设月"},
	domain.TemperamentSentinel: {3: "稳健执行月", 5: "稳健副业月"},
	domain.TemperamentExplorer: {3: "快速行动月", 7: "技能爆发月"},
}

var roleOverrides = map[domain.Role]map[int]string{
	domain.RoleInvestor:     {2: "资产配置月", 11: "投资复盘月"},
	domain.RoleCreator:      {8: "内容爆款月", 4: "IP打造月"},
	domain.RoleEmployee:     {5: "副业启动月", 10: "职场效能月"},
	domain.RoleEntrepreneur: {9: "商业模式月", 6: "资源整合月"},
	domain.RoleLearner:      {1: "探索觉醒月", 7: "技能突破月"},
}

// GetMonthTheme returns the theme for month as seen by p. Temperament
// overrides apply first and role overrides last, so the role wins when both
// target the same month. Only Theme is ever replaced.
func GetMonthTheme(month int, p domain.Profile) (domain.MonthTheme, error) {
	if !domain.ValidMonth(month) {
		return domain.MonthTheme{}, domain.ErrInvalidMonth
	}
	mt := baseThemes[month-1]

	if label, ok := temperamentOverrides[p.PersonalityType.Temperament()][month]; ok {
		mt.Theme = label
	}
	if label, ok := roleOverrides[p.Role][month]; ok {
		mt.Theme = label
	}
	return mt, nil
}

// YearThemes returns all twelve month themes for p.
func YearThemes(p domain.Profile) []domain.MonthTheme {
	out := make([]domain.MonthTheme, 0, len(baseThemes))
	for m := 1; m <= len(baseThemes); m++ {
		mt, _ := GetMonthTheme(m, p)
		out = append(out, mt)
	}
	return out
}

// Base returns the un-personalized theme for month.
func Base(month int) (domain.MonthTheme, bool) {
	if !domain.ValidMonth(month) {
		return domain.MonthTheme{}, false
	}
	return baseThemes[month-1], true
}

// MonthName returns the localized month label such as "三月".
func MonthName(month int) string {
	if mt, ok := Base(month); ok {
		return mt.Name
	}
	return ""
}
