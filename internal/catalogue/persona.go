package catalogue

import "github.com/rich365/rich365/internal/domain"

// PersonalityInfo describes an MBTI type for prompts and display.
type PersonalityInfo struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Trait string `json:"trait"`
}

// RoleInfo describes a role for prompts and display.
type RoleInfo struct {
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Traits      string `json:"traits"`
}

var personalities = map[domain.PersonalityType]PersonalityInfo{
	domain.INTJ: {Name: "建筑师", Emoji: "🏗️", Trait: "策略思维"},
	domain.INTP: {Name: "逻辑学家", Emoji: "🧠", Trait: "创新思考"},
	domain.ENTJ: {Name: "指挥官", Emoji: "⚔️", Trait: "领导力"},
	domain.ENTP: {Name: "辩论家", Emoji: "💡", Trait: "创意爆发"},
	domain.INFJ: {Name: "提倡者", Emoji: "🌟", Trait: "洞察力"},
	domain.INFP: {Name: "调停者", Emoji: "🌈", Trait: "理想主义"},
	domain.ENFJ: {Name: "主人公", Emoji: "🎭", Trait: "感染力"},
	domain.ENFP: {Name: "竞选者", Emoji: "🎪", Trait: "热情活力"},
	domain.ISTJ: {Name: "物流师", Emoji: "📋", Trait: "执行力"},
	domain.ISFJ: {Name: "守卫者", Emoji: "🛡️", Trait: "责任心"},
	domain.ESTJ: {Name: "总经理", Emoji: "📊", Trait: "管理能力"},
	domain.ESFJ: {Name: "执政官", Emoji: "🤝", Trait: "协调能力"},
	domain.ISTP: {Name: "鉴赏家", Emoji: "🔧", Trait: "实践能力"},
	domain.ISFP: {Name: "探险家", Emoji: "🎨", Trait: "艺术感"},
	domain.ESTP: {Name: "企业家", Emoji: "🚀", Trait: "行动派"},
	domain.ESFP: {Name: "表演者", Emoji: "🎬", Trait: "社交达人"},
}

var roles = map[domain.Role]RoleInfo{
	domain.RoleEntrepreneur: {Emoji: "🧑‍💻", Description: "独立经营项目或品牌，关注收入增长与商业模式", Traits: "执行力强，时间自由，重视现金流"},
	domain.RoleEmployee:     {Emoji: "👩‍💼", Description: "在企业工作，关注升职加薪与副业拓展", Traits: "稳定执行，注重个人成长"},
	domain.RoleCreator:      {Emoji: "🧑‍🎨", Description: "以创意、表达、社交媒体为生", Traits: "热爱表达，重视影响力变现"},
	domain.RoleInvestor:     {Emoji: "📈", Description: "以投资、资产管理为主要搞钱方式", Traits: "注重策略与判断力"},
	domain.RoleLearner:      {Emoji: "👩‍🏫", Description: "正在学习或准备转型职业", Traits: "成长导向，愿意尝试新领域"},
}

// Personality returns display data for p.
func Personality(p domain.PersonalityType) (PersonalityInfo, bool) {
	info, ok := personalities[p]
	return info, ok
}

// RoleDetails returns display data for r.
func RoleDetails(r domain.Role) (RoleInfo, bool) {
	info, ok := roles[r]
	return info, ok
}
