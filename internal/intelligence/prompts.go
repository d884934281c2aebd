package intelligence

import (
	"fmt"
	"strings"

	"github.com/rich365/rich365/internal/catalogue"
	"github.com/rich365/rich365/internal/domain"
)

// advisorSystemPrompt frames every generation task.
const advisorSystemPrompt = `你是一个专业的财富增长顾问和行动规划师，擅长为不同人格与职业的人设计可执行的"搞钱微行动"。
每个行动必须具体、可在30分钟内完成，并使用动词开头的行动号召语言。`

const jsonOnlyRules = `重要：
- 只返回 JSON 数组，不要任何解释、注释或代码块标记
- 确保 JSON 格式正确，可以直接解析
- 数字使用标准 JSON 写法`

const categoryOptions = "learning（学习）、networking（社交）、content（内容）、optimization（优化）、sales（销售）、investment（投资）、branding（品牌）、skill（技能）、mindset（思维）、execution（执行）"

// profileBlock renders the user section shared by all prompts.
func profileBlock(p domain.Profile) string {
	info, _ := catalogue.Personality(p.PersonalityType)
	role, _ := catalogue.RoleDetails(p.Role)

	var b strings.Builder
	b.WriteString("用户信息：\n")
	fmt.Fprintf(&b, "- MBTI 人格类型：%s (%s)\n", p.PersonalityType, info.Name)
	fmt.Fprintf(&b, "- 人格特质：%s\n", info.Trait)
	fmt.Fprintf(&b, "- 职业身份：%s\n", p.Role)
	fmt.Fprintf(&b, "- 职业描述：%s\n", role.Description)
	fmt.Fprintf(&b, "- 职业特点：%s\n", role.Traits)
	if p.Goal != "" {
		fmt.Fprintf(&b, "- 个人目标：%s\n", p.Goal)
	}
	return b.String()
}

func goalRequirement(p domain.Profile) string {
	if p.Goal != "" {
		return "行动要与用户的个人目标强相关"
	}
	return "行动要帮助用户全面提升财富能力"
}

func buildFullYearPrompt(year int, p domain.Profile, themes []domain.MonthTheme) string {
	var b strings.Builder
	b.WriteString(profileBlock(p))
	fmt.Fprintf(&b, "\n任务：为用户生成 %d 年每一天的搞钱微行动（从 %d-01-01 到 %d-12-31）。\n\n", year, year, year)
	b.WriteString("要求：\n")
	b.WriteString("1. 行动要符合用户的 MBTI 特质和职业特点\n")
	fmt.Fprintf(&b, "2. %s\n", goalRequirement(p))
	b.WriteString("3. 难度循序渐进，内容覆盖学习、实践、社交、投资、创作等方向\n")
	b.WriteString("4. 每个行动包含：标题（10字以内）、描述（30-50字）、emoji、主题、类别\n\n")
	b.WriteString("每月主题：\n")
	for _, t := range themes {
		fmt.Fprintf(&b, "%d月（%s）：%s\n", t.Month, t.Theme, t.Description)
	}
	fmt.Fprintf(&b, "\n类别选项：%s\n\n", categoryOptions)
	example := ""
	if len(themes) > 0 {
		example = themes[0].Theme
	}
	fmt.Fprintf(&b, `输出格式：
[
  {"date": "%d-01-01", "title": "阅读一本理财书籍", "description": "从经典理财书籍开始，建立基础的财富认知。", "emoji": "📚", "theme": "%s", "category": "learning"}
]

`, year, example)
	b.WriteString(jsonOnlyRules)
	return b.String()
}

func buildMonthPrompt(year, month int, p domain.Profile, mt domain.MonthTheme) string {
	from := domain.FormatDate(year, month, 1)
	days := domain.DaysInMonth(year, month)
	to := domain.FormatDate(year, month, days)

	var b strings.Builder
	b.WriteString(profileBlock(p))
	b.WriteString("\n当前月度主题：\n")
	fmt.Fprintf(&b, "- 主题：%s %s\n", mt.Emoji, mt.Theme)
	fmt.Fprintf(&b, "- 描述：%s\n", mt.Description)
	fmt.Fprintf(&b, "- 时间范围：%s 至 %s\n", from, to)
	fmt.Fprintf(&b, "\n任务：为用户设计从 %s 到 %s 的每日行动计划（共 %d 天）。\n\n", from, to, days)
	b.WriteString("要求：\n")
	fmt.Fprintf(&b, "1. 行动要符合月度主题\"%s\"\n", mt.Theme)
	b.WriteString("2. 难度循序渐进，从简单到复杂\n")
	fmt.Fprintf(&b, "3. %s\n", goalRequirement(p))
	b.WriteString("4. 每个行动包含：标题（8-15字）、描述（30-50字）、emoji、类别\n\n")
	fmt.Fprintf(&b, "类别选项：%s\n\n", categoryOptions)
	fmt.Fprintf(&b, `输出格式：
[
  {"date": "%s", "title": "认识你的财富盲区", "description": "列出3个你当前最缺乏的财富认知，开始觉醒之旅", "emoji": "👁️", "category": "mindset"}
]

`, from)
	b.WriteString(jsonOnlyRules)
	return b.String()
}

func buildYearlyPlanPrompt(p domain.Profile, base []domain.MonthTheme) string {
	var b strings.Builder
	b.WriteString(profileBlock(p))
	b.WriteString("\n任务：为用户设计一个 12 个月的搞钱成长主题规划。\n\n")
	b.WriteString("要求：\n")
	b.WriteString("1. 每个月一个主题，主题循序渐进、相互衔接\n")
	fmt.Fprintf(&b, "2. %s\n", goalRequirement(p))
	b.WriteString("3. 每个主题包含：标题（6-8字）、描述（20-30字）、emoji\n\n")
	b.WriteString("参考主题方向：\n")
	for _, t := range base {
		fmt.Fprintf(&b, "第%d个月：%s - %s\n", t.Month, t.Theme, t.Description)
	}
	b.WriteString(`
输出格式（共 12 个）：
[
  {"relativeMonth": 1, "theme": "搞钱觉醒月", "description": "唤醒财富意识，建立基础的财富认知体系", "emoji": "🌅"}
]

`)
	b.WriteString(jsonOnlyRules)
	return b.String()
}

func buildGoalActionsPrompt(goal string, p domain.Profile) string {
	var b strings.Builder
	b.WriteString(profileBlock(p))
	fmt.Fprintf(&b, "- 目标：%s\n\n", goal)
	b.WriteString(`请基于用户的目标，生成 3 个具体的、可立即执行的搞钱微行动建议。

要求：
1. 每个行动30分钟内可完成
2. 行动要符合用户的 MBTI 人格特质和职业身份
3. 每个行动控制在 20-30 字以内
4. 每行一个行动，用数字编号，无需额外说明

示例格式：
1. 今天记录 3 笔支出，标注「必要」或「可省」
2. 花 10 分钟研究一个新的赚钱技能
3. 联系一位行业前辈，请教职业发展建议`)
	return b.String()
}

func buildGoalValidatePrompt(goal string) string {
	return fmt.Sprintf(`判断以下目标是否是一个合理的、与财富增长相关的目标：

目标：%s

要求：
1. 如果目标合理，回复：VALID
2. 如果目标不合理或不相关，回复：INVALID，并简短说明原因（不超过 30 字）

请直接回复：`, goal)
}
