package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used in records and storage.
const DateLayout = "2006-01-02"

type Category string

const (
	CategoryLearning     Category = "learning"
	CategoryNetworking   Category = "networking"
	CategoryContent      Category = "content"
	CategoryOptimization Category = "optimization"
	CategorySales        Category = "sales"
	CategoryInvestment   Category = "investment"
	CategoryBranding     Category = "branding"
	CategorySkill        Category = "skill"
	CategoryMindset      Category = "mindset"
	CategoryExecution    Category = "execution"
)

// Categories lists every category in catalogue order.
var Categories = []Category{
	CategoryLearning, CategoryNetworking, CategoryContent, CategoryOptimization, CategorySales,
	CategoryInvestment, CategoryBranding, CategorySkill, CategoryMindset, CategoryExecution,
}

var categoryNames = map[Category]string{
	CategoryLearning:     "学习",
	CategoryNetworking:   "社交",
	CategoryContent:      "内容",
	CategoryOptimization: "优化",
	CategorySales:        "销售",
	CategoryInvestment:   "投资",
	CategoryBranding:     "品牌",
	CategorySkill:        "技能",
	CategoryMindset:      "思维",
	CategoryExecution:    "执行",
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the localized label, or the raw value when unknown.
func (c Category) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// ActionTemplate is an immutable catalogue entry.
type ActionTemplate struct {
	Title                 string   `yaml:"title"`
	Description           string   `yaml:"description"`
	Emoji                 string   `yaml:"emoji"`
	Category              Category `yaml:"-"`
	PersonalityPreference []Trait  `yaml:"mbti_preference,omitempty"`
	RolePreference        []Role   `yaml:"role_preference,omitempty"`
}

// PrefersTrait reports whether t is in the template's personality preference.
func (a ActionTemplate) PrefersTrait(t Trait) bool {
	for _, p := range a.PersonalityPreference {
		if p == t {
			return true
		}
	}
	return false
}

// PrefersRole reports whether r is in the template's role preference.
func (a ActionTemplate) PrefersRole(r Role) bool {
	for _, p := range a.RolePreference {
		if p == r {
			return true
		}
	}
	return false
}

// DailyAction is one action resolved for one calendar date. The field names
// are shared with AI-generated records and stored rows.
type DailyAction struct {
	Date        string   `json:"date"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	Theme       string   `json:"theme"`
	Category    Category `json:"category,omitempty"`
}

// Day parses Date.
func (a DailyAction) Day() (time.Time, error) {
	return ParseDate(a.Date)
}

// MonthTheme is the label attached to one calendar month.
type MonthTheme struct {
	Month       int    `json:"month"`
	Name        string `json:"name"`
	Theme       string `json:"theme"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ParseDate parses a YYYY-MM-DD string in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "date", Value: s, Err: ErrInvalidDate}
	}
	return t, nil
}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidMonth reports whether month is in 1..12.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}
