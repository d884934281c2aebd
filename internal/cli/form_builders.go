package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rich365/rich365/internal/catalogue"
	"github.com/rich365/rich365/internal/cli/formatter"
	"github.com/rich365/rich365/internal/domain"
)

const (
	maxUsernameLen = 20
	maxGoalLen     = 100
)

func rich365HuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// onboardValues backs the onboarding form. Fields already set act as
// defaults.
type onboardValues struct {
	Personality string
	Role        string
	Goal        string
	Username    string
	Avatar      string
}

func (v onboardValues) profile() (domain.Profile, error) {
	p, err := domain.ParsePersonalityType(v.Personality)
	if err != nil {
		return domain.Profile{}, err
	}
	r, err := domain.ParseRole(v.Role)
	if err != nil {
		return domain.Profile{}, err
	}
	if err := validateGoal(v.Goal); err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{PersonalityType: p, Role: r, Goal: strings.TrimSpace(v.Goal)}, nil
}

func personalityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.PersonalityTypes))
	for _, p := range domain.PersonalityTypes {
		label := string(p)
		if info, ok := catalogue.Personality(p); ok {
			label = fmt.Sprintf("%s %s %s · %s", info.Emoji, p, info.Name, info.Trait)
		}
		opts = append(opts, huh.NewOption(label, string(p)))
	}
	return opts
}

func roleOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.Roles))
	for _, r := range domain.Roles {
		label := string(r)
		if info, ok := catalogue.RoleDetails(r); ok {
			label = info.Emoji + " " + label
		}
		opts = append(opts, huh.NewOption(label, string(r)))
	}
	return opts
}

// onboardingForm collects the personalization axes, then the optional
// display info.
func onboardingForm(v *onboardValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("你的 MBTI 人格类型").
				Options(personalityOptions()...).
				Height(8).
				Value(&v.Personality),
			huh.NewSelect[string]().
				Title("你目前的身份").
				Options(roleOptions()...).
				Value(&v.Role),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("今年的搞钱目标 (可选)").
				Placeholder("年底前副业月入一万").
				Value(&v.Goal).
				Validate(validateGoal),
			huh.NewInput().
				Title("昵称 (可选)").
				Placeholder(domain.DefaultUsername).
				Value(&v.Username).
				Validate(validateUsername),
			huh.NewInput().
				Title("头像 emoji (可选)").
				Placeholder(domain.DefaultAvatar).
				Value(&v.Avatar),
		),
	).WithTheme(rich365HuhTheme()).WithShowHelp(false)
}

func validateGoal(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > maxGoalLen {
		return fmt.Errorf("目标最多 %d 个字", maxGoalLen)
	}
	return nil
}

func validateUsername(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > maxUsernameLen {
		return fmt.Errorf("昵称最多 %d 个字", maxUsernameLen)
	}
	return nil
}
