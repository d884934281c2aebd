package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/cli/formatter"
)

func newOnboardCmd(app *App) *cobra.Command {
	var v onboardValues
	var generate bool

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Set your MBTI type, role and goal",
		Long: "onboard 记录人格类型和身份，并生成今年的行动日历。\n" +
			"提供 --mbti 和 --role 时跳过交互表单。",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if v.Personality == "" || v.Role == "" {
				if !app.interactive() {
					return errors.New("non-interactive onboarding requires --mbti and --role")
				}
				if err := onboardingForm(&v).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			p, err := v.profile()
			if err != nil {
				return err
			}
			if err := validateUsername(v.Username); err != nil {
				return err
			}
			u, err := app.Profiles.Onboard(ctx, p, v.Username, v.Avatar)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatProfile(u))

			if !generate {
				return nil
			}
			year := app.now().Year()
			stop := formatter.StartSpinner(cmd.ErrOrStderr(), app.interactive(), fmt.Sprintf("正在生成 %d 年行动日历…", year))
			res, err := app.Generation.GenerateYear(ctx, u.ID, year)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatGeneration(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Personality, "mbti", "", "MBTI type, e.g. INTJ")
	cmd.Flags().StringVar(&v.Role, "role", "", "Role label or alias (entrepreneur, employee, creator, investor, learner)")
	cmd.Flags().StringVar(&v.Goal, "goal", "", "Wealth goal for the year")
	cmd.Flags().StringVar(&v.Username, "name", "", "Display name")
	cmd.Flags().StringVar(&v.Avatar, "avatar", "", "Avatar emoji")
	cmd.Flags().BoolVar(&generate, "generate", true, "Generate this year's calendar after onboarding")

	return cmd
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := resolveUser(cmd.Context(), app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(u))
			return nil
		},
	}
	cmd.AddCommand(newProfileListCmd(app), newProfileUseCmd(app), newProfileSetCmd(app))
	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List local users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			users, err := app.Profiles.List(ctx)
			if err != nil {
				return err
			}
			currentID := ""
			if cur, err := app.Profiles.Current(ctx); err == nil {
				currentID = cur.ID
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				mark := ""
				if u.ID == currentID {
					mark = formatter.StyleGreen.Render("●")
				}
				rows = append(rows, []string{mark, formatter.TruncID(u.ID), u.DisplayAvatar() + " " + u.DisplayName(),
					string(u.Profile.PersonalityType), string(u.Profile.Role)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"", "ID", "用户", "人格", "身份"}, rows))
			return nil
		},
	}
}

func newProfileUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <user-id>",
		Short: "Switch the current user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.userFlag = args[0]
			u, err := resolveUser(cmd.Context(), app)
			if err != nil {
				return err
			}
			if err := app.Profiles.Use(cmd.Context(), u.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "当前用户: %s %s\n", u.DisplayAvatar(), u.DisplayName())
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var v onboardValues

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			if err := validateUsername(v.Username); err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("name") {
				v.Username = u.Username
			}
			if !flags.Changed("avatar") {
				v.Avatar = u.Avatar
			}
			if !flags.Changed("mbti") && !flags.Changed("role") && !flags.Changed("goal") {
				if err := app.Profiles.UpdateDisplayInfo(ctx, u.ID, v.Username, v.Avatar); err != nil {
					return err
				}
			} else {
				if !flags.Changed("mbti") {
					v.Personality = string(u.Profile.PersonalityType)
				}
				if !flags.Changed("role") {
					v.Role = string(u.Profile.Role)
				}
				if !flags.Changed("goal") {
					v.Goal = u.Profile.Goal
				}
				p, err := v.profile()
				if err != nil {
					return err
				}
				if _, err := app.Profiles.SaveProfile(ctx, u.ID, p, v.Username, v.Avatar); err != nil {
					return err
				}
			}

			updated, err := app.Profiles.Get(ctx, u.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(updated))
			return nil
		},
	}

	cmd.Flags().StringVar(&v.Personality, "mbti", "", "MBTI type")
	cmd.Flags().StringVar(&v.Role, "role", "", "Role label or alias")
	cmd.Flags().StringVar(&v.Goal, "goal", "", "Wealth goal")
	cmd.Flags().StringVar(&v.Username, "name", "", "Display name")
	cmd.Flags().StringVar(&v.Avatar, "avatar", "", "Avatar emoji")
	return cmd
}
