package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/cli/formatter"
	"github.com/rich365/rich365/internal/theme"
)

func newGenerateCmd(app *App) *cobra.Command {
	var month int
	var yes bool

	cmd := &cobra.Command{
		Use:   "generate [year]",
		Short: "Generate and store the action calendar",
		Long: "generate 为整年生成行动日历；已有日历时跳过。\n" +
			"--month 重新生成某个月并覆盖已保存的行动。",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			year, _, err := resolveYearMonth(args, app.now())
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}

			if month == 0 {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), app.interactive(), fmt.Sprintf("正在生成 %d 年行动日历…", year))
				res, err := app.Generation.GenerateYear(ctx, u.ID, year)
				stop()
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatGeneration(res))
				return nil
			}

			if !yes && app.interactive() {
				msg := fmt.Sprintf("将覆盖 %d 年%s已保存的行动，继续? [y/N]: ", year, theme.MonthName(month))
				if !confirm(app.stdin(), out, msg) {
					fmt.Fprintln(out, formatter.Dim("已取消"))
					return nil
				}
			}
			stop := formatter.StartSpinner(cmd.ErrOrStderr(), app.interactive(), "正在生成…")
			res, err := app.Generation.GenerateMonth(ctx, u.ID, year, month)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatGeneration(res))
			return nil
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Regenerate a single month (1-12)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the overwrite confirmation")
	return cmd
}

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [year]",
		Short: "Generate a twelve-month plan toward your goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			year, _, err := resolveYearMonth(args, app.now())
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			stop := formatter.StartSpinner(cmd.ErrOrStderr(), app.interactive(), "正在规划…")
			themes, err := app.Generation.GenerateYearlyPlan(ctx, u.ID, year)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(year, themes))
			return nil
		},
	}
}

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Suggest three actions for your goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			res, err := app.Generation.GoalActions(ctx, u.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalActions(u.Profile.Goal, res))
			return nil
		},
	}
	cmd.AddCommand(newGoalCheckCmd(app))
	return cmd
}

func newGoalCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <goal>",
		Short: "Check whether a goal is concrete enough",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := strings.Join(args, " ")
			v, err := app.Generation.ValidateGoal(cmd.Context(), goal)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if v.Valid {
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔ 目标清晰可执行"))
				return nil
			}
			fmt.Fprintln(out, formatter.StyleYellow.Render("✗ 目标不够具体"))
			if v.Suggestion != "" {
				fmt.Fprintf(out, "  %s %s\n", formatter.Dim("建议"), v.Suggestion)
			}
			return nil
		},
	}
}
