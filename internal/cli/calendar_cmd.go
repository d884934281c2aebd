package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/cli/formatter"
	"github.com/rich365/rich365/internal/domain"
)

// checkedDates returns the set of dates in [from, to] with a check-in.
func checkedDates(ctx context.Context, app *App, userID, from, to string) (map[string]bool, error) {
	history, err := app.CheckIns.History(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(history))
	for _, c := range history {
		out[c.Date] = true
	}
	return out, nil
}

func newMonthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "month [year] [month]",
		Short: "Show a month of daily actions",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.now()
			year, month, err := resolveYearMonth(args, now)
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}

			mt, err := app.Calendar.MonthTheme(ctx, u.ID, year, month)
			if err != nil {
				return err
			}
			actions, err := app.Calendar.MonthActions(ctx, u.ID, year, month)
			if err != nil {
				return err
			}
			checked, err := checkedDates(ctx, app, u.ID,
				domain.FormatDate(year, month, 1), domain.FormatDate(year, month, domain.DaysInMonth(year, month)))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(year, *mt, actions, checked, now))
			return nil
		},
	}
}

func showDay(cmd *cobra.Command, app *App, input string) error {
	ctx := cmd.Context()
	now := app.now()
	date, err := resolveDate(input, now)
	if err != nil {
		return err
	}
	u, err := resolveUser(ctx, app)
	if err != nil {
		return err
	}
	a, err := app.Calendar.DailyAction(ctx, u.ID, date)
	if err != nil {
		return err
	}
	checked, err := checkedDates(ctx, app, u.ID, date, date)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(a, checked[date], now))
	return nil
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's action",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDay(cmd, app, "")
		},
	}
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day <date>",
		Short: "Show the action for a date (YYYY-MM-DD, today, tomorrow)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showDay(cmd, app, args[0])
		},
	}
}

func newThemesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "themes [year]",
		Short: "Show the twelve month themes",
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
			themes, err := app.Calendar.YearThemes(ctx, u.ID, year)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatThemes(year, themes))
			return nil
		},
	}
}
