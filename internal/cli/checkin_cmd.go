package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/cli/formatter"
	"github.com/rich365/rich365/internal/domain"
)

const defaultHistoryDays = 30

func newCheckInCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:     "checkin [date]",
		Aliases: []string{"ci"},
		Short:   "Check in an action as done (default today)",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			input := ""
			if len(args) > 0 {
				input = args[0]
			}
			date, err := resolveDate(input, app.now())
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			res, err := app.CheckIns.CheckIn(ctx, u.ID, date, note)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckIn(date, res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "What you did")
	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show streaks, coins, badges and the money tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			r, err := app.CheckIns.Progress(ctx, u.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(r))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List check-ins in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.now()
			if to == "" {
				to = now.Format(domain.DateLayout)
			}
			if from == "" {
				from = now.AddDate(0, 0, -defaultHistoryDays+1).Format(domain.DateLayout)
			}
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			history, err := app.CheckIns.History(ctx, u.ID, from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("%s ~ %s 没有打卡记录", from, to)))
				return nil
			}
			rows := make([][]string, 0, len(history))
			for _, c := range history {
				rows = append(rows, []string{c.Date, formatter.RelativeDay(c.Date, now), c.Note})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"日期", "", "备注"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date (YYYY-MM-DD), default 30 days ago")
	cmd.Flags().StringVar(&to, "to", "", "Last date (YYYY-MM-DD), default today")
	return cmd
}
