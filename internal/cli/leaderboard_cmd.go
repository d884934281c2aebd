package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/cli/formatter"
	"github.com/rich365/rich365/internal/domain"
)

func newLeaderboardCmd(app *App) *cobra.Command {
	var kind string
	var limit int

	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Show the top users by streak or total check-ins",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			entries, err := app.Leaderboard.Top(ctx, k, limit)
			if err != nil {
				return err
			}
			highlight := ""
			if u, err := resolveUser(ctx, app); err == nil {
				highlight = u.ID
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLeaderboard(k, entries, highlight))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(domain.LeaderboardStreak), "streak or total")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of entries")
	return cmd
}

func newRankCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Show your leaderboard position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			r, err := app.Leaderboard.Rank(ctx, u.ID, k)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRank(r))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(domain.LeaderboardStreak), "streak or total")
	return cmd
}
