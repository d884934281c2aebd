package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/metrics"
	"github.com/rich365/rich365/internal/service"
)

// App holds the services and process settings used by CLI commands.
type App struct {
	Profiles    service.ProfileService
	Calendar    service.CalendarService
	Generation  service.GenerationService
	CheckIns    service.CheckInService
	Leaderboard service.LeaderboardService
	Export      service.ExportService

	// Clock returns now in the configured zone.
	Clock func() time.Time
	// IsInteractive reports whether stdin is a terminal. Forms and the
	// browse UI need one.
	IsInteractive func() bool
	// In feeds confirmation prompts. Defaults to os.Stdin.
	In io.Reader

	HTTPAddr    string
	CORSOrigins []string
	Metrics     *metrics.Metrics
	Logger      *slog.Logger

	userFlag string
}

func (a *App) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) stdin() io.Reader {
	if a.In == nil {
		return os.Stdin
	}
	return a.In
}

// NewRootCmd creates the top-level "rich365" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "rich365",
		Short:         "每日搞钱行动日历",
		Long:          "rich365 根据人格类型和身份，每天给出一个可执行的搞钱小行动。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&app.userFlag, "user", "u", "", "User ID or ID prefix (defaults to the current user)")

	root.AddCommand(
		newOnboardCmd(app),
		newProfileCmd(app),
		newMonthCmd(app),
		newTodayCmd(app),
		newDayCmd(app),
		newThemesCmd(app),
		newGenerateCmd(app),
		newPlanCmd(app),
		newGoalCmd(app),
		newCheckInCmd(app),
		newStatsCmd(app),
		newHistoryCmd(app),
		newLeaderboardCmd(app),
		newRankCmd(app),
		newExportCmd(app),
		newBrowseCmd(app),
		newServeCmd(app),
	)
	return root
}
