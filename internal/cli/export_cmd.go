package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rich365/rich365/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [year] [month]",
		Short: "Export a month as an iCalendar (.ics) file",
		Long:  "export 写出一个月的 .ics 日历文件；-o - 输出到标准输出。",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			year, month, err := resolveYearMonth(args, app.now())
			if err != nil {
				return err
			}
			u, err := resolveUser(ctx, app)
			if err != nil {
				return err
			}
			data, err := app.Export.MonthICS(ctx, u.ID, year, month)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if output == "" {
				output = export.FileName(year, month)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已导出 %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default the standard file name, - for stdout)")
	return cmd
}
