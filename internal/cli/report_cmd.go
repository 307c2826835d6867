package cli

import (
	"bytes"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"timesheet/backend/internal/dto"
)

// reportPageSize 报表一次取完整个区间
const reportPageSize = 1 << 16

func newReportCmd(opts *rootOptions) *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "按日期区间输出工时表（缺失日期以占位行补齐）",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := opts.requireUser()
			if err != nil {
				return err
			}
			start, end, err := resolveRange(opts.from, opts.to, time.Now())
			if err != nil {
				return err
			}

			req := &dto.TimesheetViewRequest{
				PaginationRequest: dto.PaginationRequest{Page: 1, PageSize: reportPageSize},
				UserID:            userID,
				StartDate:         start,
				EndDate:           end,
				Preset:            preset,
			}
			res, err := opts.app.Timesheet.View(cmd.Context(), cliActor, req)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := newPalette(w, opts.noColor)
			if res.StartDate != "" {
				printf(w, "员工 %s  %s ~ %s\n\n", userID, res.StartDate, res.EndDate)
			} else {
				printf(w, "员工 %s  全部记录\n\n", userID)
			}

			printf(w, "%s", renderTable(res.List, p))
			printf(w, "\n共 %d 条记录，合计 %s\n", res.Summary.Entries, p.bold(res.Summary.TotalWorked))
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "快捷区间：today | this_week | this_month | last_30_days（优先于 --from/--to）")
	return cmd
}

// renderTable 先按纯文本对齐，再给表头和状态列着色，转义序列不影响列宽
func renderTable(rows []dto.TimesheetRow, p palette) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	printf(tw, "DATE\tDAY\tSTART\tEND\tBREAK\tWORKED\tSTATUS\n")
	for _, row := range rows {
		printf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Date, row.DayOfWeek, dash(row.StartTime), dash(row.EndTime),
			dash(row.BreakDuration), dash(row.WorkedTime), row.Status)
	}
	_ = tw.Flush()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	var out strings.Builder
	for i, line := range lines {
		switch {
		case i == 0:
			line = p.header(line)
		case i-1 < len(rows):
			status := rows[i-1].Status
			line = strings.TrimSuffix(line, status) + p.status(status)
		}
		out.WriteString(line)
		out.WriteByte('\n')
	}
	return out.String()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
