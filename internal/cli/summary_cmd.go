package cli

import (
	"github.com/spf13/cobra"

	"timesheet/backend/internal/dto"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "今日 / 本周 / 本月 / 近 30 天工时汇总",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := opts.requireUser()
			if err != nil {
				return err
			}

			res, err := opts.app.Timesheet.Summaries(cmd.Context(), cliActor, userID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printf(w, "员工 %s\n", userID)
			for _, card := range []struct {
				label string
				s     dto.SummaryResponse
			}{
				{"今日", res.Today},
				{"本周", res.ThisWeek},
				{"本月", res.ThisMonth},
				{"近 30 天", res.Last30Days},
			} {
				printf(w, "  %-8s %3d 条  %s\n", card.label, card.s.Entries, card.s.TotalWorked)
			}
			return nil
		},
	}
}
