package adapters

import (
	"fmt"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

var teamColumns = []string{
	"Team", "LTP", "Buffer", "YTD Spend", "Base limit",
	"Over vs base", "Remaining LTP", "Consumed buffer", "Remaining buffer", "YTG total",
}

var channelColumns = []string{"Channel", "Spend YTD", "Spend current month"}

// MapSummaryToReport shapes a pipeline result for the terminal reporters.
func MapSummaryToReport(s *domain.Summary) *domain.Report {
	month := domain.Months[s.Month-1]

	teamRows := make([][]any, 0, len(s.Teams))
	for _, t := range s.Teams {
		m := t.Metrics
		teamRows = append(teamRows, []any{
			t.Name, m.Plan, m.Buffer, m.YTDSpend, m.BaseLimit,
			m.OverVsBase, m.RemainingPlan, m.ConsumedBuffer, m.RemainingBuffer, m.YTGTotal,
		})
	}

	channelRows := make([][]any, 0, len(s.Channels))
	for _, c := range s.Channels {
		channelRows = append(channelRows, []any{c.Channel, c.YTDSpend, c.CurrentMonthSpend})
	}

	return &domain.Report{
		Title: "Budget Flowplan Summary",
		Month: month,
		Sections: []domain.ReportSection{
			{
				Title:   "Team budget status",
				Columns: teamColumns,
				Rows:    teamRows,
			},
			{
				Title:   fmt.Sprintf("Channel spend (current month = %s)", month),
				Columns: channelColumns,
				Rows:    channelRows,
			},
		},
	}
}
