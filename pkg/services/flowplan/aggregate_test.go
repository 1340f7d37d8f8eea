package flowplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

func tableOf(rows ...domain.Row) *domain.Table {
	return &domain.Table{Rows: rows}
}

func TestTeamYTD(t *testing.T) {
	table := tableOf(
		domain.Row{domain.ColCampaign: "Camp1", domain.ColActual: "100", domain.ColActualSecondary: "40"},
		domain.Row{domain.ColCampaign: "Camp2", domain.ColActual: "50.5", domain.ColActualSecondary: "n/a"},
		// Channel-detail rows never contribute to team totals.
		domain.Row{domain.ColChannel: "Social", domain.ColActual: "999"},
		domain.Row{domain.ColCampaign: "Camp3", domain.ColChannel: "DV360", domain.ColActual: "999"},
		// Rows matching neither class are ignored.
		domain.Row{},
	)

	assert.Equal(t, 150.5, TeamYTD(table, domain.ColActual))
	assert.Equal(t, 40.0, TeamYTD(table, domain.ColActualSecondary))
}

func TestChannelSpend(t *testing.T) {
	t.Run("groups and sums rows of the same channel", func(t *testing.T) {
		table := tableOf(
			domain.Row{domain.ColChannel: "DV360", "Jan": "10", "Feb": "20"},
			domain.Row{domain.ColChannel: "DV360", "Jan": "5", "Feb": "0"},
		)

		channels, err := ChannelSpend(table, 2)
		require.NoError(t, err)
		require.Len(t, channels, 1)

		assert.Equal(t, "DV360", channels[0].Channel)
		assert.Equal(t, 35.0, channels[0].YTDSpend)
		assert.Equal(t, 20.0, channels[0].CurrentMonthSpend)
	})

	t.Run("output sorted ascending by channel name", func(t *testing.T) {
		table := tableOf(
			domain.Row{domain.ColChannel: "Social Media", "Jan": "1"},
			domain.Row{domain.ColChannel: "DV360", "Jan": "2"},
			domain.Row{domain.ColChannel: "Local Publishers", "Jan": "3"},
		)

		channels, err := ChannelSpend(table, 1)
		require.NoError(t, err)
		require.Len(t, channels, 3)

		assert.Equal(t, "DV360", channels[0].Channel)
		assert.Equal(t, "Local Publishers", channels[1].Channel)
		assert.Equal(t, "Social Media", channels[2].Channel)
	})

	t.Run("grouping is exact string match", func(t *testing.T) {
		table := tableOf(
			domain.Row{domain.ColChannel: "DV360", "Jan": "10"},
			domain.Row{domain.ColChannel: "DV360 ", "Jan": "5"},
		)

		channels, err := ChannelSpend(table, 1)
		require.NoError(t, err)
		assert.Len(t, channels, 2)
	})

	t.Run("month 1 includes only January", func(t *testing.T) {
		table := tableOf(
			domain.Row{domain.ColChannel: "DV360", "Jan": "10", "Feb": "20", "Dec": "30"},
		)

		channels, err := ChannelSpend(table, 1)
		require.NoError(t, err)
		assert.Equal(t, 10.0, channels[0].YTDSpend)
		assert.Equal(t, 10.0, channels[0].CurrentMonthSpend)
	})

	t.Run("month 12 includes all twelve months", func(t *testing.T) {
		row := domain.Row{domain.ColChannel: "DV360"}
		for _, m := range domain.Months {
			row[m] = "1"
		}

		channels, err := ChannelSpend(tableOf(row), 12)
		require.NoError(t, err)
		assert.Equal(t, 12.0, channels[0].YTDSpend)
		assert.Equal(t, 1.0, channels[0].CurrentMonthSpend)
	})

	t.Run("non-numeric month cells coerce to zero", func(t *testing.T) {
		table := tableOf(
			domain.Row{domain.ColChannel: "DV360", "Jan": "tbd", "Feb": "20"},
		)

		channels, err := ChannelSpend(table, 2)
		require.NoError(t, err)
		assert.Equal(t, 20.0, channels[0].YTDSpend)
	})

	t.Run("month out of range rejected", func(t *testing.T) {
		table := tableOf(domain.Row{domain.ColChannel: "DV360", "Jan": "1"})

		_, err := ChannelSpend(table, 0)
		assert.Error(t, err)

		_, err = ChannelSpend(table, 13)
		assert.Error(t, err)
	})
}
