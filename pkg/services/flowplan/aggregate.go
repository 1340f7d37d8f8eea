package flowplan

import (
	"fmt"
	"sort"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

// TeamYTD sums the given actual-spend column over campaign-summary rows.
// Missing and non-numeric values count as zero.
func TeamYTD(t *domain.Table, column string) float64 {
	var total float64
	for _, row := range t.Rows {
		if row.IsCampaignSummary() {
			total += row.Number(column)
		}
	}
	return total
}

// ChannelSpend aggregates channel-detail rows by exact channel name:
// YTD spend over Jan..month and the spend of month alone. The result is
// sorted ascending by channel name.
func ChannelSpend(t *domain.Table, month int) ([]domain.ChannelAggregate, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("current month %d is out of range 1-12", month)
	}
	active := domain.Months[:month]
	current := domain.Months[month-1]

	byChannel := make(map[string]*domain.ChannelAggregate)
	for _, row := range t.Rows {
		if !row.IsChannelDetail() {
			continue
		}
		name := row.Value(domain.ColChannel)
		agg, ok := byChannel[name]
		if !ok {
			agg = &domain.ChannelAggregate{Channel: name}
			byChannel[name] = agg
		}
		for _, m := range active {
			agg.YTDSpend += row.Number(m)
		}
		agg.CurrentMonthSpend += row.Number(current)
	}

	names := make([]string, 0, len(byChannel))
	for name := range byChannel {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]domain.ChannelAggregate, 0, len(names))
	for _, name := range names {
		out = append(out, *byChannel[name])
	}
	return out, nil
}
