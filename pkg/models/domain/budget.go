package domain

// BudgetFigures holds a team's committed budget baseline (plan, a.k.a. LTP)
// and the additional headroom beyond it (buffer). Read once per run.
type BudgetFigures struct {
	Plan   float64
	Buffer float64
}

// TeamMetrics is the derived budget-consumption record for one team,
// fully determined by (plan, buffer, ytdSpend).
type TeamMetrics struct {
	Plan            float64
	Buffer          float64
	YTDSpend        float64
	BaseLimit       float64 // plan - buffer
	OverVsBase      float64 // ytdSpend - baseLimit
	RemainingPlan   float64
	ConsumedBuffer  float64
	RemainingBuffer float64
	YTGTotal        float64 // plan + buffer - ytdSpend, floored at zero
}

// TeamSummary pairs a team name with its computed metrics.
type TeamSummary struct {
	Name    string
	Metrics TeamMetrics
}

// ChannelAggregate holds per-channel spend totals: year-to-date over the
// active months and the current month alone.
type ChannelAggregate struct {
	Channel           string
	YTDSpend          float64
	CurrentMonthSpend float64
}

// Summary is the result of one pipeline run.
type Summary struct {
	InputPath  string
	OutputPath string
	Month      int
	Teams      []TeamSummary
	Channels   []ChannelAggregate
}
