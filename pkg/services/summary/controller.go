package summary

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/de-tools/flowplan/pkg/models/domain"
	"github.com/de-tools/flowplan/pkg/services/config"
	"github.com/de-tools/flowplan/pkg/services/flowplan"
	"github.com/de-tools/flowplan/pkg/store/workbook"
)

// Controller runs the summarization pipeline for one configuration:
// load the flowplan table, read the budget figures, aggregate spend,
// compute team metrics, write the summary sheet and save a derived copy.
type Controller struct {
	cfg *config.Config
}

func NewController(cfg *config.Config) *Controller {
	return &Controller{cfg: cfg}
}

// Run executes the pipeline. Structural failures (bad config, unreadable
// file, missing sheet) abort before any output file exists; the source
// workbook is never modified in place.
func (c *Controller) Run(ctx context.Context) (*domain.Summary, error) {
	logger := zerolog.Ctx(ctx)

	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	f, err := workbook.Open(c.cfg.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := workbook.RequireSheet(f, c.cfg.Sheet); err != nil {
		return nil, err
	}

	table, err := flowplan.LoadTable(ctx, f, c.cfg.Sheet)
	if err != nil {
		return nil, err
	}

	channels, err := flowplan.ChannelSpend(table, c.cfg.Month)
	if err != nil {
		return nil, err
	}

	s := &domain.Summary{
		InputPath:  c.cfg.File,
		OutputPath: workbook.OutputPath(c.cfg.File, c.cfg.OutputSuffix),
		Month:      c.cfg.Month,
		Channels:   channels,
	}

	for _, team := range c.cfg.Teams {
		figures, err := flowplan.ReadBudgetFigures(f, c.cfg.Sheet, team.PlanCell, team.BufferCell)
		if err != nil {
			return nil, err
		}
		ytd := flowplan.TeamYTD(table, team.ActualColumn)
		s.Teams = append(s.Teams, domain.TeamSummary{
			Name:    team.Name,
			Metrics: flowplan.ComputeTeamMetrics(figures.Plan, figures.Buffer, ytd),
		})
		logger.Debug().
			Str("team", team.Name).
			Float64("plan", figures.Plan).
			Float64("buffer", figures.Buffer).
			Float64("ytd", ytd).
			Msg("team metrics computed")
	}

	if err := WriteSummary(f, c.cfg.SummarySheet, s); err != nil {
		return nil, err
	}
	if err := workbook.Save(f, s.OutputPath); err != nil {
		return nil, err
	}

	logger.Info().
		Str("output", s.OutputPath).
		Int("channels", len(s.Channels)).
		Msg("summary sheet written")

	return s, nil
}
