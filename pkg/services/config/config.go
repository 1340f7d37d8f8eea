package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

// TeamSpec names a team and tells the pipeline where its budget figures
// live: the plan/buffer cells on the flowplan sheet and the column holding
// its actual spend on campaign-summary rows.
type TeamSpec struct {
	Name         string `mapstructure:"name"`
	PlanCell     string `mapstructure:"plan_cell"`
	BufferCell   string `mapstructure:"buffer_cell"`
	ActualColumn string `mapstructure:"actual_column"`
}

// Config carries all run parameters for one pipeline invocation.
type Config struct {
	File         string     `mapstructure:"file"`
	Month        int        `mapstructure:"month"`
	Sheet        string     `mapstructure:"sheet"`
	SummarySheet string     `mapstructure:"summary_sheet"`
	OutputSuffix string     `mapstructure:"output_suffix"`
	Teams        []TeamSpec `mapstructure:"teams"`
}

// Default returns the configuration matching the 2025 digital flowplan
// layout: two teams with their fixed scalar cells and actual-spend columns.
func Default() *Config {
	return &Config{
		Month:        1,
		Sheet:        "V2 2025 budget digital",
		SummarySheet: "Automated Summary",
		OutputSuffix: "_automated",
		Teams: []TeamSpec{
			{Name: "MarCom", PlanCell: "K2", BufferCell: "K4", ActualColumn: domain.ColActual},
			{Name: "Digital Marketing", PlanCell: "Q2", BufferCell: "Q4", ActualColumn: domain.ColActualSecondary},
		},
	}
}

// Load reads a config file on top of the defaults. An empty path returns
// the defaults unchanged; flags are applied by the caller afterwards.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flowplan config: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with. The month
// range check replaces the silent partial-slice behavior an out-of-range
// month would otherwise cause.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("input workbook path is required")
	}
	if c.Month < 1 || c.Month > 12 {
		return fmt.Errorf("current month %d is out of range 1-12", c.Month)
	}
	if c.Sheet == "" {
		return fmt.Errorf("flowplan sheet name is required")
	}
	if c.SummarySheet == "" {
		return fmt.Errorf("summary sheet name is required")
	}
	if len(c.Teams) == 0 {
		return fmt.Errorf("at least one team must be configured")
	}
	for _, t := range c.Teams {
		if t.Name == "" {
			return fmt.Errorf("team name cannot be empty")
		}
		if t.PlanCell == "" || t.BufferCell == "" {
			return fmt.Errorf("team %q: plan and buffer cells are required", t.Name)
		}
		if t.ActualColumn == "" {
			return fmt.Errorf("team %q: actual-spend column is required", t.Name)
		}
	}
	return nil
}
