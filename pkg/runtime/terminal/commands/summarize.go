package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/flowplan/pkg/adapters"
	"github.com/de-tools/flowplan/pkg/runtime/terminal/export"
	"github.com/de-tools/flowplan/pkg/services/config"
	"github.com/de-tools/flowplan/pkg/services/summary"
)

type SummarizeCmd struct {
	configPath string
	file       string
	month      int
	format     string
	verbose    bool
	out        io.Writer
}

func NewSummarizeCmd(out io.Writer) *cobra.Command {
	sc := &SummarizeCmd{out: out}
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Compute budget metrics and write the summary sheet",
		RunE:  sc.run,
	}

	// Define flags
	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to an optional configuration file")
	cmd.Flags().StringVarP(&sc.file, "file", "f", "", "Path to the flowplan workbook")
	cmd.Flags().IntVarP(&sc.month, "month", "m", 0, "Current month (1 = Jan ... 12 = Dec)")
	cmd.Flags().StringVar(&sc.format, "format", "table", "Terminal output format (table or text)")
	cmd.Flags().BoolVarP(&sc.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func (sc *SummarizeCmd) run(cmd *cobra.Command, _ []string) error {
	level := zerolog.InfoLevel
	if sc.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(sc.configPath)
	if err != nil {
		return err
	}
	if sc.file != "" {
		cfg.File = sc.file
	}
	if sc.month != 0 {
		cfg.Month = sc.month
	}

	reporter, err := export.ForFormat(sc.format, sc.out)
	if err != nil {
		return err
	}

	result, err := summary.NewController(cfg).Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to summarize flowplan: %w", err)
	}

	if err := reporter.Handle(adapters.MapSummaryToReport(result)); err != nil {
		return err
	}

	_, err = fmt.Fprintf(sc.out, "\nSummary written to %s\n", result.OutputPath)
	return err
}
