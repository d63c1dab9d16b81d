package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"StrategyScope/internal/analysis"
	"StrategyScope/internal/collector"
	"StrategyScope/internal/display"
	"StrategyScope/internal/model"
)

const defaultConfigPath = "configs/config.yaml"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scope",
		Short: "StrategyScope - backtest metric analysis",
		Long: `StrategyScope rates backtest statistics (Sharpe, win rate, drawdown, profit factor,
trade duration, Kelly) and classifies the strategy into a trading profile.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newMetricCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newServeCmd())

	cfgPath := defaultConfigPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	rootCmd.PersistentFlags().String("config", cfgPath, "Configuration file path")

	return rootCmd
}

var metricFlags = []struct {
	name   string
	metric model.MetricType
	usage  string
}{
	{"sharpe", model.MetricSharpeRatio, "Sharpe ratio"},
	{"win-rate", model.MetricWinRate, "Win rate in percent (0-100)"},
	{"drawdown", model.MetricMaxDrawdown, "Maximum drawdown in percent, either sign"},
	{"profit-factor", model.MetricProfitFactor, "Profit factor"},
	{"duration", model.MetricAvgTradeDuration, "Average trade duration in hours"},
	{"kelly", model.MetricKellyPercent, "Kelly percentage"},
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Evaluate a full set of strategy metrics",
		Long: `Evaluate every metric and the strategy profile.
Example: scope analyze --file data/strategies/rsi.yaml
         scope analyze --sharpe 1.8 --win-rate 58 --drawdown -14 --profit-factor 1.7 --duration 6 --kelly 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			asJSON, _ := cmd.Flags().GetBool("json")

			var (
				metrics *model.StrategyMetrics
				name    string
			)
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				doc, err := collector.ReadDocument(data)
				if err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
				metrics, name = &doc.Metrics, doc.Name
			} else {
				m, err := metricsFromFlags(cmd)
				if err != nil {
					return err
				}
				metrics = m
			}

			if err := metrics.Validate(); err != nil {
				return err
			}
			report := analysis.Evaluate(metrics)
			report.Name = name

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), display.RenderReport(report))
			return err
		},
	}

	cmd.Flags().String("file", "", "Metric document (YAML or JSON)")
	names := make([]string, 0, len(metricFlags))
	for _, f := range metricFlags {
		cmd.Flags().Float64(f.name, 0, f.usage)
		cmd.MarkFlagsMutuallyExclusive("file", f.name)
		names = append(names, f.name)
	}
	cmd.MarkFlagsRequiredTogether(names...)
	cmd.Flags().Bool("json", false, "Print the report as JSON")

	return cmd
}

// metricsFromFlags reads all six metric flags. A metric left out would otherwise be
// analyzed as zero, so every flag must be given.
func metricsFromFlags(cmd *cobra.Command) (*model.StrategyMetrics, error) {
	var (
		m       model.StrategyMetrics
		missing []string
	)
	for _, f := range metricFlags {
		if !cmd.Flags().Changed(f.name) {
			missing = append(missing, "--"+f.name)
			continue
		}
		v, err := cmd.Flags().GetFloat64(f.name)
		if err != nil {
			return nil, err
		}
		switch f.metric {
		case model.MetricSharpeRatio:
			m.SharpeRatio = v
		case model.MetricWinRate:
			m.WinRate = v
		case model.MetricMaxDrawdown:
			m.MaxDrawdown = v
		case model.MetricProfitFactor:
			m.ProfitFactor = v
		case model.MetricAvgTradeDuration:
			m.AvgTradeDuration = v
		case model.MetricKellyPercent:
			m.KellyPercent = v
		}
	}
	switch {
	case len(missing) == len(metricFlags):
		return nil, errors.New("provide --file or all six metric flags")
	case len(missing) > 0:
		return nil, fmt.Errorf("missing metric flags: %s", strings.Join(missing, ", "))
	}
	return &m, nil
}

func newMetricCmd() *cobra.Command {
	keys := make([]string, 0, len(metricFlags))
	for _, t := range model.MetricTypes() {
		keys = append(keys, string(t))
	}

	cmd := &cobra.Command{
		Use:   "metric <key> <value>",
		Short: "Classify a single metric value",
		Long: fmt.Sprintf(`Classify one metric value. Known keys: %s.
Unknown keys produce a neutral "analysis unavailable" result.`, strings.Join(keys, ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("value %q is not a finite number", args[1])
			}
			a := analysis.GetMetricAnalysis(args[0], v)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd.OutOrStdout(), a)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), display.RenderAnalysis(args[0], v, a))
			return err
		},
	}
	cmd.Flags().Bool("json", false, "Print the analysis as JSON")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a metric document against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			errs := collector.ValidateDocument(data)
			if len(errs) == 0 {
				fmt.Fprintf(out, "✅ %s is valid\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "❌ %s has %d problem(s):\n", args[0], len(errs))
			for _, e := range errs {
				fmt.Fprintf(out, "  • %s\n", e)
			}
			return fmt.Errorf("%s failed schema validation", args[0])
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
