package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/wealthpath/advisor/internal/calculation"
	"github.com/wealthpath/advisor/internal/config"
	"github.com/wealthpath/advisor/internal/output"
	"github.com/wealthpath/advisor/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Personal financial advisory calculator CLI",
	Long:  "Retirement feasibility, what-if scenarios, and financial metrics over a YAML financial profile",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "advisor %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadEngine parses the input file and builds an engine from its assumptions.
func loadEngine(cmd *cobra.Command, inputFile string) (*config.Input, *calculation.Engine, error) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, nil, err
	}

	engine, err := calculation.NewEngineWithAssumptions(input.Assumptions)
	if err != nil {
		return nil, nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		engine.SetLogger(simpleCLILogger{})
	}
	return input, engine, nil
}

// writeReport renders the report with the formatter selected by --format.
func writeReport(cmd *cobra.Command, report *output.Report) error {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

var planCmd = &cobra.Command{
	Use:   "plan [input-file]",
	Short: "Find the earliest feasible retirement age for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadEngine(cmd, args[0])
		if err != nil {
			return err
		}
		plan, err := engine.ComputeCurrentPlan(&input.Profile)
		if err != nil {
			return err
		}
		return writeReport(cmd, &output.Report{Plan: plan})
	},
}

var whatIfCmd = &cobra.Command{
	Use:   "whatif [input-file]",
	Short: "Solve a fixed-age what-if scenario from the input's whatif block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadEngine(cmd, args[0])
		if err != nil {
			return err
		}
		if input.WhatIf == nil {
			return fmt.Errorf("input file %s has no whatif block", args[0])
		}
		result, err := engine.ComputeWhatIf(input.WhatIf)
		if err != nil {
			return err
		}
		return writeReport(cmd, &output.Report{WhatIf: result})
	},
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario [input-file]",
	Short: "Project a risk-level scenario from the input's scenario block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadEngine(cmd, args[0])
		if err != nil {
			return err
		}
		if input.Scenario == nil {
			return fmt.Errorf("input file %s has no scenario block", args[0])
		}
		result, err := engine.ComputeScenario(&input.Profile, input.Scenario)
		if err != nil {
			return err
		}
		return writeReport(cmd, &output.Report{Scenario: result})
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics [input-file]",
	Short: "Compute the financial metrics report for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadEngine(cmd, args[0])
		if err != nil {
			return err
		}
		metrics := engine.ComputeMetrics(&input.Profile, input.Holdings)
		return writeReport(cmd, &output.Report{Metrics: metrics})
	},
}

var healthCmd = &cobra.Command{
	Use:   "health [input-file]",
	Short: "Run the savings and retirement health checklists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadEngine(cmd, args[0])
		if err != nil {
			return err
		}
		return writeReport(cmd, &output.Report{
			SavingsHealth:    engine.AnalyzeSavingsHealth(&input.Profile),
			RetirementHealth: engine.AnalyzeRetirementHealth(&input.Profile),
		})
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive [input-file]",
	Short: "Explore what-if scenarios interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, engine, err := loadEngine(cmd, args[0])
		if err != nil {
			return err
		}
		return tui.Run(engine, input)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{planCmd, whatIfCmd, scenarioCmd, metricsCmd, healthCmd} {
		cmd.Flags().String("format", "console", "output format (console, json, csv)")
		cmd.Flags().Bool("verbose", false, "enable engine debug logging")
	}
	interactiveCmd.Flags().Bool("verbose", false, "enable engine debug logging")

	rootCmd.AddCommand(planCmd, whatIfCmd, scenarioCmd, metricsCmd, healthCmd, interactiveCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
