// Package main provides the CLI entry point for mocap-app.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cooper-710/mocap-app/pkg/mocap"
	"github.com/cooper-710/mocap-app/pkg/mocap/output"
)

var (
	outputPath string
	pretty     bool
	mode       string
	fromURL    string
	fps        float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mocap [input.xlsx]",
		Short: "Extract time-series from motion-capture spreadsheet exports",
		Long: `mocap extracts numeric time-series from motion-capture workbook exports
and outputs JSON for the visualization frontend.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&mode, "mode", "needed", "Extraction mode: needed, rows, legacy")
	rootCmd.Flags().StringVar(&fromURL, "url", "", "Fetch the workbook from a URL instead of a file")
	rootCmd.PersistentFlags().Float64Var(&fps, "fps", mocap.DefaultOptions().FPSGuess, "Frames-per-second guess for frame-indexed sheets")

	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && fromURL == "" {
		return fmt.Errorf("provide an input file or --url")
	}

	opts := mocap.Options{FPSGuess: fps}

	var data []byte
	var err error
	if fromURL != "" {
		data, err = mocap.FetchWorkbook(cmd.Context(), fromURL)
		if err != nil {
			return err
		}
	} else {
		inputPath := args[0]
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}
		data, err = os.ReadFile(inputPath)
		if err != nil {
			return err
		}
	}

	var result interface{}
	switch mode {
	case "needed":
		res := mocap.NeededMetricsFromBytes(data, opts)
		printWarnings(res.Warnings)
		if !res.OK {
			color.New(color.FgRed).Fprintf(os.Stderr, "extraction failed: %s\n", res.Why)
		}
		result = res
	case "rows":
		sheets, err := mocap.ExtractBytes(data, opts)
		if err != nil {
			return err
		}
		result = sheets
	case "legacy":
		rows, err := mocap.LegacyRowsFromBytes(data, opts)
		if err != nil {
			return err
		}
		result = rows
	default:
		return fmt.Errorf("invalid mode: %s (must be needed, rows, or legacy)", mode)
	}

	jsonData, err := output.ToJSON(result, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func printWarnings(warnings []string) {
	yellow := color.New(color.FgYellow)
	for _, w := range warnings {
		yellow.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}
