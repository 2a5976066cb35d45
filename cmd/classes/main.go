package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ingest/internal/config"
	"ingest/internal/fields"
	"ingest/internal/pipeline"
	"ingest/internal/table"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Flatten a class schedule export into one row per class section",
		Long: `Reads a class schedule workbook (xlsx, HTML table or CSV), splits the
class name, schedule and room cells into their parts and writes the result
as CSV, or as a workbook when the output ends in .xlsx.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := cfg.Logger()

			loader := table.NewLoader(cfg.CSVEncodings, log)
			parser := fields.NewParser(fields.NewVocabulary(cfg.ValidMajors, cfg.InvalidRooms))

			res, err := pipeline.NewClassesPipeline(loader, parser, log).Run(input, output)
			if err != nil {
				return err
			}
			fmt.Printf("Data saved to %s\n", res.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Class schedule file")
	cmd.Flags().StringVar(&output, "csv-output", "", "Output path (.csv or .xlsx)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("csv-output")

	return cmd
}
