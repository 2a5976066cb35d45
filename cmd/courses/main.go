package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ingest/internal/config"
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
	var input, sheet, csvOutput, jsonOutput string

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Clean a course catalogue and group its courses by class",
		Long: `Reads a course catalogue workbook, takes the academic year and semester
from its title, writes the cleaned table and a JSON document that lists the
courses of every class grouped by semester and cohort.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := cfg.Logger()

			opts := pipeline.CoursesOptions{
				Input:      input,
				Sheet:      cfg.CourseSheet,
				CSVOutput:  cfg.CourseCSVOutput,
				JSONOutput: cfg.CourseJSONOutput,
			}
			if cmd.Flags().Changed("sheet") {
				opts.Sheet = sheet
			}
			if csvOutput != "" {
				opts.CSVOutput = csvOutput
			}
			if jsonOutput != "" {
				opts.JSONOutput = jsonOutput
			}

			loader := table.NewLoader(cfg.CSVEncodings, log)
			res, err := pipeline.NewCoursesPipeline(loader, cfg.CourseHeaderRow, log).Run(opts)
			if err != nil {
				return err
			}

			fmt.Printf("Academic year extracted: %s\n", res.AcademicYear)
			if res.Semester > 0 {
				fmt.Printf("Semester extracted: %d\n", res.Semester)
			} else {
				fmt.Println("Semester extracted: UNKNOWN")
			}
			fmt.Printf("Cleaned CSV saved to: %s\n", res.CSVOutput)
			fmt.Printf("JSON saved to: %s\n", res.JSONOutput)
			log.Info("courses grouped", "rows", res.Rows, "entries", res.Entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Course catalogue file")
	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "Worksheet to read; empty means the first one")
	cmd.Flags().StringVar(&csvOutput, "csv-output", "", "Cleaned table output (defaults to COURSE_CSV_OUTPUT)")
	cmd.Flags().StringVar(&jsonOutput, "json-output", "", "Grouped JSON output (defaults to COURSE_JSON_OUTPUT)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
