package pipeline

import (
	"fmt"
	"log/slog"

	"ingest/internal"
	"ingest/internal/fields"
	"ingest/internal/table"
)

// ClassesPipeline flattens a class schedule export into one row per class
// section.
type ClassesPipeline struct {
	loader *table.Loader
	parser *fields.Parser
	log    *slog.Logger
}

func NewClassesPipeline(loader *table.Loader, parser *fields.Parser, log *slog.Logger) *ClassesPipeline {
	if log == nil {
		log = slog.Default()
	}
	return &ClassesPipeline{loader: loader, parser: parser, log: log}
}

type ClassesResult struct {
	Rows   int
	Output string
}

func (p *ClassesPipeline) Run(inputPath, outputPath string) (ClassesResult, error) {
	t, err := p.loader.Load(inputPath, "")
	if err != nil {
		return ClassesResult{}, err
	}

	rows, err := t.Records(classInputColumns...)
	if err != nil {
		return ClassesResult{}, fmt.Errorf("%s: %w", inputPath, err)
	}
	if len(rows) == 0 {
		return ClassesResult{}, fmt.Errorf("%s: %w", inputPath, table.ErrEmptyTable)
	}

	records := make([]internal.ClassRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, NormalizeClassRow(p.parser, row))
	}

	if err := ExportClassRecords(records, outputPath); err != nil {
		return ClassesResult{}, err
	}
	p.log.Debug("classes exported", "rows", len(records), "output", outputPath)

	return ClassesResult{Rows: len(records), Output: outputPath}, nil
}
