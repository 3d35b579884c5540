package importer

import (
	"github.com/chartkeeper/backend/internal/importer/tabular"
)

// Options control one import run.
type Options struct {
	// Format of the export. FormatAuto detects it from the header row.
	Format Format

	// FieldMapping, when set, bypasses format detection and field mapping.
	FieldMapping FieldMapping

	// HasHeaders marks the first data row as a header row.
	HasHeaders bool

	// SkipRows is the number of leading rows to ignore, e.g. report titles
	// that some tools put above the header.
	SkipRows int
}

// Run executes the full parsing pipeline: tokenize, detect the format, map
// the header fields and normalize the rows into canonical accounts.
//
// Row-level problems are reported inside the Result. Only content with no
// usable rows at all fails the call.
func Run(content string, opts Options) (Result, error) {
	rows := tabular.Parse(content)
	if len(rows) == 0 {
		return Result{}, ErrNoData
	}

	var header tabular.Row
	if opts.HasHeaders && opts.SkipRows < len(rows) {
		header = rows[opts.SkipRows]
	}

	// Detection only runs when neither an explicit format nor an explicit
	// field mapping was supplied.
	format := opts.Format
	if format == "" || format == FormatAuto {
		if opts.FieldMapping == nil {
			format = Detect(header)
		} else {
			format = FormatGeneric
		}
	}

	mapping := opts.FieldMapping
	if mapping == nil {
		mapping = MapFields(format, header)
	}

	accounts, errs, warnings := normalize(rows, mapping, opts.HasHeaders, opts.SkipRows)

	return Result{
		TotalRows:             len(rows),
		Accounts:              accounts,
		Errors:                errs,
		Warnings:              warnings,
		DetectedFormat:        format,
		SuggestedFieldMapping: mapping,
	}, nil
}
