// Package tabular splits raw text exports into rows of fields.
//
// The tokenizer is deliberately forgiving: vendor exports regularly contain
// stray quotes, inconsistent line endings and decorative blank lines, and a
// hard failure on any of those would make imports unusable. Malformed input
// yields a best-effort field split instead of an error.
package tabular

import "strings"

// Row is one parsed line of an export, one string per field.
type Row []string

// Parse splits text into rows of trimmed fields.
//
// A leading byte-order marker is stripped. Lines that are empty after
// trimming are discarded. Within a line, fields are separated by commas
// outside of double quotes; a doubled quote inside a quoted field emits a
// literal quote.
//
// Quoted fields cannot span physical lines because the text is split into
// lines before quote state is tracked.
func Parse(text string) []Row {
	text = strings.TrimPrefix(text, "\uFEFF")

	var rows []Row
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		rows = append(rows, splitLine(line))
	}

	return rows
}

// splitLine scans a single line left to right, tracking quote state.
func splitLine(line string) Row {
	var fields Row
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		char := line[i]

		switch {
		case char == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// Doubled quote inside a quoted field is an escaped quote
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}

		case char == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()

		default:
			current.WriteByte(char)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
