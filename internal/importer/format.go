package importer

import (
	"strings"

	"github.com/chartkeeper/backend/internal/importer/tabular"
)

// Format identifies the external tool an export was produced by.
type Format string

const (
	// FormatAuto requests header-based detection.
	FormatAuto Format = "auto"

	FormatQuickBooks Format = "quickbooks"
	FormatXero       Format = "xero"
	FormatSage       Format = "sage"
	FormatTally      Format = "tally"

	// FormatGeneric is the fallback when no signature matches.
	FormatGeneric Format = "generic"
)

// Valid reports whether f can be requested by a caller.
func (f Format) Valid() bool {
	switch f {
	case FormatAuto, FormatQuickBooks, FormatXero, FormatSage, FormatTally, FormatGeneric:
		return true
	}
	return false
}

// formatSpec describes one known export format: the tokens that identify it
// and its header-to-canonical-field table. Table keys are normalized header
// names (lowercase, spaces replaced with underscores).
type formatSpec struct {
	id        Format
	signature []string
	headers   map[string]Field
}

// registry lists the known formats in detection priority order.
var registry = []formatSpec{
	{
		id:        FormatQuickBooks,
		signature: []string{"account code", "detail type"},
		headers: map[string]Field{
			"account_code": FieldCode,
			"account":      FieldName,
			"account_name": FieldName,
			"type":         FieldType,
			"detail_type":  FieldCategory,
			"description":  FieldDescription,
			"balance":      FieldBalance,
			"active":       FieldIsActive,
		},
	},
	{
		id:        FormatXero,
		signature: []string{"code", "tax type"},
		headers: map[string]Field{
			"code":        FieldCode,
			"name":        FieldName,
			"type":        FieldType,
			"tax_type":    FieldCategory,
			"description": FieldDescription,
			"balance":     FieldBalance,
			"status":      FieldIsActive,
		},
	},
	{
		id:        FormatSage,
		signature: []string{"a/c", "department"},
		headers: map[string]Field{
			"a/c":          FieldCode,
			"account_name": FieldName,
			"nominal_name": FieldName,
			"type":         FieldType,
			"department":   FieldCategory,
			"balance":      FieldBalance,
		},
	},
	{
		id:        FormatTally,
		signature: []string{"guid", "primarygroup", "closing_balance"},
		headers: map[string]Field{
			"name":            FieldName,
			"alias":           FieldCode,
			"primarygroup":    FieldCategory,
			"parent":          FieldParentCode,
			"closing_balance": FieldBalance,
			"depth":           FieldLevel,
		},
	},
	{
		id: FormatGeneric,
		headers: map[string]Field{
			"code":         FieldCode,
			"account_code": FieldCode,
			"number":       FieldCode,
			"name":         FieldName,
			"account_name": FieldName,
			"type":         FieldType,
			"category":     FieldCategory,
			"description":  FieldDescription,
			"balance":      FieldBalance,
			"active":       FieldIsActive,
			"is_active":    FieldIsActive,
			"parent":       FieldParentCode,
			"parent_code":  FieldParentCode,
			"level":        FieldLevel,
		},
	},
}

// heuristics are the ordered substring fallbacks applied to headers that the
// format table does not know. The first matching keyword wins.
var heuristics = []struct {
	keywords []string
	field    Field
}{
	{[]string{"code", "number"}, FieldCode},
	{[]string{"name", "title"}, FieldName},
	{[]string{"type", "category"}, FieldType},
	{[]string{"description"}, FieldDescription},
	{[]string{"balance"}, FieldBalance},
}

// Detect inspects a header row and returns the format of the tool that
// produced it. The first format whose signature tokens all appear in the
// joined, lowercased header wins; an unrecognized header is FormatGeneric.
func Detect(header tabular.Row) Format {
	joined := strings.ToLower(strings.Join(header, "|"))

	for _, spec := range registry {
		if len(spec.signature) == 0 {
			continue
		}

		matches := true
		for _, token := range spec.signature {
			if !strings.Contains(joined, token) {
				matches = false
				break
			}
		}

		if matches {
			return spec.id
		}
	}

	return FormatGeneric
}

// MapFields resolves each header cell of a format's export to a canonical
// field. Cells that resolve nowhere are left out of the mapping and their
// columns are ignored during normalization.
func MapFields(format Format, header tabular.Row) FieldMapping {
	spec := formatTable(format)

	mapping := make(FieldMapping)
	for _, cell := range header {
		if cell == "" {
			continue
		}

		if field, ok := resolveHeader(spec, cell); ok {
			mapping[cell] = field
		}
	}

	return mapping
}

// resolveHeader applies the three resolution steps for a single header cell:
// exact table match, normalized table match, then keyword heuristics.
func resolveHeader(table map[string]Field, cell string) (Field, bool) {
	if field, ok := table[cell]; ok {
		return field, true
	}

	normalized := normalizeHeader(cell)
	if field, ok := table[normalized]; ok {
		return field, true
	}

	for _, h := range heuristics {
		for _, keyword := range h.keywords {
			if strings.Contains(normalized, keyword) {
				return h.field, true
			}
		}
	}

	return "", false
}

// formatTable returns the header table for a format, falling back to the
// generic table for unknown identifiers.
func formatTable(format Format) map[string]Field {
	for _, spec := range registry {
		if spec.id == format {
			return spec.headers
		}
	}

	return registry[len(registry)-1].headers
}

func normalizeHeader(cell string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(cell)), " ", "_")
}
