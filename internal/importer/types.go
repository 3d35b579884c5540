// Package importer turns tabular chart-of-accounts exports from external
// accounting tools into canonical account records.
package importer

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoData is returned when the decoded content contains no usable rows.
	ErrNoData = errors.New("the import content does not contain any rows")

	// ErrInvalidEncoding is returned when base64 content cannot be decoded.
	ErrInvalidEncoding = errors.New("the import content is not valid base64")
)

// Field is a canonical account attribute that source columns are mapped onto.
type Field string

const (
	FieldCode        Field = "code"
	FieldName        Field = "name"
	FieldType        Field = "type"
	FieldCategory    Field = "category"
	FieldDescription Field = "description"
	FieldBalance     Field = "balance"
	FieldIsActive    Field = "isActive"
	FieldParentCode  Field = "parentCode"
	FieldLevel       Field = "level"
)

// FieldMapping maps a source column header to the canonical field its values
// are read into. Headers that resolve to no canonical field are absent and
// their columns are ignored by the normalizer.
type FieldMapping map[string]Field

// ParsedAccount is one canonical account record produced from a source row.
type ParsedAccount struct {
	Code        string          `json:"code" example:"5000"`
	Name        string          `json:"name" example:"Food Purchases"`
	Type        string          `json:"type" example:"COST_OF_SALES"`
	Category    string          `json:"category" example:"Cost of Goods Sold"`
	Description string          `json:"description" example:"Raw ingredients"`
	Balance     decimal.Decimal `json:"balance" example:"1234.56"`
	Active      bool            `json:"active" example:"true"`
	ParentCode  string          `json:"parentCode" example:"5"`
	Level       int             `json:"level" example:"2"`
	SourceRow   int             `json:"sourceRow" example:"2"` // 1-based row number in the source file

	// RawData preserves the original column values for diagnostics.
	RawData map[string]string `json:"rawData"`
}

// RowError reports a row that could not be turned into an account.
type RowError struct {
	Row     int               `json:"row" example:"7"`
	Message string            `json:"message" example:"row has neither code nor name"`
	RawData map[string]string `json:"rawData"`
}

// Result is the outcome of one import run. Row-level failures are collected
// in Errors; the run as a whole still succeeds.
type Result struct {
	TotalRows             int             `json:"totalRows" example:"120"`
	Accounts              []ParsedAccount `json:"accounts"`
	Errors                []RowError      `json:"errors"`
	Warnings              []string        `json:"warnings"`
	DetectedFormat        Format          `json:"detectedFormat" example:"quickbooks"`
	SuggestedFieldMapping FieldMapping    `json:"suggestedFieldMapping"`
}
