package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/chartkeeper/backend/internal/importer/tabular"
	"github.com/shopspring/decimal"
)

// codeSanitizer matches every character that is not allowed in an account code.
var codeSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// currencyStripper matches currency symbols and separators that may decorate
// balance values in exports.
var currencyStripper = strings.NewReplacer(
	"$", "", "€", "", "£", "", "¥", "", ",", "", " ", "", " ", "",
)

// maxDerivedCodeLength limits account codes derived from a name.
const maxDerivedCodeLength = 20

// activeTokens are the recognized spellings for the isActive field.
// Unknown values default to active.
var activeTokens = map[string]bool{
	"true": true, "active": true, "yes": true, "1": true,
	"false": false, "inactive": false, "no": false, "0": false,
}

// normalize turns the data rows of an export into canonical accounts.
//
// The data region starts at row skipRows, plus one more when the export
// carries a header row. A failing row is reported and skipped, never fatal.
func normalize(rows []tabular.Row, mapping FieldMapping, hasHeaders bool, skipRows int) (accounts []ParsedAccount, errs []RowError, warnings []string) {
	var header tabular.Row

	start := skipRows
	if hasHeaders && start < len(rows) {
		header = rows[start]
		start++
	}

	accounts = make([]ParsedAccount, 0, len(rows))
	errs = make([]RowError, 0)
	warnings = make([]string, 0)

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}

		rowNumber := i + 1
		raw := rawData(row, header)

		account := ParsedAccount{
			Active:    true,
			SourceRow: rowNumber,
			RawData:   raw,
		}

		// Columns are visited in row order so that two columns mapped to the
		// same canonical field always resolve the same way.
		for col, value := range row {
			field, ok := mapping[columnKey(col, header)]
			if !ok {
				continue
			}

			switch field {
			case FieldCode:
				account.Code = value
			case FieldName:
				account.Name = value
			case FieldType:
				account.Type = value
			case FieldCategory:
				account.Category = value
			case FieldDescription:
				account.Description = value
			case FieldBalance:
				balance, ok := parseBalance(value)
				if !ok && value != "" {
					warnings = append(warnings, fmt.Sprintf("row %d: balance %q is not numeric, defaulting to 0", rowNumber, value))
				}
				account.Balance = balance
			case FieldIsActive:
				account.Active = parseActive(value)
			case FieldParentCode:
				account.ParentCode = value
			case FieldLevel:
				level, err := strconv.Atoi(strings.TrimSpace(value))
				if err != nil {
					level = 0
				}
				account.Level = level
			}
		}

		// Repair and validation, in order. Rows without any identity are
		// rejected; a missing code or name is derived from the other.
		switch {
		case account.Code == "" && account.Name == "":
			errs = append(errs, RowError{
				Row:     rowNumber,
				Message: "row has neither code nor name",
				RawData: raw,
			})
			continue
		case account.Code == "":
			account.Code = deriveCode(account.Name)
		case account.Name == "":
			account.Name = account.Code
		}

		account.Code = codeSanitizer.ReplaceAllString(account.Code, "")
		accounts = append(accounts, account)
	}

	return accounts, errs, warnings
}

// columnKey returns the header text for a column, or a synthetic column_N key
// when the export has no header cell for it.
func columnKey(col int, header tabular.Row) string {
	if col < len(header) && header[col] != "" {
		return header[col]
	}

	return fmt.Sprintf("column_%d", col+1)
}

// rawData builds the original column-to-value map for a row.
func rawData(row tabular.Row, header tabular.Row) map[string]string {
	raw := make(map[string]string, len(row))
	for i, value := range row {
		raw[columnKey(i, header)] = value
	}

	return raw
}

// parseBalance converts a source balance value to a decimal.
//
// Currency symbols and thousands separators are removed and a parenthesized
// value is negative, as in "(500.00)". Anything unparsable is 0 so a single
// odd cell never blocks the row.
func parseBalance(value string) (decimal.Decimal, bool) {
	value = strings.TrimSpace(value)

	negative := false
	if strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")") {
		negative = true
		value = value[1 : len(value)-1]
	}

	value = strings.TrimSpace(currencyStripper.Replace(value))

	balance, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}

	if negative {
		balance = balance.Neg()
	}

	return balance, true
}

// parseActive interprets the common spellings of an active flag.
func parseActive(value string) bool {
	if active, ok := activeTokens[strings.ToLower(strings.TrimSpace(value))]; ok {
		return active
	}

	return true
}

// deriveCode makes an account code from a name.
func deriveCode(name string) string {
	if len(name) > maxDerivedCodeLength {
		return name[:maxDerivedCodeLength]
	}

	return name
}

func blank(row tabular.Row) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}
