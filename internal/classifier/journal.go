package classifier

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Purchases are credited against accounts payable until they are settled.
const (
	PayableAccountCode = "2100"
	PayableAccountName = "Accounts Payable"
)

// JournalEntry is one line of a journal posting. Exactly one of Debit and
// Credit is non-zero.
type JournalEntry struct {
	AccountCode string          `json:"accountCode" example:"5000"`
	AccountName string          `json:"accountName" example:"Food Purchases"`
	Debit       decimal.Decimal `json:"debit" example:"152.30"`
	Credit      decimal.Decimal `json:"credit" example:"0"`
	Description string          `json:"description" example:"Purchase from Fresh Valley Farms"`
}

// GenerateJournalEntries builds the journal posting for a classified line
// item: a debit on the selected account and an equal credit on accounts
// payable. The pair is balanced by construction.
func GenerateJournalEntries(primary Suggestion, amount decimal.Decimal, vendor string) []JournalEntry {
	description := "Purchase"
	if vendor != "" {
		description = fmt.Sprintf("Purchase from %s", vendor)
	}

	return []JournalEntry{
		{
			AccountCode: primary.Code,
			AccountName: primary.Name,
			Debit:       amount,
			Description: description,
		},
		{
			AccountCode: PayableAccountCode,
			AccountName: PayableAccountName,
			Credit:      amount,
			Description: description,
		},
	}
}
