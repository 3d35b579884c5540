package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType partitions the chart of accounts.
type AccountType string

const (
	AccountTypeAsset                AccountType = "ASSET"
	AccountTypeLiability            AccountType = "LIABILITY"
	AccountTypeEquity               AccountType = "EQUITY"
	AccountTypeRevenue              AccountType = "REVENUE"
	AccountTypeCostOfSales          AccountType = "COST_OF_SALES"
	AccountTypeDirectExpense        AccountType = "DIRECT_EXPENSE"
	AccountTypeIndirectExpense      AccountType = "INDIRECT_EXPENSE"
	AccountTypeTaxExpense           AccountType = "TAX_EXPENSE"
	AccountTypeExtraordinaryExpense AccountType = "EXTRAORDINARY_EXPENSE"
)

// AccountTypes lists all valid account types.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeCostOfSales,
	AccountTypeDirectExpense,
	AccountTypeIndirectExpense,
	AccountTypeTaxExpense,
	AccountTypeExtraordinaryExpense,
}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	for _, known := range AccountTypes {
		if t == known {
			return true
		}
	}

	return false
}

// Account is one entry of an organization's chart of accounts.
type Account struct {
	DefaultModel
	Organization   Organization `json:"-"`
	OrganizationID uuid.UUID    `gorm:"uniqueIndex:account_org_code"`
	Code           string       `gorm:"uniqueIndex:account_org_code"`
	Name           string
	Type           AccountType
	Category       string
	Description    string
	Balance        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Active         bool
	PostingAllowed bool   // Summary accounts exist for reporting only and cannot receive postings
	ParentCode     string // Code of the parent account in the hierarchy
	Level          int    // Depth in the account hierarchy, 0 for top-level accounts
	SourceFormat   string // Format of the export this account was imported from, empty for manually created accounts
}

// BeforeSave validates the account type and trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	if a.Type != "" && !a.Type.Valid() {
		return ErrAccountTypeInvalid
	}

	a.Code = strings.TrimSpace(a.Code)
	a.Name = strings.TrimSpace(a.Name)
	a.Category = strings.TrimSpace(a.Category)
	a.Description = strings.TrimSpace(a.Description)
	a.ParentCode = strings.TrimSpace(a.ParentCode)

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return a.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the account before
// committing an update to the database.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("OrganizationID") {
		toSave := tx.Statement.Dest.(Account)
		return a.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Account) checkIntegrity(tx *gorm.DB, toSave Account) error {
	return tx.First(&Organization{}, toSave.OrganizationID).Error
}

// Export returns all accounts on this instance.
func (Account) Export() (json.RawMessage, error) {
	var accounts []Account
	err := DB.Unscoped().Where(&Account{}).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&accounts)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
