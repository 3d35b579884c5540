// Package classifier assigns chart-of-accounts entries to free-text
// financial line items through an ordered rule cascade.
package classifier

import "github.com/chartkeeper/backend/internal/models"

// VendorRule maps a vendor to a target account type.
//
// Match is a glob pattern compared against the lowercased vendor name, so a
// plain string behaves as an exact match.
type VendorRule struct {
	Match      string
	Type       models.AccountType
	Confidence float64
}

// KeywordRule maps a description keyword to a specific account code.
type KeywordRule struct {
	Keyword    string
	Code       string
	Confidence float64
}

// Ruleset is the full rule configuration for an Engine. It is treated as
// immutable; tests substitute their own rule sets instead of touching
// package state.
type Ruleset struct {
	// VendorRules are checked first, in order.
	VendorRules []VendorRule

	// KeywordRules are checked against the description, in order, when no
	// vendor rule matched.
	KeywordRules []KeywordRule

	// CategoryKeywords trigger the category fallback tier when one of them
	// appears in the request's category hint.
	CategoryKeywords   []string
	CategoryType       models.AccountType
	CategoryConfidence float64

	// The default tier always terminates the cascade. When the chart has no
	// posting-allowed account of DefaultType, a placeholder account with
	// FallbackCode/FallbackName is synthesized.
	DefaultType       models.AccountType
	DefaultConfidence float64
	FallbackCode      string
	FallbackName      string
}

// DefaultRuleset returns the curated rules for food-service businesses.
func DefaultRuleset() Ruleset {
	return Ruleset{
		VendorRules: []VendorRule{
			{Match: "fresh valley farms", Type: models.AccountTypeCostOfSales, Confidence: 0.95},
			{Match: "sysco*", Type: models.AccountTypeCostOfSales, Confidence: 0.92},
			{Match: "us foods*", Type: models.AccountTypeCostOfSales, Confidence: 0.92},
			{Match: "restaurant depot*", Type: models.AccountTypeCostOfSales, Confidence: 0.90},
			{Match: "city power & light", Type: models.AccountTypeIndirectExpense, Confidence: 0.90},
			{Match: "metro water*", Type: models.AccountTypeIndirectExpense, Confidence: 0.90},
			{Match: "anchor properties*", Type: models.AccountTypeIndirectExpense, Confidence: 0.90},
			{Match: "ecolab*", Type: models.AccountTypeDirectExpense, Confidence: 0.88},
			{Match: "cintas*", Type: models.AccountTypeDirectExpense, Confidence: 0.85},
		},
		KeywordRules: []KeywordRule{
			{Keyword: "vegetables", Code: "5000", Confidence: 0.85},
			{Keyword: "produce", Code: "5000", Confidence: 0.85},
			{Keyword: "meat", Code: "5010", Confidence: 0.85},
			{Keyword: "seafood", Code: "5010", Confidence: 0.80},
			{Keyword: "dairy", Code: "5020", Confidence: 0.85},
			{Keyword: "beverage", Code: "5030", Confidence: 0.80},
			{Keyword: "packaging", Code: "5040", Confidence: 0.75},
			{Keyword: "rent", Code: "6100", Confidence: 0.90},
			{Keyword: "electricity", Code: "6110", Confidence: 0.85},
			{Keyword: "insurance", Code: "6120", Confidence: 0.85},
			{Keyword: "cleaning", Code: "6200", Confidence: 0.80},
			{Keyword: "repair", Code: "6210", Confidence: 0.75},
		},
		CategoryKeywords:   []string{"food", "ingredient"},
		CategoryType:       models.AccountTypeCostOfSales,
		CategoryConfidence: 0.75,
		DefaultType:        models.AccountTypeDirectExpense,
		DefaultConfidence:  0.60,
		FallbackCode:       "6000",
		FallbackName:       "General Expenses",
	}
}
