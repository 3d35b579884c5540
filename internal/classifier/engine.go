package classifier

import (
	"fmt"
	"strings"

	"github.com/chartkeeper/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// maxAlternatives caps the number of alternative accounts in a result.
const maxAlternatives = 3

// alternativePenalty is subtracted from the primary confidence for each
// alternative account.
const alternativePenalty = 0.1

// Request is one line item to classify.
type Request struct {
	Vendor         string          `json:"vendor" example:"Fresh Valley Farms"`
	Description    string          `json:"description" example:"vegetables and produce"`
	Amount         decimal.Decimal `json:"amount" example:"152.30"`
	Category       string          `json:"category" example:"food"`
	DocumentType   string          `json:"documentType" example:"invoice"`
	BaseConfidence float64         `json:"baseConfidence" example:"0.5"` // Reported by upstream extraction, recorded but not used by the cascade
}

// Suggestion is the account the cascade selected.
type Suggestion struct {
	Code       string             `json:"code" example:"5000"`
	Name       string             `json:"name" example:"Food Purchases"`
	Type       models.AccountType `json:"type" example:"COST_OF_SALES"`
	Category   string             `json:"category" example:"Cost of Sales"`
	Confidence float64            `json:"confidence" example:"0.95"`
}

// Alternative is another account the caller may pick instead.
type Alternative struct {
	Code       string             `json:"code" example:"6000"`
	Name       string             `json:"name" example:"General Expenses"`
	Type       models.AccountType `json:"type" example:"DIRECT_EXPENSE"`
	Confidence float64            `json:"confidence" example:"0.85"`
	Reason     string             `json:"reason" example:"alternative DIRECT_EXPENSE account"`
}

// Result is the outcome of one classification.
type Result struct {
	Primary       Suggestion    `json:"primaryAccount"`
	Alternatives  []Alternative `json:"alternativeAccounts"`
	Reasoning     []string      `json:"reasoning"`
	BusinessRules []string      `json:"businessRules"`
}

// candidate is a tier's proposed account.
type candidate struct {
	account    models.Account
	confidence float64
	reasoning  string
	rule       string
}

// tier is one stage of the cascade. resolve returns false when the tier
// produces nothing and the cascade moves on; note explains the fall-through.
type tier struct {
	resolve func(req Request, chart []models.Account) (candidate, bool)
	note    func(req Request) string
}

// Engine runs the classification cascade. It holds no mutable state; the
// same request and chart always produce the same result.
type Engine struct {
	rules Ruleset
	tiers []tier
}

// New returns an Engine for the given rule set.
func New(rules Ruleset) *Engine {
	e := &Engine{rules: rules}

	// The tiers are a fixed chain of responsibility: vendor, keyword,
	// category, default. The first tier to produce an account terminates
	// the cascade, and the default tier always produces one.
	e.tiers = []tier{
		{
			resolve: e.vendorTier,
			note: func(req Request) string {
				return fmt.Sprintf("no vendor rule matched %q", req.Vendor)
			},
		},
		{
			resolve: e.keywordTier,
			note: func(Request) string {
				return "no keyword rule matched the description"
			},
		},
		{
			resolve: e.categoryTier,
			note: func(req Request) string {
				return fmt.Sprintf("category hint %q did not resolve to an account", req.Category)
			},
		},
		{
			resolve: e.defaultTier,
			note:    func(Request) string { return "" },
		},
	}

	return e
}

// Classify selects an account for the request from the chart snapshot.
func (e *Engine) Classify(req Request, chart []models.Account) Result {
	var reasoning, rules []string

	for _, t := range e.tiers {
		match, ok := t.resolve(req, chart)
		if !ok {
			reasoning = append(reasoning, t.note(req))
			continue
		}

		reasoning = append(reasoning, match.reasoning)
		rules = append(rules, match.rule)

		return Result{
			Primary: Suggestion{
				Code:       match.account.Code,
				Name:       match.account.Name,
				Type:       match.account.Type,
				Category:   categoryLabel(match.account),
				Confidence: clamp(match.confidence),
			},
			Alternatives:  alternatives(chart, match.account.Code, match.confidence),
			Reasoning:     reasoning,
			BusinessRules: rules,
		}
	}

	// Unreachable: the default tier always resolves.
	return Result{}
}

// vendorTier looks the vendor up in the curated vendor rule table. The first
// matching rule wins; it only produces an account when the chart has a
// posting-allowed account of the rule's target type.
func (e *Engine) vendorTier(req Request, chart []models.Account) (candidate, bool) {
	vendor := strings.ToLower(strings.TrimSpace(req.Vendor))
	if vendor == "" {
		return candidate{}, false
	}

	for _, rule := range e.rules.VendorRules {
		if !glob.Glob(rule.Match, vendor) {
			continue
		}

		account, ok := firstPostingAllowed(chart, rule.Type)
		if !ok {
			return candidate{}, false
		}

		return candidate{
			account:    account,
			confidence: rule.Confidence,
			reasoning:  fmt.Sprintf("vendor %q matched rule %q for account type %s", req.Vendor, rule.Match, rule.Type),
			rule:       fmt.Sprintf("VENDOR_RULE: %s → %s (confidence %.2f)", rule.Match, rule.Type, rule.Confidence),
		}, true
	}

	return candidate{}, false
}

// keywordTier scans the ordered keyword table against the description. A
// keyword wins when it appears in the description and its account code
// exists in the chart.
func (e *Engine) keywordTier(req Request, chart []models.Account) (candidate, bool) {
	description := strings.ToLower(req.Description)
	if description == "" {
		return candidate{}, false
	}

	for _, rule := range e.rules.KeywordRules {
		if !strings.Contains(description, rule.Keyword) {
			continue
		}

		account, ok := byCode(chart, rule.Code)
		if !ok {
			continue
		}

		return candidate{
			account:    account,
			confidence: rule.Confidence,
			reasoning:  fmt.Sprintf("description contains %q, mapped to account %s", rule.Keyword, rule.Code),
			rule:       fmt.Sprintf("KEYWORD_RULE: %s → %s (confidence %.2f)", rule.Keyword, rule.Code, rule.Confidence),
		}, true
	}

	return candidate{}, false
}

// categoryTier resolves category hints like "food" to the configured
// fallback type.
func (e *Engine) categoryTier(req Request, chart []models.Account) (candidate, bool) {
	category := strings.ToLower(req.Category)
	if category == "" {
		return candidate{}, false
	}

	for _, keyword := range e.rules.CategoryKeywords {
		if !strings.Contains(category, keyword) {
			continue
		}

		account, ok := firstPostingAllowed(chart, e.rules.CategoryType)
		if !ok {
			return candidate{}, false
		}

		return candidate{
			account:    account,
			confidence: e.rules.CategoryConfidence,
			reasoning:  fmt.Sprintf("category hint %q indicates %s", req.Category, e.rules.CategoryType),
			rule:       fmt.Sprintf("CATEGORY_FALLBACK: %s → %s (confidence %.2f)", keyword, e.rules.CategoryType, e.rules.CategoryConfidence),
		}, true
	}

	return candidate{}, false
}

// defaultTier terminates the cascade. When the chart has no posting-allowed
// account of the default type, a placeholder account is synthesized so that
// classification never fails.
func (e *Engine) defaultTier(_ Request, chart []models.Account) (candidate, bool) {
	account, ok := firstPostingAllowed(chart, e.rules.DefaultType)
	if !ok {
		account = models.Account{
			Code:           e.rules.FallbackCode,
			Name:           e.rules.FallbackName,
			Type:           e.rules.DefaultType,
			PostingAllowed: true,
		}
	}

	return candidate{
		account:    account,
		confidence: e.rules.DefaultConfidence,
		reasoning:  fmt.Sprintf("no rule matched, defaulting to %s", e.rules.DefaultType),
		rule:       fmt.Sprintf("DEFAULT_FALLBACK: %s (confidence %.2f)", e.rules.DefaultType, e.rules.DefaultConfidence),
	}, true
}

// alternatives selects up to maxAlternatives other posting-allowed accounts
// from the chart, in chart order.
func alternatives(chart []models.Account, primaryCode string, primaryConfidence float64) []Alternative {
	// An empty list serializes as [], not null
	result := make([]Alternative, 0, maxAlternatives)

	for _, account := range chart {
		if len(result) == maxAlternatives {
			break
		}

		if !account.PostingAllowed || account.Code == primaryCode {
			continue
		}

		result = append(result, Alternative{
			Code:       account.Code,
			Name:       account.Name,
			Type:       account.Type,
			Confidence: clamp(primaryConfidence - alternativePenalty),
			Reason:     fmt.Sprintf("alternative %s account", account.Type),
		})
	}

	return result
}

// firstPostingAllowed returns the first posting-allowed account of the given
// type, in chart order.
func firstPostingAllowed(chart []models.Account, accountType models.AccountType) (models.Account, bool) {
	for _, account := range chart {
		if account.PostingAllowed && account.Type == accountType {
			return account, true
		}
	}

	return models.Account{}, false
}

func byCode(chart []models.Account, code string) (models.Account, bool) {
	for _, account := range chart {
		if account.Code == code {
			return account, true
		}
	}

	return models.Account{}, false
}

// categoryLabel is the human-readable category for a suggestion. The
// account's own category wins; accounts without one fall back to a label
// derived from the type.
func categoryLabel(account models.Account) string {
	if account.Category != "" {
		return account.Category
	}

	labels := map[models.AccountType]string{
		models.AccountTypeAsset:                "Assets",
		models.AccountTypeLiability:            "Liabilities",
		models.AccountTypeEquity:               "Equity",
		models.AccountTypeRevenue:              "Revenue",
		models.AccountTypeCostOfSales:          "Cost of Sales",
		models.AccountTypeDirectExpense:        "Direct Expenses",
		models.AccountTypeIndirectExpense:      "Indirect Expenses",
		models.AccountTypeTaxExpense:           "Tax Expenses",
		models.AccountTypeExtraordinaryExpense: "Extraordinary Expenses",
	}

	if label, ok := labels[account.Type]; ok {
		return label
	}

	return string(account.Type)
}

// clamp keeps a confidence inside [0, 1].
func clamp(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}

	return confidence
}
