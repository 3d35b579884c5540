package v1

import (
	"fmt"

	"github.com/chartkeeper/backend/internal/models"
	ck_uuid "github.com/chartkeeper/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountEditable contains the fields callers can set.
type AccountEditable struct {
	OrganizationID uuid.UUID          `json:"organizationId" example:"d1b4b1a1-dd24-4e17-9af5-7a1a3f64f223"` // ID of the organization owning the account
	Code           string             `json:"code" example:"5000"`                                           // Account code, unique for the organization
	Name           string             `json:"name" example:"Food Purchases"`                                 // Name of the account
	Type           models.AccountType `json:"type" example:"COST_OF_SALES"`                                  // Type of the account
	Category       string             `json:"category" example:"Cost of Goods Sold" default:""`              // Reporting category
	Description    string             `json:"description" example:"Raw ingredients" default:""`              // Free-form description
	Balance        decimal.Decimal    `json:"balance" example:"1234.56" default:"0"`                         // Current balance
	Active         bool               `json:"active" example:"true" default:"true"`                          // Is the account in use?
	PostingAllowed bool               `json:"postingAllowed" example:"true" default:"true"`                  // Can journal entries be posted to this account?
	ParentCode     string             `json:"parentCode" example:"5" default:""`                             // Code of the parent account
	Level          int                `json:"level" example:"2" default:"0"`                                 // Depth in the account hierarchy
}

// model returns the database resource for the API representation of the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		OrganizationID: editable.OrganizationID,
		Code:           editable.Code,
		Name:           editable.Name,
		Type:           editable.Type,
		Category:       editable.Category,
		Description:    editable.Description,
		Balance:        editable.Balance,
		Active:         editable.Active,
		PostingAllowed: editable.PostingAllowed,
		ParentCode:     editable.ParentCode,
		Level:          editable.Level,
	}
}

type AccountLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The account itself
}

// Account is the representation of an Account in API v1.
type Account struct {
	models.DefaultModel
	AccountEditable
	SourceFormat string       `json:"sourceFormat" example:"quickbooks"` // Format of the export this account was imported from
	Links        AccountLinks `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			OrganizationID: model.OrganizationID,
			Code:           model.Code,
			Name:           model.Name,
			Type:           model.Type,
			Category:       model.Category,
			Description:    model.Description,
			Balance:        model.Balance,
			Active:         model.Active,
			PostingAllowed: model.PostingAllowed,
			ParentCode:     model.ParentCode,
			Level:          model.Level,
		},
		SourceFormat: model.SourceFormat,
		Links: AccountLinks{
			Self: fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
		},
	}
}

// AccountQueryFilter contains the query parameters to filter accounts.
type AccountQueryFilter struct {
	OrganizationID ck_uuid.UUID `form:"organizationId"` // Filter by organization
	Type           string       `form:"type"`           // Filter by account type
	Active         *bool        `form:"active"`         // Filter by active state
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                          // List of accounts
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
