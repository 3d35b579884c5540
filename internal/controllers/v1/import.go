package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/chartkeeper/backend/internal/httputil"
	"github.com/chartkeeper/backend/internal/importer"
	"github.com/chartkeeper/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ImportEditable is the request body for an account import.
type ImportEditable struct {
	OrganizationID uuid.UUID             `json:"organizationId" example:"d1b4b1a1-dd24-4e17-9af5-7a1a3f64f223"` // ID of the organization to import into
	Content        string                `json:"content"`                                                       // Export content, optionally prefixed with "base64,"
	Format         importer.Format       `json:"format" example:"quickbooks" default:"auto"`                    // Source format, "auto" to detect
	FieldMapping   importer.FieldMapping `json:"fieldMapping"`                                                  // Explicit column to field mapping, skips detection
	HasHeaders     *bool                 `json:"hasHeaders" example:"true" default:"true"`                      // Does the first data row contain column headers?
	SkipRows       int                   `json:"skipRows" example:"0" default:"0"`                              // Number of leading rows to skip
	Preview        bool                  `json:"preview" example:"false" default:"false"`                       // When true, nothing is persisted
}

// ImportAccountsResponse wraps the import result for API v1.
type ImportAccountsResponse struct {
	Data  *importer.Result `json:"data"`                                                          // Result of the import run
	Error *string          `json:"error" example:"the import content is not valid base64"`        // The error, if any occurred
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsImport)

		r.OPTIONS("/accounts", OptionsImportAccounts)
		r.POST("/accounts", ImportAccounts)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/accounts [options]
func OptionsImportAccounts(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import chart of accounts
// @Description	Parses an exported chart of accounts and creates the parsed accounts for the organization. Set preview to inspect the result without persisting anything. Row-level failures are reported in the result, they do not fail the import.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201		{object}	ImportAccountsResponse
// @Success		200		{object}	ImportAccountsResponse
// @Failure		400		{object}	ImportAccountsResponse
// @Failure		404		{object}	ImportAccountsResponse
// @Failure		500		{object}	ImportAccountsResponse
// @Param			import	body		ImportEditable	true	"Import"
// @Router			/v1/import/accounts [post]
func ImportAccounts(c *gin.Context) {
	var editable ImportEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportAccountsResponse{Error: &s})
		return
	}

	format := editable.Format
	if format == "" {
		format = importer.FormatAuto
	}

	if !format.Valid() {
		s := errFormatInvalid.Error()
		c.JSON(http.StatusBadRequest, ImportAccountsResponse{Error: &s})
		return
	}

	if editable.Content == "" {
		s := errNoContent.Error()
		c.JSON(http.StatusBadRequest, ImportAccountsResponse{Error: &s})
		return
	}

	hasHeaders := true
	if editable.HasHeaders != nil {
		hasHeaders = *editable.HasHeaders
	}

	// Verify that the organization exists before parsing anything
	var organization models.Organization
	err = models.DB.First(&organization, editable.OrganizationID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportAccountsResponse{Error: &s})
		return
	}

	content, err := importer.Decode(editable.Content)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportAccountsResponse{Error: &s})
		return
	}

	result, err := importer.Run(content, importer.Options{
		Format:       format,
		FieldMapping: editable.FieldMapping,
		HasHeaders:   hasHeaders,
		SkipRows:     editable.SkipRows,
	})
	if err != nil {
		s := err.Error()
		if errors.Is(err, importer.ErrNoData) {
			c.JSON(http.StatusBadRequest, ImportAccountsResponse{Error: &s})
			return
		}

		c.JSON(status(err), ImportAccountsResponse{Error: &s})
		return
	}

	if editable.Preview {
		c.JSON(http.StatusOK, ImportAccountsResponse{Data: &result})
		return
	}

	for _, parsed := range result.Accounts {
		account := models.Account{
			OrganizationID: organization.ID,
			Code:           parsed.Code,
			Name:           parsed.Name,
			Type:           resolveAccountType(parsed.Type),
			Category:       parsed.Category,
			Description:    parsed.Description,
			Balance:        parsed.Balance,
			Active:         parsed.Active,
			PostingAllowed: true,
			ParentCode:     parsed.ParentCode,
			Level:          parsed.Level,
			SourceFormat:   string(result.DetectedFormat),
		}

		err = models.DB.Create(&account).Error
		if err != nil {
			// A duplicate or otherwise unsaveable account becomes a row
			// error, the remaining rows are still imported.
			result.Errors = append(result.Errors, importer.RowError{
				Row:     parsed.SourceRow,
				Message: err.Error(),
				RawData: parsed.RawData,
			})
		}
	}

	c.JSON(http.StatusCreated, ImportAccountsResponse{Data: &result})
}

// typeAliases maps type strings as they appear in vendor exports to
// account types. Keys are normalized to lower case.
var typeAliases = map[string]models.AccountType{
	"asset":               models.AccountTypeAsset,
	"assets":              models.AccountTypeAsset,
	"bank":                models.AccountTypeAsset,
	"fixed asset":         models.AccountTypeAsset,
	"current asset":       models.AccountTypeAsset,
	"other asset":         models.AccountTypeAsset,
	"accounts receivable": models.AccountTypeAsset,
	"liability":           models.AccountTypeLiability,
	"liabilities":         models.AccountTypeLiability,
	"accounts payable":    models.AccountTypeLiability,
	"credit card":         models.AccountTypeLiability,
	"current liability":   models.AccountTypeLiability,
	"equity":              models.AccountTypeEquity,
	"capital":             models.AccountTypeEquity,
	"revenue":             models.AccountTypeRevenue,
	"income":              models.AccountTypeRevenue,
	"sales":               models.AccountTypeRevenue,
	"other income":        models.AccountTypeRevenue,
	"cost of goods sold":  models.AccountTypeCostOfSales,
	"cost of sales":       models.AccountTypeCostOfSales,
	"cogs":                models.AccountTypeCostOfSales,
	"direct costs":        models.AccountTypeCostOfSales,
	"direct expense":      models.AccountTypeDirectExpense,
	"expense":             models.AccountTypeIndirectExpense,
	"expenses":            models.AccountTypeIndirectExpense,
	"overhead":            models.AccountTypeIndirectExpense,
	"other expense":       models.AccountTypeIndirectExpense,
	"tax":                 models.AccountTypeTaxExpense,
	"taxes":               models.AccountTypeTaxExpense,
	"extraordinary":       models.AccountTypeExtraordinaryExpense,
}

// resolveAccountType maps the free-form type string of a parsed account to
// an account type. Unknown strings fall back to INDIRECT_EXPENSE so that
// imports never fail on a type the source tool invented.
func resolveAccountType(s string) models.AccountType {
	canonical := models.AccountType(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")))
	if canonical.Valid() {
		return canonical
	}

	if t, ok := typeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t
	}

	return models.AccountTypeIndirectExpense
}
