package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/chartkeeper/backend/internal/controllers/v1"
	"github.com/chartkeeper/backend/internal/models"
	"github.com/chartkeeper/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestAccount(t *testing.T, a v1.AccountEditable, expectedStatus ...int) v1.AccountResponse {
	if a.OrganizationID == uuid.Nil {
		a.OrganizationID = createTestOrganization(t, v1.OrganizationEditable{}).Data.ID
	}

	if a.Code == "" {
		a.Code = uuid.NewString()
	}

	if a.Name == "" {
		a.Name = uuid.NewString()
	}

	if a.Type == "" {
		a.Type = models.AccountTypeAsset
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", a)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var account v1.AccountResponse
	test.DecodeResponse(t, &r, &account)

	return account
}

// TestAccountsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestAccountsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Accounts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Account with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Account exists", createTestAccount(suite.T(), v1.AccountEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/accounts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsCreate() {
	a := createTestAccount(suite.T(), v1.AccountEditable{
		Code:    "5000",
		Name:    "Food Purchases",
		Type:    models.AccountTypeCostOfSales,
		Balance: decimal.NewFromFloat(1234.56),
	})

	assert.Equal(suite.T(), "5000", a.Data.Code)
	assert.Equal(suite.T(), models.AccountTypeCostOfSales, a.Data.Type)
	assert.True(suite.T(), a.Data.Balance.Equal(decimal.NewFromFloat(1234.56)))
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidType() {
	r := createTestAccount(suite.T(), v1.AccountEditable{Type: "NOT_A_TYPE"}, http.StatusBadRequest)
	assert.Contains(suite.T(), *r.Error, models.ErrAccountTypeInvalid.Error())
}

func (suite *TestSuiteStandard) TestAccountsCreateDuplicateCode() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	createTestAccount(suite.T(), v1.AccountEditable{OrganizationID: o.Data.ID, Code: "1000"})
	r := createTestAccount(suite.T(), v1.AccountEditable{OrganizationID: o.Data.ID, Code: "1000"}, http.StatusBadRequest)

	assert.Contains(suite.T(), *r.Error, models.ErrAccountCodeNotUnique.Error())
}

func (suite *TestSuiteStandard) TestAccountsCreateNoOrganization() {
	r := createTestAccount(suite.T(), v1.AccountEditable{OrganizationID: uuid.New()}, http.StatusNotFound)
	assert.Contains(suite.T(), *r.Error, "there is no organization")
}

func (suite *TestSuiteStandard) TestAccountsGetFilter() {
	o1 := createTestOrganization(suite.T(), v1.OrganizationEditable{})
	o2 := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	createTestAccount(suite.T(), v1.AccountEditable{OrganizationID: o1.Data.ID, Code: "1000", Type: models.AccountTypeAsset, Active: true})
	createTestAccount(suite.T(), v1.AccountEditable{OrganizationID: o1.Data.ID, Code: "5000", Type: models.AccountTypeCostOfSales, Active: true})
	createTestAccount(suite.T(), v1.AccountEditable{OrganizationID: o2.Data.ID, Code: "6000", Type: models.AccountTypeIndirectExpense, Active: false})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All accounts", "", 3},
		{"Organization filter", fmt.Sprintf("organizationId=%s", o1.Data.ID), 2},
		{"Type filter", "type=COST_OF_SALES", 1},
		{"Active filter", "active=false", 1},
		{"Combined", fmt.Sprintf("organizationId=%s&type=ASSET", o1.Data.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AccountListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetFilterInvalidType() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/accounts?type=INVALID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	a := createTestAccount(suite.T(), v1.AccountEditable{Name: "Old name"})

	r := test.Request(suite.T(), http.MethodPatch, a.Data.Links.Self, map[string]any{
		"name": "New name",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "New name", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	a := createTestAccount(suite.T(), v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodDelete, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
