package v1_test

import (
	"net/http"
	"testing"

	"github.com/chartkeeper/backend/internal/classifier"
	v1 "github.com/chartkeeper/backend/internal/controllers/v1"
	"github.com/chartkeeper/backend/internal/models"
	"github.com/chartkeeper/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestChart creates an organization with a small restaurant chart of
// accounts and returns the organization.
func createTestChart(t *testing.T) v1.OrganizationResponse {
	o := createTestOrganization(t, v1.OrganizationEditable{})

	accounts := []v1.AccountEditable{
		{Code: "5000", Name: "Food Purchases", Type: models.AccountTypeCostOfSales},
		{Code: "6100", Name: "Rent", Type: models.AccountTypeIndirectExpense},
		{Code: "2100", Name: "Accounts Payable", Type: models.AccountTypeLiability},
	}

	for _, a := range accounts {
		a.OrganizationID = o.Data.ID
		a.Active = true
		a.PostingAllowed = true
		createTestAccount(t, a)
	}

	return o
}

func classify(t *testing.T, body any, expectedStatus ...int) v1.ClassificationResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/classifications", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ClassificationResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestClassificationsVendorRule() {
	o := createTestChart(suite.T())

	response := classify(suite.T(), v1.ClassificationEditable{
		OrganizationID: o.Data.ID,
		Request: classifier.Request{
			Vendor: "Fresh Valley Farms",
			Amount: decimal.NewFromFloat(152.30),
		},
	})

	if assert.NotNil(suite.T(), response.Data) {
		assert.Equal(suite.T(), "5000", response.Data.Primary.Code)
		assert.InDelta(suite.T(), 0.95, response.Data.Primary.Confidence, 0.001)
		assert.NotEmpty(suite.T(), response.Data.Reasoning)
		assert.NotEmpty(suite.T(), response.Data.BusinessRules)
	}
}

func (suite *TestSuiteStandard) TestClassificationsJournalEntries() {
	o := createTestChart(suite.T())

	response := classify(suite.T(), v1.ClassificationEditable{
		OrganizationID: o.Data.ID,
		Request: classifier.Request{
			Vendor: "Fresh Valley Farms",
			Amount: decimal.NewFromFloat(152.30),
		},
	})

	if assert.NotNil(suite.T(), response.Data) && assert.Len(suite.T(), response.Data.JournalEntries, 2) {
		debit := response.Data.JournalEntries[0]
		credit := response.Data.JournalEntries[1]

		assert.Equal(suite.T(), "5000", debit.AccountCode)
		assert.True(suite.T(), debit.Debit.Equal(decimal.NewFromFloat(152.30)))
		assert.True(suite.T(), debit.Credit.IsZero())

		assert.Equal(suite.T(), "2100", credit.AccountCode)
		assert.Equal(suite.T(), "Accounts Payable", credit.AccountName)
		assert.True(suite.T(), credit.Credit.Equal(debit.Debit))
	}
}

func (suite *TestSuiteStandard) TestClassificationsDefaultFallback() {
	o := createTestChart(suite.T())

	response := classify(suite.T(), v1.ClassificationEditable{
		OrganizationID: o.Data.ID,
		Request: classifier.Request{
			Vendor:      "Completely Unknown Vendor",
			Description: "mystery services",
			Amount:      decimal.NewFromFloat(10),
		},
	})

	if assert.NotNil(suite.T(), response.Data) {
		assert.InDelta(suite.T(), 0.60, response.Data.Primary.Confidence, 0.001)
	}
}

func (suite *TestSuiteStandard) TestClassificationsRecordsPattern() {
	o := createTestChart(suite.T())

	classify(suite.T(), v1.ClassificationEditable{
		OrganizationID: o.Data.ID,
		Request: classifier.Request{
			Vendor:       "Fresh Valley Farms",
			Amount:       decimal.NewFromFloat(152.30),
			DocumentType: "invoice",
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/patterns?organizationId="+o.Data.ID.String(), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var patterns v1.PatternListResponse
	test.DecodeResponse(suite.T(), &r, &patterns)

	if assert.Len(suite.T(), patterns.Data, 1) {
		assert.Equal(suite.T(), "Fresh Valley Farms", patterns.Data[0].Vendor)
		assert.Equal(suite.T(), "5000", patterns.Data[0].AccountCode)
		assert.Equal(suite.T(), "invoice", patterns.Data[0].DocumentType)
	}
}

func (suite *TestSuiteStandard) TestClassificationsErrors() {
	tests := []struct {
		name     string
		body     v1.ClassificationEditable
		status   int
		contains string
	}{
		{
			"Missing organization ID",
			v1.ClassificationEditable{Request: classifier.Request{Vendor: "Sysco"}},
			http.StatusBadRequest,
			"organizationId parameter must be set",
		},
		{
			"Organization does not exist",
			v1.ClassificationEditable{OrganizationID: uuid.New(), Request: classifier.Request{Vendor: "Sysco"}},
			http.StatusNotFound,
			"there is no organization",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := classify(t, tt.body, tt.status)

			if assert.NotNil(t, response.Error) {
				assert.Contains(t, *response.Error, tt.contains)
			}
		})
	}
}
