package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/chartkeeper/backend/internal/controllers/v1"
	"github.com/chartkeeper/backend/internal/models"
	"github.com/chartkeeper/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func createTestOrganization(t *testing.T, o v1.OrganizationEditable, expectedStatus ...int) v1.OrganizationResponse {
	if o.Name == "" {
		o.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/organizations", o)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var organization v1.OrganizationResponse
	test.DecodeResponse(t, &r, &organization)

	return organization
}

// TestOrganizationsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestOrganizationsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestOrganization(t, v1.OrganizationEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/organizations", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.OrganizationListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestOrganizationsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestOrganizationsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Organizations endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Organization with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Organization exists", createTestOrganization(suite.T(), v1.OrganizationEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/organizations", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestOrganizationsGetSingle verifies that requests for the resource endpoints
// are handled correctly.
func (suite *TestSuiteStandard) TestOrganizationsGetSingle() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Organization", o.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Organization with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/organizations/%s", tt.id), "")

			var organization v1.OrganizationResponse
			test.DecodeResponse(t, &r, &organization)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestOrganizationsCreateDuplicateName() {
	createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Alfajor Bakery"})
	r := createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Alfajor Bakery"}, http.StatusBadRequest)

	assert.Contains(suite.T(), *r.Error, models.ErrOrganizationNameNotUnique.Error())
}

func (suite *TestSuiteStandard) TestOrganizationsUpdate() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Old name"})

	r := test.Request(suite.T(), http.MethodPatch, o.Data.Links.Self, map[string]any{
		"name": "New name",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.OrganizationResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "New name", updated.Data.Name)
}

func (suite *TestSuiteStandard) TestOrganizationsDelete() {
	o := createTestOrganization(suite.T(), v1.OrganizationEditable{})

	r := test.Request(suite.T(), http.MethodDelete, o.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, o.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOrganizationsGetAll() {
	createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Xi Breakfast"})
	createTestOrganization(suite.T(), v1.OrganizationEditable{Name: "Antares Diner"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/organizations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OrganizationListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	// Ordered by name
	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "Antares Diner", response.Data[0].Name)
		assert.Equal(suite.T(), "Xi Breakfast", response.Data[1].Name)
	}
}
