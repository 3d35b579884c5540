package v1

import (
	"fmt"

	"github.com/chartkeeper/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// OrganizationEditable contains the fields callers can set.
type OrganizationEditable struct {
	Name string `json:"name" example:"Golden Fork Bistro" default:""` // Name of the organization
	Note string `json:"note" example:"Main location" default:""`     // Free-form notes
}

// model returns the database resource for the API representation of the editable fields
func (editable OrganizationEditable) model() models.Organization {
	return models.Organization{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type OrganizationLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/organizations/d1b4b1a1-dd24-4e17-9af5-7a1a3f64f223"`              // The organization itself
	Accounts string `json:"accounts" example:"https://example.com/api/v1/accounts?organizationId=d1b4b1a1-dd24-4e17-9af5-7a1a3f64f223"` // Chart of accounts of the organization
}

// Organization is the representation of an Organization in API v1.
type Organization struct {
	models.DefaultModel
	OrganizationEditable
	Links OrganizationLinks `json:"links"`
}

// newOrganization returns the API v1 representation of the resource
func newOrganization(c *gin.Context, model models.Organization) Organization {
	url := c.GetString(string(models.DBContextURL))

	return Organization{
		DefaultModel: model.DefaultModel,
		OrganizationEditable: OrganizationEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: OrganizationLinks{
			Self:     fmt.Sprintf("%s/v1/organizations/%s", url, model.ID),
			Accounts: fmt.Sprintf("%s/v1/accounts?organizationId=%s", url, model.ID),
		},
	}
}

type OrganizationResponse struct {
	Data  *Organization `json:"data"`                                                          // Data for the organization
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type OrganizationListResponse struct {
	Data  []Organization `json:"data"`                                                          // List of organizations
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
