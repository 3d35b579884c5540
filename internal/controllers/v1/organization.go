package v1

import (
	"net/http"

	"github.com/chartkeeper/backend/internal/httputil"
	"github.com/chartkeeper/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterOrganizationRoutes registers the routes for organizations with
// the RouterGroup that is passed.
func RegisterOrganizationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsOrganizationList)
		r.GET("", GetOrganizations)
		r.POST("", CreateOrganization)
	}

	// Organization with ID
	{
		r.OPTIONS("/:id", OptionsOrganizationDetail)
		r.GET("/:id", GetOrganization)
		r.PATCH("/:id", UpdateOrganization)
		r.DELETE("/:id", DeleteOrganization)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Router			/v1/organizations [options]
func OptionsOrganizationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Organizations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [options]
func OptionsOrganizationDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Organization{})
}

// @Summary		Create organization
// @Description	Creates a new organization
// @Tags			Organizations
// @Produce		json
// @Success		201				{object}	OrganizationResponse
// @Failure		400				{object}	OrganizationResponse
// @Failure		500				{object}	OrganizationResponse
// @Param			organization	body		OrganizationEditable	true	"Organization"
// @Router			/v1/organizations [post]
func CreateOrganization(c *gin.Context) {
	var editable OrganizationEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	organization := editable.model()
	err = models.DB.Create(&organization).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	data := newOrganization(c, organization)
	c.JSON(http.StatusCreated, OrganizationResponse{Data: &data})
}

// @Summary		Get organizations
// @Description	Returns a list of organizations
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationListResponse
// @Failure		500	{object}	OrganizationListResponse
// @Router			/v1/organizations [get]
func GetOrganizations(c *gin.Context) {
	var organizations []models.Organization
	err := models.DB.Order("name ASC").Find(&organizations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Organization, 0, len(organizations))
	for _, organization := range organizations {
		data = append(data, newOrganization(c, organization))
	}

	c.JSON(http.StatusOK, OrganizationListResponse{Data: data})
}

// @Summary		Get organization
// @Description	Returns a specific organization
// @Tags			Organizations
// @Produce		json
// @Success		200	{object}	OrganizationResponse
// @Failure		400	{object}	OrganizationResponse
// @Failure		404	{object}	OrganizationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [get]
func GetOrganization(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	var organization models.Organization
	err = models.DB.First(&organization, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	data := newOrganization(c, organization)
	c.JSON(http.StatusOK, OrganizationResponse{Data: &data})
}

// @Summary		Update organization
// @Description	Update an existing organization. Only values to be updated need to be specified.
// @Tags			Organizations
// @Accept			json
// @Produce		json
// @Success		200				{object}	OrganizationResponse
// @Failure		400				{object}	OrganizationResponse
// @Failure		404				{object}	OrganizationResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			organization	body		OrganizationEditable	true	"Organization"
// @Router			/v1/organizations/{id} [patch]
func UpdateOrganization(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	var organization models.Organization
	err = models.DB.First(&organization, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, OrganizationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	var data OrganizationEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&organization).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OrganizationResponse{
			Error: &s,
		})
		return
	}

	r := newOrganization(c, organization)
	c.JSON(http.StatusOK, OrganizationResponse{Data: &r})
}

// @Summary		Delete organization
// @Description	Deletes an organization
// @Tags			Organizations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/organizations/{id} [delete]
func DeleteOrganization(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var organization models.Organization
	err = models.DB.First(&organization, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&organization).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
