package v1

import (
	"fmt"
	"net/http"

	"github.com/chartkeeper/backend/internal/httputil"
	"github.com/chartkeeper/backend/internal/models"
	ck_uuid "github.com/chartkeeper/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type PatternLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/patterns/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"` // The pattern itself
}

// Pattern is the representation of a recorded classification pattern in API v1.
type Pattern struct {
	models.DefaultModel
	OrganizationID ck_uuid.UUID `json:"organizationId" example:"d1b4b1a1-dd24-4e17-9af5-7a1a3f64f223"` // ID of the organization the pattern was recorded for
	Vendor         string       `json:"vendor" example:"Fresh Valley Farms"`                           // Vendor the purchase was made from
	Category       string       `json:"category" example:"food"`                                       // Category supplied with the request
	AccountCode    string       `json:"accountCode" example:"5000"`                                    // Code of the suggested account
	Confidence     float64      `json:"confidence" example:"0.95"`                                     // Confidence of the suggestion
	DocumentType   string       `json:"documentType" example:"invoice"`                                // Type of the source document
	Links          PatternLinks `json:"links"`
}

// newPattern returns the API v1 representation of the resource
func newPattern(c *gin.Context, model models.ClassificationPattern) Pattern {
	url := c.GetString(string(models.DBContextURL))

	return Pattern{
		DefaultModel:   model.DefaultModel,
		OrganizationID: ck_uuid.UUID{UUID: model.OrganizationID},
		Vendor:         model.Vendor,
		Category:       model.Category,
		AccountCode:    model.AccountCode,
		Confidence:     model.Confidence,
		DocumentType:   model.DocumentType,
		Links: PatternLinks{
			Self: fmt.Sprintf("%s/v1/patterns/%s", url, model.ID),
		},
	}
}

// PatternQueryFilter contains the query parameters to filter patterns.
type PatternQueryFilter struct {
	OrganizationID ck_uuid.UUID `form:"organizationId"` // Filter by organization
	Vendor         string       `form:"vendor"`         // Filter by vendor
}

type PatternListResponse struct {
	Data  []Pattern `json:"data"`                                                          // List of patterns
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterPatternRoutes registers the routes for patterns.
func RegisterPatternRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPatternList)
		r.GET("", GetPatterns)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Patterns
// @Success		204
// @Router			/v1/patterns [options]
func OptionsPatternList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List patterns
// @Description	Returns the recorded classification patterns, newest first
// @Tags			Patterns
// @Produce		json
// @Success		200	{object}	PatternListResponse
// @Failure		400	{object}	PatternListResponse
// @Failure		500	{object}	PatternListResponse
// @Param			organizationId	query	string	false	"Filter by organization ID"
// @Param			vendor			query	string	false	"Filter by vendor"
// @Router			/v1/patterns [get]
func GetPatterns(c *gin.Context) {
	var filter PatternQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PatternListResponse{Error: &s})
		return
	}

	q := models.DB.Order("created_at DESC")

	if filter.OrganizationID != ck_uuid.Nil {
		q = q.Where("organization_id = ?", filter.OrganizationID.UUID)
	}

	if filter.Vendor != "" {
		q = q.Where("vendor = ?", filter.Vendor)
	}

	var patterns []models.ClassificationPattern
	err := q.Find(&patterns).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PatternListResponse{Error: &s})
		return
	}

	data := make([]Pattern, 0, len(patterns))
	for _, pattern := range patterns {
		data = append(data, newPattern(c, pattern))
	}

	c.JSON(http.StatusOK, PatternListResponse{Data: data})
}
