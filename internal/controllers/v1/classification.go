package v1

import (
	"net/http"

	"github.com/chartkeeper/backend/internal/classifier"
	"github.com/chartkeeper/backend/internal/httputil"
	"github.com/chartkeeper/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ClassificationEditable is the request body for a classification.
type ClassificationEditable struct {
	OrganizationID uuid.UUID `json:"organizationId" example:"d1b4b1a1-dd24-4e17-9af5-7a1a3f64f223"` // ID of the organization whose chart is used
	classifier.Request
}

// ClassificationData is the outcome of a classification, the suggested
// accounts together with the journal entries for the purchase.
type ClassificationData struct {
	classifier.Result
	JournalEntries []classifier.JournalEntry `json:"journalEntries"` // Balanced journal entries for the suggested account
}

type ClassificationResponse struct {
	Data  *ClassificationData `json:"data"`                                                          // Data for the classification
	Error *string             `json:"error" example:"the organizationId parameter must be set"`      // The error, if any occurred
}

// RegisterClassificationRoutes registers the routes for classifications.
func RegisterClassificationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsClassificationList)
		r.POST("", CreateClassification)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Classifications
// @Success		204
// @Router			/v1/classifications [options]
func OptionsClassificationList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Classify a purchase
// @Description	Suggests an account from the organization's chart for a purchase, with alternatives, reasoning and balanced journal entries. The vendor to account mapping is recorded for later review.
// @Tags			Classifications
// @Accept			json
// @Produce		json
// @Success		200				{object}	ClassificationResponse
// @Failure		400				{object}	ClassificationResponse
// @Failure		404				{object}	ClassificationResponse
// @Failure		500				{object}	ClassificationResponse
// @Param			classification	body		ClassificationEditable	true	"Classification"
// @Router			/v1/classifications [post]
func CreateClassification(c *gin.Context) {
	var editable ClassificationEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ClassificationResponse{Error: &s})
		return
	}

	if editable.OrganizationID == uuid.Nil {
		s := errOrganizationIDParameter.Error()
		c.JSON(http.StatusBadRequest, ClassificationResponse{Error: &s})
		return
	}

	var organization models.Organization
	err = models.DB.First(&organization, editable.OrganizationID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ClassificationResponse{Error: &s})
		return
	}

	var chart []models.Account
	err = models.DB.
		Where("organization_id = ? AND active", organization.ID).
		Order("code ASC").
		Find(&chart).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ClassificationResponse{Error: &s})
		return
	}

	engine := classifier.New(classifier.DefaultRuleset())
	result := engine.Classify(editable.Request, chart)

	// Record the mapping for later human review. A failure to record does
	// not fail the classification.
	pattern := models.ClassificationPattern{
		OrganizationID: organization.ID,
		Vendor:         editable.Vendor,
		Category:       editable.Category,
		AccountCode:    result.Primary.Code,
		Confidence:     result.Primary.Confidence,
		DocumentType:   editable.DocumentType,
	}

	err = models.DB.Create(&pattern).Error
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("recording classification pattern: %v", err)
	}

	data := ClassificationData{
		Result:         result,
		JournalEntries: classifier.GenerateJournalEntries(result.Primary, editable.Amount, editable.Vendor),
	}

	c.JSON(http.StatusOK, ClassificationResponse{Data: &data})
}
