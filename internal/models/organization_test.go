package models_test

import (
	"strings"

	"github.com/chartkeeper/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOrganizationTrimWhitespace() {
	name := "\t The Breakfast Club   "
	note := " Diner with two locations    "

	organization := suite.createTestOrganization(models.Organization{
		Name: name,
		Note: note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), organization.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), organization.Note)
}

func (suite *TestSuiteStandard) TestOrganizationNameUnique() {
	suite.createTestOrganization(models.Organization{Name: "Unique Diner"})

	err := models.DB.Create(&models.Organization{Name: "Unique Diner"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrOrganizationNameNotUnique)
}

func (suite *TestSuiteStandard) TestOrganizationExport() {
	suite.createTestOrganization(models.Organization{})

	raw, err := models.Organization{}.Export()
	assert.Nil(suite.T(), err)
	assert.Contains(suite.T(), string(raw), "\"Name\"")
}
