package models_test

import (
	"strings"

	"github.com/chartkeeper/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	code := "  5000 \t"
	name := "\t Food Purchases   "
	category := " Cost of Goods Sold    "

	account := suite.createTestAccount(models.Account{
		Code:     code,
		Name:     name,
		Category: category,
		Type:     models.AccountTypeCostOfSales,
	})

	assert.Equal(suite.T(), strings.TrimSpace(code), account.Code)
	assert.Equal(suite.T(), strings.TrimSpace(name), account.Name)
	assert.Equal(suite.T(), strings.TrimSpace(category), account.Category)
}

func (suite *TestSuiteStandard) TestAccountTypeInvalid() {
	err := models.DB.Create(&models.Account{
		OrganizationID: suite.createTestOrganization(models.Organization{}).ID,
		Code:           "9999",
		Name:           "Broken",
		Type:           "NOT_A_TYPE",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAccountTypeInvalid)
}

func (suite *TestSuiteStandard) TestAccountCodeUniquePerOrganization() {
	organization := suite.createTestOrganization(models.Organization{})

	suite.createTestAccount(models.Account{OrganizationID: organization.ID, Code: "1000"})

	err := models.DB.Create(&models.Account{
		OrganizationID: organization.ID,
		Code:           "1000",
		Name:           "Duplicate",
		Type:           models.AccountTypeAsset,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountCodeNotUnique)

	// The same code is fine for another organization
	suite.createTestAccount(models.Account{Code: "1000"})
}

func (suite *TestSuiteStandard) TestAccountOrganizationMustExist() {
	err := models.DB.Create(&models.Account{
		OrganizationID: uuid.New(),
		Code:           "1000",
		Name:           "Orphan",
		Type:           models.AccountTypeAsset,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAccountBalanceDecimal() {
	account := suite.createTestAccount(models.Account{
		Balance: decimal.RequireFromString("-1234.5678"),
	})

	var reloaded models.Account
	err := models.DB.First(&reloaded, account.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), reloaded.Balance.Equal(decimal.RequireFromString("-1234.5678")))
}

func (suite *TestSuiteStandard) TestAccountExport() {
	suite.createTestAccount(models.Account{})
	suite.createTestAccount(models.Account{})

	raw, err := models.Account{}.Export()
	assert.Nil(suite.T(), err)
	assert.Contains(suite.T(), string(raw), "\"Code\"")
}
