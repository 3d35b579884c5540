package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassificationPattern records one classification decision for later human
// review. Patterns are write-only from the classifier's perspective; nothing
// in the backend reads them back into the rule cascade.
type ClassificationPattern struct {
	DefaultModel
	Organization   Organization `json:"-"`
	OrganizationID uuid.UUID
	Vendor         string
	Category       string
	AccountCode    string
	Confidence     float64
	DocumentType   string
}

// BeforeSave validates the confidence and trims whitespace from all strings.
func (p *ClassificationPattern) BeforeSave(_ *gorm.DB) error {
	if p.Confidence < 0 || p.Confidence > 1 {
		return ErrPatternConfidenceInvalid
	}

	p.Vendor = strings.TrimSpace(p.Vendor)
	p.Category = strings.TrimSpace(p.Category)
	p.AccountCode = strings.TrimSpace(p.AccountCode)
	p.DocumentType = strings.TrimSpace(p.DocumentType)

	return nil
}

func (p *ClassificationPattern) BeforeCreate(tx *gorm.DB) error {
	_ = p.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*ClassificationPattern)
	return tx.First(&Organization{}, toSave.OrganizationID).Error
}

// Export returns all classification patterns on this instance.
func (ClassificationPattern) Export() (json.RawMessage, error) {
	var patterns []ClassificationPattern
	err := DB.Unscoped().Where(&ClassificationPattern{}).Find(&patterns).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&patterns)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
