package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// Organization is a tenant owning a chart of accounts.
type Organization struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Note string
}

// BeforeSave trims whitespace from all strings.
func (o *Organization) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	o.Note = strings.TrimSpace(o.Note)

	return nil
}

// Export returns all organizations on this instance.
func (Organization) Export() (json.RawMessage, error) {
	var organizations []Organization
	err := DB.Unscoped().Where(&Organization{}).Find(&organizations).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&organizations)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
