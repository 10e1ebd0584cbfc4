package model

import "time"

// SettingModel is the GORM-specific struct for the 'settings' table.
type SettingModel struct {
	Key         string `gorm:"primaryKey;type:varchar(100)"`
	Value       string `gorm:"type:text;not null"`
	Description string `gorm:"type:varchar(255);not null;default:''"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
