package models

import (
	"time"
)

// UserListModel represents the database persistence model for service rosters.
// One roster exists per service.
type UserListModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	ServiceID string `gorm:"not null;size:36;uniqueIndex:idx_user_list_service"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserListModel) TableName() string {
	return "user_lists"
}

// UserListItemModel is one roster entry.
type UserListItemModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	UserListID string `gorm:"not null;size:36;index:idx_user_list_item_list"`
	Name       string `gorm:"not null;size:50"`
	Email      string `gorm:"not null;size:255"`
	CorpUserID string `gorm:"not null;size:8"`
	Area       string `gorm:"size:15"`
	CostCenter string `gorm:"not null;size:9"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (UserListItemModel) TableName() string {
	return "user_list_items"
}
