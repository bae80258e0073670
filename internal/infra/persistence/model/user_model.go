// Package model contains the GORM persistence models. These mirror the SQL
// schema and are mapped to/from pure domain entities at the repository
// boundary.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(80);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(128);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Notes []NoteModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
