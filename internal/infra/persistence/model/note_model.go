package model

import "time"

// NoteModel mirrors the 'notes' table. UserID references users.id and carries
// an ON DELETE CASCADE constraint; the user repository additionally deletes
// notes explicitly when removing a user.
type NoteModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(200);not null"`
	Content   string `gorm:"type:text;not null"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NoteModel) TableName() string {
	return "notes"
}
