package model

import "time"

type Session struct {
	ID   uint    `gorm:"primaryKey" json:"id"`
	Name string  `gorm:"type:text;not null" json:"name"`
	Note *string `gorm:"type:text" json:"note"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;index" json:"created_at"`

	// Derived on read, not a column.
	TaskCount int64 `gorm:"->;-:migration" json:"task_count"`
}

func (Session) TableName() string { return "sessions" }
