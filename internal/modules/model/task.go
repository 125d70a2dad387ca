package model

import (
	"time"

	"gorm.io/datatypes"
)

// Task is one business scenario. A nil SessionID means the task is current;
// a non-nil one means it was archived into that session.
type Task struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Name         string                      `gorm:"type:text;not null" json:"name"`
	Description  string                      `gorm:"type:text" json:"description"`
	TargetMarket string                      `gorm:"type:text" json:"target_market"`
	Timeline     string                      `gorm:"type:text" json:"timeline"`
	Resources    *string                     `gorm:"type:text" json:"resources"`
	Assumptions  datatypes.JSONSlice[string] `swaggertype:"array,string" json:"assumptions"`
	AIAnalysis   datatypes.JSONMap           `swaggertype:"object" json:"ai_analysis"`
	Metadata     datatypes.JSONMap           `swaggertype:"object" json:"metadata"`

	SessionID *uint `gorm:"index:ix_tasks_session_id" json:"session_id"`

	// Timestamps are stamped by the service in UTC, not by gorm.
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;index:ix_tasks_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null" json:"updated_at"`

	// Task <-> Session
	Session *Session `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}

func (Task) TableName() string { return "tasks" }

// UpdatableColumns lists the columns a partial update may write. An update
// never writes session_id or created_at.
var UpdatableColumns = []string{
	"name", "description", "target_market", "timeline", "resources",
	"assumptions", "ai_analysis", "metadata", "updated_at",
}
