package models

import (
	"fmt"
	"strings"
	"time"
)

// TimeLog is one dated record of hours worked by one employee against one
// task. Every dimension reference is nullable with ON DELETE SET NULL so a
// log outlives the removal of its client, project, task or employee, losing
// only that attribution.
type TimeLog struct {
	LogID     string  `gorm:"column:log_id;primaryKey;size:512" json:"log_id"`
	LogDate   string  `gorm:"column:log_date;type:date;not null;index" json:"log_date"`
	ClientID  *string `gorm:"column:client_id;size:255" json:"client_id,omitempty"`
	ProjectNo *string `gorm:"column:project_no;size:255" json:"project_no,omitempty"`
	TaskID    *uint   `gorm:"column:task_id" json:"task_id,omitempty"`
	EmployID  *string `gorm:"column:employ_id;size:50" json:"employ_id,omitempty"`
	Hours     float64 `gorm:"column:hours;type:decimal(5,2);not null" json:"hours"`
	Notes     string  `gorm:"column:notes;type:text" json:"notes"`

	// Navigation only; the SET NULL constraints are declared on the parent
	// side so the FKs land on this table.
	Client  *Client  `gorm:"foreignKey:ClientID;references:ClientID" json:"client,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectNo;references:ProjectNo" json:"project,omitempty"`
	Task    *Task    `gorm:"foreignKey:TaskID;references:TaskID" json:"task,omitempty"`
	Employ  *Employ  `gorm:"foreignKey:EmployID;references:EmployID" json:"employ,omitempty"`
}

func (TimeLog) TableName() string {
	return "time_log"
}

// NewLogID derives the primary key from the log's dimensions plus a
// wall-clock stamp as uniqueness disambiguator:
// YYYYMMDD-<task>-<employ>-HHMMSS<micros>.
func NewLogID(date string, taskID uint, employID string, now time.Time) string {
	stamp := fmt.Sprintf("%s%06d", now.Format("150405"), now.Nanosecond()/1000)
	return fmt.Sprintf("%s-%d-%s-%s", strings.ReplaceAll(date, "-", ""), taskID, employID, stamp)
}
