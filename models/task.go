package models

const (
	BillableYes = "Yes"
	BillableNo  = "No"
)

const (
	TaskStatusCompleted  = "Completed"
	TaskStatusInProgress = "In Progress"
	TaskStatusNotDone    = "Not Done"
)

// Task carries the billing inputs for the time-log reports. HourlyRate and
// Lumpsum are only meaningful when Billable is "Yes"; a billable task must
// hold a positive value in at least one of them.
type Task struct {
	TaskID     uint     `gorm:"column:task_id;primaryKey;autoIncrement" json:"task_id"`
	ClientID   string   `gorm:"column:client_id;size:255;not null;index" json:"client_id"`
	ProjectNo  string   `gorm:"column:project_no;size:255;not null;index" json:"project_no"`
	TaskName   string   `gorm:"column:task_name;size:255;not null" json:"task_name"`
	Billable   string   `gorm:"column:billable;size:3;not null" json:"billable"`
	HourlyRate *float64 `gorm:"column:hourly_rate;type:decimal(10,2)" json:"hourly_rate,omitempty"`
	Lumpsum    *float64 `gorm:"column:lumpsum;type:decimal(10,2)" json:"lumpsum,omitempty"`
	TaskStatus string   `gorm:"column:task_status;size:20" json:"task_status"`
	Notes      string   `gorm:"column:notes;type:text" json:"notes"`

	TimeLogs []TimeLog `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Task) TableName() string {
	return "task"
}

func ValidBillable(b string) bool {
	return b == BillableYes || b == BillableNo
}

func ValidTaskStatus(s string) bool {
	return s == "" || s == TaskStatusCompleted || s == TaskStatusInProgress || s == TaskStatusNotDone
}

// EffectiveHourlyRate returns the stored rate, or 0 when unset.
func (t *Task) EffectiveHourlyRate() float64 {
	if t.HourlyRate == nil {
		return 0
	}
	return *t.HourlyRate
}

// EffectiveLumpsum returns the stored lumpsum, or 0 when unset.
func (t *Task) EffectiveLumpsum() float64 {
	if t.Lumpsum == nil {
		return 0
	}
	return *t.Lumpsum
}
