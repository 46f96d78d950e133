package models

const (
	ProjectTypeEstimatic  = "Estimatic"
	ProjectTypeScheduling = "Scheduling"
)

const (
	ProjectStatusCompleted  = "Completed"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusNotStarted = "Not Started"
)

// Project belongs to a client. ClientProjectManager is a denormalized name,
// deliberately not a foreign key to project_manager.
type Project struct {
	ProjectNo            string `gorm:"column:project_no;primaryKey;size:255" json:"project_no"`
	ClientID             string `gorm:"column:client_id;size:255;not null;index" json:"client_id"`
	ProjectName          string `gorm:"column:project_name;size:255;not null" json:"project_name"`
	ClientProjectManager string `gorm:"column:client_project_manager;size:255" json:"client_project_manager"`
	ProjectType          string `gorm:"column:project_type;size:20" json:"project_type"`
	ProjectStatus        string `gorm:"column:project_status;size:20" json:"project_status"`
	Notes                string `gorm:"column:notes;type:text" json:"notes"`

	Tasks    []Task    `gorm:"foreignKey:ProjectNo;references:ProjectNo;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	TimeLogs []TimeLog `gorm:"foreignKey:ProjectNo;references:ProjectNo;constraint:OnDelete:SET NULL" json:"-"`
}

func (Project) TableName() string {
	return "project"
}

// ValidProjectType accepts the empty string; type is optional on a project.
func ValidProjectType(t string) bool {
	return t == "" || t == ProjectTypeEstimatic || t == ProjectTypeScheduling
}

func ValidProjectStatus(s string) bool {
	return s == "" || s == ProjectStatusCompleted || s == ProjectStatusInProgress || s == ProjectStatusNotStarted
}
