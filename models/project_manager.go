package models

type ProjectManager struct {
	PMID        uint   `gorm:"column:pm_id;primaryKey;autoIncrement" json:"pm_id"`
	ClientID    string `gorm:"column:client_id;size:255;not null;index" json:"client_id"`
	ManagerName string `gorm:"column:manager_name;size:255;not null" json:"manager_name"`
	Notes       string `gorm:"column:notes;type:text" json:"notes"`
}

func (ProjectManager) TableName() string {
	return "project_manager"
}
