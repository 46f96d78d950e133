package models

// Client is the root of the reference hierarchy. Removing a client cascades
// to its projects, project managers and (through projects) tasks; time logs
// survive with their client attribution nulled.
type Client struct {
	ClientID      string `gorm:"column:client_id;primaryKey;size:255" json:"client_id"`
	ClientName    string `gorm:"column:client_name;size:255;not null" json:"client_name"`
	ClientAddress string `gorm:"column:client_address;size:255" json:"client_address"`
	State         string `gorm:"column:state;size:50" json:"state"`
	City          string `gorm:"column:city;size:100" json:"city"`
	ZipCode       string `gorm:"column:zip_code;size:10" json:"zip_code"`
	Notes         string `gorm:"column:notes;type:text" json:"notes"`

	Projects        []Project        `gorm:"foreignKey:ClientID;references:ClientID;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
	ProjectManagers []ProjectManager `gorm:"foreignKey:ClientID;references:ClientID;constraint:OnDelete:CASCADE" json:"project_managers,omitempty"`
	Tasks           []Task           `gorm:"foreignKey:ClientID;references:ClientID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	TimeLogs        []TimeLog        `gorm:"foreignKey:ClientID;references:ClientID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Client) TableName() string {
	return "client"
}
