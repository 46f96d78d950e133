package models

type Employ struct {
	EmployID            string  `gorm:"column:employ_id;primaryKey;size:50" json:"employ_id"`
	EmployName          string  `gorm:"column:employ_name;size:255;not null" json:"employ_name"`
	EmployContactNumber string  `gorm:"column:employ_contact_number;size:20;not null" json:"employ_contact_number"`
	EmployEmailAddress  string  `gorm:"column:employ_email_address;size:255;not null" json:"employ_email_address"`
	HourlyRate          float64 `gorm:"column:hourly_rate;type:decimal(10,2);not null" json:"hourly_rate"`

	TimeLogs []TimeLog `gorm:"foreignKey:EmployID;references:EmployID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Employ) TableName() string {
	return "employ"
}
