package models

// Subconsultant mirrors Employ but lives in its own table; the two entity
// kinds are tracked independently.
type Subconsultant struct {
	SubconsultantID            string  `gorm:"column:subconsultant_id;primaryKey;size:50" json:"subconsultant_id"`
	SubconsultantName          string  `gorm:"column:subconsultant_name;size:255;not null" json:"subconsultant_name"`
	SubconsultantContactNumber string  `gorm:"column:subconsultant_contact_number;size:20;not null" json:"subconsultant_contact_number"`
	SubconsultantEmailAddress  string  `gorm:"column:subconsultant_email_address;size:255;not null" json:"subconsultant_email_address"`
	HourlyRate                 float64 `gorm:"column:hourly_rate;type:decimal(10,2);not null" json:"hourly_rate"`
}

func (Subconsultant) TableName() string {
	return "subconsultant"
}
