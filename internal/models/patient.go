package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RecordNumber string `gorm:"size:20;uniqueIndex;not null" json:"record_number"`
	Name         string `gorm:"size:256;not null;index" json:"name"`

	DateOfBirth      time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Address          string    `gorm:"type:text" json:"address"`
	InitialDiagnosis string    `gorm:"type:text" json:"initial_diagnosis"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
