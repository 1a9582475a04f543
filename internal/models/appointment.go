package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `gorm:"not null;index" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"patient"`

	AppointmentDate time.Time `gorm:"not null;index;default:CURRENT_TIMESTAMP" json:"appointment_date"`

	// Vital signs, all optional.
	BloodPressure   string `gorm:"size:10" json:"blood_pressure"`
	RespirationRate *int   `json:"respiration_rate"`
	HeartRate       *int   `json:"heart_rate"`
	BorgScale       *int   `json:"borg_scale"`

	Status string `gorm:"size:20;default:'completed'" json:"status"`

	Treatments []AppointmentTreatment `gorm:"foreignKey:AppointmentID" json:"treatments,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
