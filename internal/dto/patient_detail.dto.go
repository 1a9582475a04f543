package dto

import "github.com/germanygsg/medrec/internal/models"

type PatientDetail struct {
	models.Patient
	Age int `json:"age"`
}
