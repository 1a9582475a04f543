package appointment

import (
	"context"
	"time"

	"github.com/germanygsg/medrec/internal/audit"
	domain "github.com/germanygsg/medrec/internal/domain/appointment"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID       uint
	AppointmentDate *time.Time

	BloodPressure   string
	RespirationRate *int
	HeartRate       *int
	BorgScale       *int

	Status       string
	TreatmentIDs []uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	auditSink audit.Sink,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditSink,
		now:   time.Now,
	}
}

// Execute records a visit and snapshots each selected treatment's
// current catalog price into the association rows, so later price edits
// never change what this visit bills for.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
	actorID *string,
) (*models.Appointment, error) {

	ok, err := uc.repo.PatientExists(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	status := in.Status
	if status == "" {
		status = string(domain.DefaultStatus())
	}
	if !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	date := uc.now()
	if in.AppointmentDate != nil {
		date = *in.AppointmentDate
	}

	treatmentIDs := dedupe(in.TreatmentIDs)

	var associations []models.AppointmentTreatment
	if len(treatmentIDs) > 0 {
		treatments, err := uc.repo.ListTreatmentsByIDs(ctx, treatmentIDs)
		if err != nil {
			return nil, err
		}
		if len(treatments) != len(treatmentIDs) {
			return nil, httperr.ErrBusiness("treatment_not_found")
		}

		for _, t := range treatments {
			associations = append(associations, models.AppointmentTreatment{
				TreatmentID: t.ID,
				PriceAtTime: t.Price,
			})
		}
	}

	ap := &models.Appointment{
		PatientID:       in.PatientID,
		AppointmentDate: date,
		BloodPressure:   in.BloodPressure,
		RespirationRate: in.RespirationRate,
		HeartRate:       in.HeartRate,
		BorgScale:       in.BorgScale,
		Status:          status,
	}

	if err := uc.repo.CreateWithTreatments(ctx, ap, associations); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"patient_id": in.PatientID},
	})

	return ap, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	var out []uint
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
