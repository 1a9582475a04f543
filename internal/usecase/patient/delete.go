package patient

import (
	"context"

	"github.com/germanygsg/medrec/internal/audit"
	domain "github.com/germanygsg/medrec/internal/domain/patient"
)

type DeletePatient struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeletePatient(
	repo domain.Repository,
	auditSink audit.Sink,
) *DeletePatient {
	return &DeletePatient{
		repo:  repo,
		audit: auditSink,
	}
}

// Execute blocks deletion while appointments reference the patient. The
// error tells the operator whether invoices also stand in the way, so
// remediation order is clear.
func (uc *DeletePatient) Execute(
	ctx context.Context,
	patientID uint,
	actorID *string,
) error {

	appointments, err := uc.repo.CountAppointments(ctx, patientID)
	if err != nil {
		return err
	}

	if appointments > 0 {
		invoices, err := uc.repo.CountInvoices(ctx, patientID)
		if err != nil {
			return err
		}
		return domain.DeleteBlocked(appointments, invoices)
	}

	if err := uc.repo.Delete(ctx, patientID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "patient_deleted",
		Entity:   "patient",
		EntityID: &patientID,
	})

	return nil
}
