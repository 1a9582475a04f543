package appointment

import (
	"context"

	"github.com/germanygsg/medrec/internal/audit"
	domain "github.com/germanygsg/medrec/internal/domain/appointment"
	"github.com/germanygsg/medrec/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewDeleteAppointment(
	repo domain.Repository,
	auditSink audit.Sink,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: auditSink,
	}
}

// Execute refuses to delete an appointment that an invoice references;
// otherwise it removes the treatment associations and then the
// appointment itself.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID *string,
) error {

	if _, err := uc.repo.GetByID(ctx, appointmentID); err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	invoices, err := uc.repo.CountInvoices(ctx, appointmentID)
	if err != nil {
		return err
	}
	if invoices > 0 {
		return httperr.ErrBusinessMsg(
			"appointment_has_invoice",
			"Cannot delete appointment with existing invoices. Please delete the invoice first.",
		)
	}

	if err := uc.repo.DeleteCascade(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
