package invoice

import (
	"context"
	"time"

	"github.com/germanygsg/medrec/internal/audit"
	"github.com/germanygsg/medrec/internal/domain/billing"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
	"github.com/germanygsg/medrec/internal/sequence"
)

// Sequencer issues the next identifier for a prefix.
type Sequencer interface {
	Next(ctx context.Context, prefix string) (string, error)
}

// ======================================================
// USE CASE
// ======================================================

type GenerateInvoice struct {
	repo  billing.Repository
	seq   Sequencer
	audit audit.Sink
	now   func() time.Time
}

func NewGenerateInvoice(
	repo billing.Repository,
	seq Sequencer,
	auditSink audit.Sink,
) *GenerateInvoice {
	return &GenerateInvoice{
		repo:  repo,
		seq:   seq,
		audit: auditSink,
		now:   time.Now,
	}
}

// Execute derives the invoice for an appointment: total from the price
// snapshots captured when the treatments were associated, never from
// current catalog prices. At most one invoice per appointment; the
// unique index backstops the pre-check under concurrency.
func (uc *GenerateInvoice) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID *string,
) (*models.Invoice, error) {

	ok, err := uc.repo.AppointmentExists(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	exists, err := uc.repo.InvoiceExistsForAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusinessMsg(
			"invoice_already_exists",
			"Invoice already exists for this appointment",
		)
	}

	snapshots, err := uc.repo.ListPriceSnapshots(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	number, err := uc.seq.Next(ctx, sequence.PrefixInvoice)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		InvoiceNumber: number,
		AppointmentID: appointmentID,
		TotalAmount:   billing.Total(snapshots),
		IssueDate:     uc.now(),
		Status:        string(billing.StatusUnpaid),
	}

	if err := uc.repo.CreateInvoice(ctx, inv); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusinessMsg(
				"invoice_already_exists",
				"Invoice already exists for this appointment",
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "invoice_generated",
		Entity:   "invoice",
		EntityID: &inv.ID,
		Metadata: map[string]any{
			"appointment_id": appointmentID,
			"total":          inv.TotalAmount,
		},
	})

	return inv, nil
}
