package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanygsg/medrec/internal/audit"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
)

// --------- stubs ---------

type billingRepoStub struct {
	appointmentExists bool
	invoiceExists     bool
	snapshots         []decimal.Decimal

	created   *models.Invoice
	createErr error
}

func (s *billingRepoStub) InvoiceExistsForAppointment(_ context.Context, _ uint) (bool, error) {
	return s.invoiceExists, nil
}

func (s *billingRepoStub) AppointmentExists(_ context.Context, _ uint) (bool, error) {
	return s.appointmentExists, nil
}

func (s *billingRepoStub) ListPriceSnapshots(_ context.Context, _ uint) ([]decimal.Decimal, error) {
	return s.snapshots, nil
}

func (s *billingRepoStub) CreateInvoice(_ context.Context, inv *models.Invoice) error {
	if s.createErr != nil {
		return s.createErr
	}
	inv.ID = 10
	s.created = inv
	return nil
}

type sequencerStub struct {
	id string
}

func (s *sequencerStub) Next(_ context.Context, _ string) (string, error) {
	return s.id, nil
}

type sinkStub struct {
	events []audit.Event
}

func (s *sinkStub) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

// --------- tests ---------

func TestGenerateInvoice(t *testing.T) {
	repo := &billingRepoStub{
		appointmentExists: true,
		snapshots: []decimal.Decimal{
			decimal.NewFromInt(100),
			decimal.NewFromInt(150),
			decimal.NewFromInt(200),
		},
	}
	sink := &sinkStub{}

	uc := NewGenerateInvoice(repo, &sequencerStub{id: "INV-2025-00042"}, sink)
	issued := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return issued }

	inv, err := uc.Execute(context.Background(), 7, nil)
	require.NoError(t, err)

	assert.Equal(t, "INV-2025-00042", inv.InvoiceNumber)
	assert.Equal(t, uint(7), inv.AppointmentID)
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, "unpaid", inv.Status)
	assert.Equal(t, issued, inv.IssueDate)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "invoice_generated", sink.events[0].Action)
}

func TestGenerateInvoiceAppointmentNotFound(t *testing.T) {
	repo := &billingRepoStub{appointmentExists: false}
	uc := NewGenerateInvoice(repo, &sequencerStub{id: "INV-2025-00001"}, &sinkStub{})

	_, err := uc.Execute(context.Background(), 7, nil)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestGenerateInvoiceAlreadyExists(t *testing.T) {
	repo := &billingRepoStub{appointmentExists: true, invoiceExists: true}
	sink := &sinkStub{}
	uc := NewGenerateInvoice(repo, &sequencerStub{id: "INV-2025-00001"}, sink)

	_, err := uc.Execute(context.Background(), 7, nil)

	require.True(t, httperr.IsBusiness(err, "invoice_already_exists"))
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t, "Invoice already exists for this appointment", be.Message)
	assert.Empty(t, sink.events)
}

func TestGenerateInvoiceUniqueViolationRace(t *testing.T) {
	repo := &billingRepoStub{
		appointmentExists: true,
		createErr:         &pgconn.PgError{Code: "23505"},
	}
	uc := NewGenerateInvoice(repo, &sequencerStub{id: "INV-2025-00003"}, &sinkStub{})

	_, err := uc.Execute(context.Background(), 7, nil)
	assert.True(t, httperr.IsBusiness(err, "invoice_already_exists"))
}

func TestGenerateInvoiceZeroTreatments(t *testing.T) {
	repo := &billingRepoStub{appointmentExists: true}
	uc := NewGenerateInvoice(repo, &sequencerStub{id: "INV-2025-00002"}, &sinkStub{})

	inv, err := uc.Execute(context.Background(), 7, nil)
	require.NoError(t, err)

	assert.True(t, inv.TotalAmount.Equal(decimal.Zero))
}
