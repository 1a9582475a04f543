package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanygsg/medrec/internal/audit"
	domain "github.com/germanygsg/medrec/internal/domain/patient"
	"github.com/germanygsg/medrec/internal/httperr"
)

type repoStub struct {
	appointments int64
	invoices     int64

	deletedID uint
}

func (s *repoStub) CountAppointments(_ context.Context, _ uint) (int64, error) {
	return s.appointments, nil
}

func (s *repoStub) CountInvoices(_ context.Context, _ uint) (int64, error) {
	return s.invoices, nil
}

func (s *repoStub) Delete(_ context.Context, patientID uint) error {
	s.deletedID = patientID
	return nil
}

type sinkStub struct {
	events []audit.Event
}

func (s *sinkStub) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

func TestDeletePatient(t *testing.T) {
	repo := &repoStub{}
	sink := &sinkStub{}
	uc := NewDeletePatient(repo, sink)

	err := uc.Execute(context.Background(), 12, nil)
	require.NoError(t, err)

	assert.Equal(t, uint(12), repo.deletedID)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "patient_deleted", sink.events[0].Action)
}

func TestDeletePatientBlockedByAppointments(t *testing.T) {
	repo := &repoStub{appointments: 2}
	sink := &sinkStub{}
	uc := NewDeletePatient(repo, sink)

	err := uc.Execute(context.Background(), 12, nil)

	require.True(t, httperr.IsBusiness(err, domain.CodeHasAppointments))
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t,
		"Cannot delete patient. Patient has 2 appointment(s). Please delete all appointments first.",
		be.Message,
	)
	assert.Zero(t, repo.deletedID)
	assert.Empty(t, sink.events)
}

func TestDeletePatientBlockedByInvoices(t *testing.T) {
	repo := &repoStub{appointments: 3, invoices: 1}
	uc := NewDeletePatient(repo, &sinkStub{})

	err := uc.Execute(context.Background(), 12, nil)

	be, ok := httperr.AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t,
		"Cannot delete patient. Patient has 3 appointment(s) with 1 invoice(s). Please delete all invoices and appointments first.",
		be.Message,
	)
}
