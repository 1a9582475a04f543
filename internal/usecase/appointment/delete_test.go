package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
)

func TestDeleteAppointment(t *testing.T) {
	repo := &repoStub{appointment: &models.Appointment{ID: 4}}
	sink := &sinkStub{}
	uc := NewDeleteAppointment(repo, sink)

	err := uc.Execute(context.Background(), 4, nil)
	require.NoError(t, err)

	assert.Equal(t, uint(4), repo.deletedID)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "appointment_deleted", sink.events[0].Action)
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	uc := NewDeleteAppointment(&repoStub{}, &sinkStub{})

	err := uc.Execute(context.Background(), 4, nil)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestDeleteAppointmentBlockedByInvoice(t *testing.T) {
	repo := &repoStub{
		appointment:  &models.Appointment{ID: 4},
		invoiceCount: 1,
	}
	sink := &sinkStub{}
	uc := NewDeleteAppointment(repo, sink)

	err := uc.Execute(context.Background(), 4, nil)

	require.True(t, httperr.IsBusiness(err, "appointment_has_invoice"))
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t,
		"Cannot delete appointment with existing invoices. Please delete the invoice first.",
		be.Message,
	)
	assert.Zero(t, repo.deletedID)
	assert.Empty(t, sink.events)
}
