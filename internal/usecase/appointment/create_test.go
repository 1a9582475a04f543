package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanygsg/medrec/internal/audit"
	"github.com/germanygsg/medrec/internal/httperr"
	"github.com/germanygsg/medrec/internal/models"
)

// --------- stubs ---------

type repoStub struct {
	patientExists bool
	treatments    []models.Treatment
	invoiceCount  int64
	appointment   *models.Appointment

	requestedIDs []uint
	createdAp    *models.Appointment
	createdAssoc []models.AppointmentTreatment
	deletedID    uint
}

func (s *repoStub) PatientExists(_ context.Context, _ uint) (bool, error) {
	return s.patientExists, nil
}

func (s *repoStub) ListTreatmentsByIDs(_ context.Context, ids []uint) ([]models.Treatment, error) {
	s.requestedIDs = ids
	return s.treatments, nil
}

func (s *repoStub) CreateWithTreatments(
	_ context.Context,
	ap *models.Appointment,
	associations []models.AppointmentTreatment,
) error {
	ap.ID = 55
	s.createdAp = ap
	s.createdAssoc = associations
	return nil
}

func (s *repoStub) CountInvoices(_ context.Context, _ uint) (int64, error) {
	return s.invoiceCount, nil
}

func (s *repoStub) DeleteCascade(_ context.Context, appointmentID uint) error {
	s.deletedID = appointmentID
	return nil
}

func (s *repoStub) GetByID(_ context.Context, _ uint) (*models.Appointment, error) {
	if s.appointment == nil {
		return nil, errors.New("record not found")
	}
	return s.appointment, nil
}

type sinkStub struct {
	events []audit.Event
}

func (s *sinkStub) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

// --------- tests ---------

func TestCreateAppointmentSnapshotsPrices(t *testing.T) {
	repo := &repoStub{
		patientExists: true,
		treatments: []models.Treatment{
			{ID: 1, Name: "Ultrasound", Price: decimal.RequireFromString("150.00")},
			{ID: 2, Name: "Manual therapy", Price: decimal.RequireFromString("200.00")},
		},
	}
	sink := &sinkStub{}
	uc := NewCreateAppointment(repo, sink)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID:    3,
		TreatmentIDs: []uint{1, 2},
	}, nil)
	require.NoError(t, err)

	require.Len(t, repo.createdAssoc, 2)
	assert.True(t, repo.createdAssoc[0].PriceAtTime.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, repo.createdAssoc[1].PriceAtTime.Equal(decimal.RequireFromString("200.00")))

	assert.Equal(t, "completed", ap.Status)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "appointment_created", sink.events[0].Action)
}

func TestCreateAppointmentDedupesTreatments(t *testing.T) {
	repo := &repoStub{
		patientExists: true,
		treatments: []models.Treatment{
			{ID: 1, Price: decimal.NewFromInt(100)},
		},
	}
	uc := NewCreateAppointment(repo, &sinkStub{})

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID:    3,
		TreatmentIDs: []uint{1, 1, 1},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, repo.requestedIDs)
	assert.Len(t, repo.createdAssoc, 1)
}

func TestCreateAppointmentDefaultsDate(t *testing.T) {
	repo := &repoStub{patientExists: true}
	uc := NewCreateAppointment(repo, &sinkStub{})
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{PatientID: 3}, nil)
	require.NoError(t, err)

	assert.Equal(t, now, ap.AppointmentDate)
}

func TestCreateAppointmentPatientNotFound(t *testing.T) {
	uc := NewCreateAppointment(&repoStub{patientExists: false}, &sinkStub{})

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{PatientID: 9}, nil)
	assert.True(t, httperr.IsBusiness(err, "patient_not_found"))
}

func TestCreateAppointmentInvalidStatus(t *testing.T) {
	uc := NewCreateAppointment(&repoStub{patientExists: true}, &sinkStub{})

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID: 3,
		Status:    "done",
	}, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCreateAppointmentUnknownTreatment(t *testing.T) {
	repo := &repoStub{
		patientExists: true,
		treatments: []models.Treatment{
			{ID: 1, Price: decimal.NewFromInt(100)},
		},
	}
	uc := NewCreateAppointment(repo, &sinkStub{})

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID:    3,
		TreatmentIDs: []uint{1, 99},
	}, nil)
	assert.True(t, httperr.IsBusiness(err, "treatment_not_found"))
}
