package patient

import (
	"fmt"

	"github.com/germanygsg/medrec/internal/httperr"
)

// Deletion guard error codes.
const (
	CodeHasAppointments = "patient_has_appointments"
)

// DeleteBlocked builds the guard error for a patient that still has
// dependents. The wording distinguishes appointments that already carry
// invoices from bare appointments, so the operator knows what to remove
// first.
func DeleteBlocked(appointmentCount, invoiceCount int64) error {
	if invoiceCount > 0 {
		return httperr.ErrBusinessMsg(
			CodeHasAppointments,
			fmt.Sprintf(
				"Cannot delete patient. Patient has %d appointment(s) with %d invoice(s). Please delete all invoices and appointments first.",
				appointmentCount, invoiceCount,
			),
		)
	}
	return httperr.ErrBusinessMsg(
		CodeHasAppointments,
		fmt.Sprintf(
			"Cannot delete patient. Patient has %d appointment(s). Please delete all appointments first.",
			appointmentCount,
		),
	)
}
