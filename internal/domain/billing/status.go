package billing

// ===============================
// Invoice Status
// ===============================

type Status string

const (
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
	StatusVoid   Status = "void"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusUnpaid, StatusPaid, StatusVoid:
		return true
	}
	return false
}
