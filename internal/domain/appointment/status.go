package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "PROGRAMADA"
	StatusCompleted Status = "COMPLETADA"
	StatusCancelled Status = "CANCELADA"
	StatusNoShow    Status = "NO_ASISTIO"
)

// All known statuses. Any value may replace any other value: the
// lifecycle is a flat enumeration, transitions are not guarded.
func AllStatuses() []Status {
	return []Status{
		StatusScheduled,
		StatusCompleted,
		StatusCancelled,
		StatusNoShow,
	}
}

func IsValidStatus(s string) bool {
	for _, st := range AllStatuses() {
		if s == string(st) {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusScheduled
}
