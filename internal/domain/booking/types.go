package booking

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecided reports whether the booking has left the waiting state.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
