package car

import "strings"

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusRented    Status = "RENTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented:
		return true
	default:
		return false
	}
}

// ParseStatus accepts any letter case.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
