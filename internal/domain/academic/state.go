package domain

import "fmt"

// ValidateStatusTransition enforces the registration lifecycle:
// UPCOMING -> ONGOING -> ENDED, forward only, ENDED terminal.
func ValidateStatusTransition(from, to RegistrationStatus) error {
	switch from {
	case RegistrationUpcoming:
		if to != RegistrationOngoing {
			return fmt.Errorf("can only move from %s to %s", RegistrationUpcoming, RegistrationOngoing)
		}
	case RegistrationOngoing:
		if to != RegistrationEnded {
			return fmt.Errorf("can only move from %s to %s", RegistrationOngoing, RegistrationEnded)
		}
	case RegistrationEnded:
		return fmt.Errorf("registration has ended, no further status change is allowed")
	default:
		return fmt.Errorf("unknown registration status: %s", from)
	}
	return nil
}

// IsValidStatus reports whether s is one of the known registration statuses
func IsValidStatus(s RegistrationStatus) bool {
	switch s {
	case RegistrationUpcoming, RegistrationOngoing, RegistrationEnded:
		return true
	}
	return false
}
