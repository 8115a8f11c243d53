package domain

import "testing"

func TestValidateStatusTransition(t *testing.T) {
	cases := []struct {
		from    RegistrationStatus
		to      RegistrationStatus
		allowed bool
	}{
		{RegistrationUpcoming, RegistrationOngoing, true},
		{RegistrationOngoing, RegistrationEnded, true},
		{RegistrationUpcoming, RegistrationEnded, false},
		{RegistrationOngoing, RegistrationUpcoming, false},
		{RegistrationEnded, RegistrationOngoing, false},
		{RegistrationEnded, RegistrationUpcoming, false},
		{RegistrationUpcoming, RegistrationUpcoming, false},
		{RegistrationOngoing, RegistrationOngoing, false},
		{RegistrationEnded, RegistrationEnded, false},
	}

	for _, tc := range cases {
		err := ValidateStatusTransition(tc.from, tc.to)
		if tc.allowed && err != nil {
			t.Errorf("Expected %s -> %s to be allowed, got %v", tc.from, tc.to, err)
		}
		if !tc.allowed && err == nil {
			t.Errorf("Expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []RegistrationStatus{RegistrationUpcoming, RegistrationOngoing, RegistrationEnded} {
		if !IsValidStatus(status) {
			t.Errorf("Expected %s to be valid", status)
		}
	}
	if IsValidStatus("ARCHIVED") {
		t.Error("Expected ARCHIVED to be invalid")
	}
}
