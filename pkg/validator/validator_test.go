package validator

import "testing"

func TestValidateClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "13:05", "23:59"}
	for _, v := range valid {
		if !ValidateClock(v) {
			t.Errorf("ValidateClock(%q) = false", v)
		}
	}
	invalid := []string{"24:00", "9:30", "12:60", "12:3", "noon", ""}
	for _, v := range invalid {
		if ValidateClock(v) {
			t.Errorf("ValidateClock(%q) = true", v)
		}
	}
}

func TestValidateDate(t *testing.T) {
	if !ValidateDate("2026-08-29") {
		t.Error("ValidateDate rejected a well-formed date")
	}
	for _, v := range []string{"29-08-2026", "2026/08/29", "2026-8-29", ""} {
		if ValidateDate(v) {
			t.Errorf("ValidateDate(%q) = true", v)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"+1 (555) 123-4567": "+15551234567",
		"555.123.4567":      "5551234567",
		"+15551234567":      "+15551234567",
	}
	for in, want := range cases {
		if got := FormatPhone(in); got != want {
			t.Errorf("FormatPhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if !ValidateEmail("user@example.com") {
		t.Error("ValidateEmail rejected a plain address")
	}
	for _, v := range []string{"user", "user@", "@example.com", "user@example"} {
		if ValidateEmail(v) {
			t.Errorf("ValidateEmail(%q) = true", v)
		}
	}
}
