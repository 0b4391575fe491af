package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidBSSID(t *testing.T) {
	valid := []string{"AA:BB:CC:DD:EE:FF", "aa:bb:cc:dd:ee:01", "02-15-B2-00-01-00"}
	invalid := []string{"", "AA:BB:CC:DD:EE", "AA:BB:CC:DD:EE:FF:00", "GG:BB:CC:DD:EE:FF", "AABBCCDDEEFF"}
	for _, bssid := range valid {
		if !IsValidBSSID(bssid) {
			t.Errorf("IsValidBSSID(%q) = false, want true", bssid)
		}
	}
	for _, bssid := range invalid {
		if IsValidBSSID(bssid) {
			t.Errorf("IsValidBSSID(%q) = true, want false", bssid)
		}
	}
}

func TestIsValidLatitude(t *testing.T) {
	valid := []float64{0, 90, -90, 20.6597}
	invalid := []float64{90.1, -90.1, 180}
	for _, lat := range valid {
		if !IsValidLatitude(lat) {
			t.Errorf("IsValidLatitude(%v) = false, want true", lat)
		}
	}
	for _, lat := range invalid {
		if IsValidLatitude(lat) {
			t.Errorf("IsValidLatitude(%v) = true, want false", lat)
		}
	}
}

func TestIsValidLongitude(t *testing.T) {
	valid := []float64{0, 180, -180, -103.3496}
	invalid := []float64{180.1, -180.1}
	for _, lng := range valid {
		if !IsValidLongitude(lng) {
			t.Errorf("IsValidLongitude(%v) = false, want true", lng)
		}
	}
	for _, lng := range invalid {
		if IsValidLongitude(lng) {
			t.Errorf("IsValidLongitude(%v) = true, want false", lng)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-01-01", "2000-12-31"}
	invalid := []string{"", "2026-13-01", "2026-01-32", "01-01-2026", "2026/01/01"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "07:00", "23:59"}
	invalid := []string{"", "24:00", "12:60", "7am", "12-30"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"admin", "supervisor", "teacher"}
	if !IsInSlice("admin", roles) {
		t.Error("IsInSlice(admin) = false, want true")
	}
	if IsInSlice("owner", roles) {
		t.Error("IsInSlice(owner) = true, want false")
	}
}
