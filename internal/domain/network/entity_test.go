package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRegistry() []AuthorizedNetwork {
	return []AuthorizedNetwork{
		{ID: "n1", Name: "Staff Room", SSID: "CAMPUS_WIFI", BSSID: "AA:BB:CC:DD:EE:01", Active: true},
		{ID: "n2", Name: "Front Office", SSID: "CAMPUS_WIFI", BSSID: "AA:BB:CC:DD:EE:02", Active: true},
		{ID: "n3", Name: "Old AP", SSID: "CAMPUS_LEGACY", BSSID: "AA:BB:CC:DD:EE:03", Active: false},
	}
}

func TestAuthorizeByBSSID(t *testing.T) {
	ok, matched := Authorize("SOME_OTHER_SSID", "AA:BB:CC:DD:EE:02", testRegistry())
	assert.True(t, ok)
	assert.Equal(t, "n2", matched.ID, "BSSID match must win even when the SSID does not match")
}

func TestAuthorizeBSSIDCaseInsensitive(t *testing.T) {
	ok, matched := Authorize("", "aa:bb:cc:dd:ee:01", testRegistry())
	assert.True(t, ok)
	assert.Equal(t, "n1", matched.ID)
}

func TestAuthorizeSSIDFallback(t *testing.T) {
	ok, matched := Authorize("CAMPUS_WIFI", "FF:FF:FF:FF:FF:FF", testRegistry())
	assert.True(t, ok, "unknown BSSID should fall back to SSID matching")
	assert.Equal(t, "CAMPUS_WIFI", matched.SSID)
}

func TestAuthorizeEmptyClaims(t *testing.T) {
	ok, matched := Authorize("", "", testRegistry())
	assert.False(t, ok)
	assert.Nil(t, matched)
}

func TestAuthorizeInactiveNetwork(t *testing.T) {
	ok, matched := Authorize("CAMPUS_LEGACY", "AA:BB:CC:DD:EE:03", testRegistry())
	assert.False(t, ok, "inactive rows must never authorize")
	assert.Nil(t, matched)
}

func TestAuthorizeEmptyRegistry(t *testing.T) {
	ok, matched := Authorize("CAMPUS_WIFI", "AA:BB:CC:DD:EE:01", nil)
	assert.False(t, ok)
	assert.Nil(t, matched)
}

func TestNormalizeBSSID(t *testing.T) {
	assert.Equal(t, "AA:BB:CC:DD:EE:01", NormalizeBSSID(" aa:bb:cc:dd:ee:01 "))
	assert.Equal(t, "AA:BB:CC:DD:EE:01", NormalizeBSSID("aa-bb-cc-dd-ee-01"))
	assert.Equal(t, "", NormalizeBSSID("   "))
}

func TestAuthorizeBSSIDDashSeparated(t *testing.T) {
	ok, matched := Authorize("", "aa-bb-cc-dd-ee-02", testRegistry())
	assert.True(t, ok, "dash-separated claims identify the same access point")
	assert.Equal(t, "n2", matched.ID)
}
