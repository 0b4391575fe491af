package network

import (
	"strings"
	"time"
)

// AuthorizedNetwork is a Wi-Fi network from which attendance marks are
// accepted. BSSID identifies one physical access point and is the
// authoritative key; SSID is a fallback for clients that cannot capture
// the BSSID. Several rows may share an SSID (one network, many APs).
type AuthorizedNetwork struct {
	ID          string
	Name        string
	SSID        string
	BSSID       string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeBSSID canonicalizes a BSSID to upper-case colon-separated
// form. Clients report the same access point as AA:BB:... or aa-bb-...
// depending on platform; comparisons and stored rows use one form.
func NormalizeBSSID(bssid string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(bssid), "-", ":"))
}

// Authorize resolves a claimed network identity against the active
// registry. BSSID match wins over SSID match; SSID alone is trivially
// spoofable. Empty claims never authorize.
func Authorize(claimedSSID, claimedBSSID string, registry []AuthorizedNetwork) (bool, *AuthorizedNetwork) {
	claimedBSSID = NormalizeBSSID(claimedBSSID)
	claimedSSID = strings.TrimSpace(claimedSSID)

	if claimedBSSID != "" {
		for i := range registry {
			if !registry[i].Active {
				continue
			}
			if NormalizeBSSID(registry[i].BSSID) == claimedBSSID {
				return true, &registry[i]
			}
		}
	}

	if claimedSSID != "" {
		for i := range registry {
			if !registry[i].Active {
				continue
			}
			if registry[i].SSID == claimedSSID {
				return true, &registry[i]
			}
		}
	}

	return false, nil
}
