package network

import "errors"

var (
	ErrNetworkNotFound = errors.New("authorized network not found")
	ErrBSSIDExists     = errors.New("bssid already registered")

	// ErrNetworkUnauthorized rejects a registration attempt made from an
	// unrecognized network. Nothing is persisted in that case.
	ErrNetworkUnauthorized = errors.New("network is not authorized for attendance registration")
)
