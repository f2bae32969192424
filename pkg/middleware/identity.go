package middleware

import (
	"context"
	"net/http"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// DeviceIDKey is the context key for the requesting device's identifier
	DeviceIDKey ContextKey = "device_id"

	// deviceIDHeader carries the installation id the mobile app generates
	// on first launch. Accounts and real authentication live in an external
	// identity provider; this service only needs a stable caller key for
	// logging and future per-device scoping.
	deviceIDHeader = "X-Device-ID"
)

// DeviceIdentity extracts the caller's device id into the request context.
// Requests without one are still served; the share page and local tooling
// have no device id to send.
func DeviceIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := r.Header.Get(deviceIDHeader)
		if deviceID != "" {
			ctx := context.WithValue(r.Context(), DeviceIDKey, deviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetDeviceID extracts the device id from the request context
func GetDeviceID(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDKey).(string)
	return deviceID, ok
}
