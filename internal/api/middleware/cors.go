package middleware

import "net/http"

// SetCORSHeaders adds the permissive CORS headers attached to API responses.
func SetCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	h.Set("Access-Control-Max-Age", "86400")
}

// Preflight answers CORS preflight requests.
func Preflight(w http.ResponseWriter, r *http.Request) {
	SetCORSHeaders(w.Header())
	w.WriteHeader(http.StatusNoContent)
}
