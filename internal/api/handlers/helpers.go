// Package handlers contains the HTTP handlers of the mdchat API.
package handlers

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes bounds request bodies. Texts pasted into the workbench are
// small; anything larger is rejected before decoding.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeStatus writes the status code with its standard text as body.
func writeStatus(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(http.StatusText(status))) //nolint:errcheck
}
