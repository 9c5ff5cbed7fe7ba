package httpapi

import (
	"encoding/json"
	"net/http"
)

// Every route answers a `{ success: bool, ... }` envelope; failures carry a
// non-2xx status and the upstream (or local) error text.

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": message})
}

func writeOK(w http.ResponseWriter, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	_ = json.NewEncoder(w).Encode(body)
}
