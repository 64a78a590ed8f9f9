package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSON writes payload as the response body. The catalog endpoints return
// flat objects ({"services": [...]}, {"service": {...}}) rather than a
// common envelope; the admin frontend depends on those exact shapes.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// Error writes the standard {"error": message} body.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
