package handlers

import (
	"net/http"

	"github.com/skmobile/csc-center-api/internal/http/respond"
)

// MethodNotAllowed is the shared 405 responder. chi subrouters do not
// inherit the parent's handler when they are mounted before it is set, so
// each entity route group installs this explicitly.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
