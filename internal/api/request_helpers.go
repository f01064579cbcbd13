package api

import (
	"net/http"

	"github.com/intellihealth/api/internal/api/shared"
	"github.com/intellihealth/api/internal/service"
)

// getSession extracts the authenticated assessment session from the request
// context, where the authentication middleware placed it.
func getSession(r *http.Request) (*service.Session, bool) {
	sess, ok := r.Context().Value(shared.SessionContextKey).(*service.Session)
	return sess, ok
}
