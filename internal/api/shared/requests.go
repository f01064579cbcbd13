package shared

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DecodeJSON decodes the request body into dst, rejecting unknown fields so
// misspelled inputs fail loudly instead of silently defaulting to zero.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}
