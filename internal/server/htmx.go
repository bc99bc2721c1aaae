package server

import (
	"net/http"
	"strings"
)

// htmxRequestHeader marks requests issued by htmx for a partial update.
const htmxRequestHeader = "HX-Request"

// isHTMXRequest reports whether the request was initiated by htmx.
func isHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}
