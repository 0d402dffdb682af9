package shared

import (
	"net/http"
	"strconv"
)

// ParsePage reads the 1-indexed "page" query parameter. Missing, garbage or
// non-positive values fall back to page 1.
func ParsePage(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
