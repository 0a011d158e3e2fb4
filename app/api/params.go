package api

import (
	"net/http"
	"strconv"
)

// PathID parses the named route parameter as an entity id. A value that
// is not a positive integer cannot match any row, so callers treat a
// false return as not found.
func PathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
