package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParseBoolQuery parses a boolean query parameter. On a malformed value it
// writes a 400 response and returns false in the second result.
func ParseBoolQuery(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string) (bool, bool) {
	value := r.URL.Query().Get(key)
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s value: %s", key, value))
		return false, false
	}
	return boolValue, true
}
