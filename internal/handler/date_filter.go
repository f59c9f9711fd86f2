package handler

import (
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

// parseDateQuery reads an optional YYYY-MM-DD query parameter. The empty
// string means "not filtered".
func parseDateQuery(r *http.Request, key string) (string, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return "", err
	}
	return value, nil
}
