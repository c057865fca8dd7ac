package handlers

import (
	"strings"
	"time"

	"github.com/quickchance/quickchance-backend/pkg/validation"
)

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate accepts RFC 3339 timestamps and bare calendar dates (taken as
// midnight UTC). A nil or blank value yields nil.
func parseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, &validation.Error{Fields: map[string]string{field: "must be a date (YYYY-MM-DD or RFC 3339)"}}
}
