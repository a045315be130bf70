package apiclient

import (
	"fmt"
	"strings"
	"time"
)

// The platform API emits naive ISO timestamps without a zone suffix; events
// created through this front-end round-trip as RFC 3339. Accept both.
const naiveISO = "2006-01-02T15:04:05"

type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, naiveISO} {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp %q", s)
}
