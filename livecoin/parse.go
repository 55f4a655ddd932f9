package livecoin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// apiFloat tolerates the exchange's mixed numeric encoding: the same field
// may arrive as a JSON number, a quoted decimal string, or null.
type apiFloat float64

func (f *apiFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse %q as float: %w", s, err)
		}
		*f = apiFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = apiFloat(v)
	return nil
}

// orZero dereferences an optional numeric field with a fallback.
func orZero(f *apiFloat, fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return float64(*f)
}
