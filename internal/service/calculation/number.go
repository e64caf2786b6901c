package calculation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric document field. Saved documents carry numbers, numeric
// strings typed into form inputs, empty strings or null; anything that does not
// parse reads as zero.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		*n = Number(ParseNumber(s))
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		// null, booleans, objects
		*n = 0
		return nil
	}
	*n = Number(finite(f))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, n.Float(), 'f', -1, 64), nil
}

// Float returns the value, with NaN and infinities read as zero.
func (n Number) Float() float64 {
	return finite(float64(n))
}

// ParseNumber parses a form value. A comma is accepted as decimal separator.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// safeDiv returns 0 instead of dividing by zero.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return finite(a / b)
}
