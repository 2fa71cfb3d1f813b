package document

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a quantity, rate, or monetary value. Canonically a float64;
// the JSON boundary accepts either a number or a numeric string, since
// documents written by older clients stored both forms interchangeably.
type Amount float64

// ParseAmount converts user input into an Amount. Empty input is zero.
// Non-numeric and non-finite values are rejected rather than coerced to zero.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount %q is not finite", s)
	}

	return Amount(f), nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}

// String renders the amount with two decimals.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*a = 0
		return nil
	}

	s := string(b)
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("unquoting amount %s: %w", s, err)
		}

		s = unquoted
	}

	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
