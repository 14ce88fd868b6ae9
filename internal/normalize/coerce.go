package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerview/internal/model"
)

// Text renders a loosely-typed value as a string. nil becomes "".
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(x)
	}
}

// OptionalText returns the trimmed text, or nil when it is blank.
func OptionalText(v any) *string {
	s := strings.TrimSpace(Text(v))
	if s == "" {
		return nil
	}
	return &s
}

// Number coerces v to a decimal. Missing, blank, non-finite and unparsable
// values are zero.
func Number(v any) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return decimal.Zero
	case bool:
		if x {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(x)
	case json.Number:
		return parseDecimal(x.String())
	case string:
		return parseDecimal(x)
	default:
		return decimal.Zero
	}
}

func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return finite(d)
}

// Decimal exponents (of the leading digit) a float64 can represent.
const (
	maxMagnitude = 308
	minMagnitude = -324
)

// finite maps values outside float64's range to zero. Overflowing values are
// unparsable; underflowing ones round to zero.
func finite(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	digits := len(d.Coefficient().Text(10))
	if d.Sign() < 0 {
		digits--
	}
	magnitude := int64(d.Exponent()) + int64(digits) - 1
	if magnitude > maxMagnitude || magnitude < minMagnitude {
		return decimal.Zero
	}
	return d
}

// Bool coerces v to a boolean. Strings are true only when they read "true"
// in any case; numbers are true when non-zero.
func Bool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(strings.TrimSpace(x), "true")
	case json.Number:
		return !parseDecimal(x.String()).IsZero()
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return false
	}
}

var embeddedDate = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)

// Loose layouts tried after the YYYY-MM-DD forms. All are read in UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// Date normalizes v to YYYY-MM-DD. Anything that cannot be read as a real
// calendar date is absent.
func Date(v any) model.Date {
	s := strings.TrimSpace(Text(v))
	if s == "" {
		return model.NoDate
	}
	if len(s) >= 10 {
		if d, ok := model.ParseDate(s[:10]); ok {
			return d
		}
	}
	if m := embeddedDate.FindString(s); m != "" {
		if d, ok := model.ParseDate(m); ok {
			return d
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return model.DateOf(t)
		}
	}
	return model.NoDate
}
