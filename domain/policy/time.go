package policy

import (
	"fmt"
	"time"

	"github.com/nuts-foundation/nuts-contract-service/domain"
)

// TimestampLayout is the canonical representation of time literals: UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// NormalizeTime converts t to UTC and truncates it to milliseconds.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FormatTimestamp returns the canonical string form of t.
func FormatTimestamp(t time.Time) string {
	return NormalizeTime(t).Format(TimestampLayout)
}

// TimestampLiteral wraps t in an xsd:dateTimeStamp literal.
func TimestampLiteral(t time.Time) TypedLiteral {
	return TypedLiteral{Value: FormatTimestamp(t), Type: TypeDateTimeStamp}
}

// Time parses the literal as timestamp. Any RFC 3339 offset is accepted, the result is normalized.
func (l TypedLiteral) Time() (time.Time, error) {
	if l.Type != TypeDateTimeStamp {
		return time.Time{}, fmt.Errorf("%w: literal of type %q is not a timestamp", domain.ErrInvalidOperand, l.Type)
	}
	t, err := time.Parse(time.RFC3339Nano, l.Value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidOperand, err)
	}
	return NormalizeTime(t), nil
}

// AddDuration returns the normalized t + d. Negative durations are rejected.
func AddDuration(t time.Time, d time.Duration) (time.Time, error) {
	if d < 0 {
		return time.Time{}, fmt.Errorf("%w: negative duration %s", domain.ErrInvalidOperand, d)
	}
	return NormalizeTime(t).Add(d), nil
}
