package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	local := time.Date(2020, time.December, 31, 23, 30, 0, 999999999, time.FixedZone("UTC-2", -2*3600))

	normalized := NormalizeTime(local)

	assert.Equal(t, time.UTC, normalized.Location())
	assert.Equal(t, 999000000, normalized.Nanosecond())
	assert.Equal(t, "2021-01-01T01:30:00.999Z", FormatTimestamp(local))
}

func TestTypedLiteral_Time(t *testing.T) {
	t.Run("ok - offset is normalized", func(t *testing.T) {
		parsed, err := TypedLiteral{Value: "2021-01-01T02:00:00.500+01:00", Type: TypeDateTimeStamp}.Time()
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2021, time.January, 1, 1, 0, 0, 500000000, time.UTC), parsed)
	})

	t.Run("err - wrong type", func(t *testing.T) {
		_, err := TypedLiteral{Value: "2021-01-01T02:00:00Z", Type: TypeReference}.Time()
		assert.Error(t, err)
	})

	t.Run("err - not a timestamp", func(t *testing.T) {
		_, err := TypedLiteral{Value: "tomorrow", Type: TypeDateTimeStamp}.Time()
		assert.Error(t, err)
	})
}
