package coerce_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/confspec/coerce"
)

func TestString(t *testing.T) {
	v, err := coerce.String("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = coerce.String("")
	assert.EqualError(t, err, "no value specified")
}

func TestInteger(t *testing.T) {
	v, err := coerce.Integer("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = coerce.Integer("-7")
	require.NoError(t, err)
	assert.Equal(t, int64(-7), v)

	_, err = coerce.Integer("1.5")
	assert.Error(t, err, "fractional numbers must be rejected")
	_, err = coerce.Integer("abc")
	assert.Error(t, err)
	_, err = coerce.Integer("")
	assert.Error(t, err)
}

func TestIntegerBase(t *testing.T) {
	hex := coerce.IntegerBase(16)
	v, err := hex("ff")
	require.NoError(t, err)
	assert.Equal(t, int64(255), v)

	oct := coerce.IntegerBase(8)
	v, err = oct("644")
	require.NoError(t, err)
	assert.Equal(t, int64(420), v)
}

func TestFloat(t *testing.T) {
	v, err := coerce.Float("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = coerce.Float("nope")
	assert.Error(t, err)
}

func TestBoolean(t *testing.T) {
	for text, want := range map[string]bool{
		"true": true, "TRUE": true, "True": true,
		"false": false, "FALSE": false, "False": false,
	} {
		v, err := coerce.Boolean(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, v, text)
	}

	_, err := coerce.Boolean("yes")
	assert.Error(t, err)
	_, err = coerce.Boolean("")
	assert.Error(t, err)
}

func TestPercent(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"0%", 0.0},
		{"100%", 1.0},
		{"37.1%", 0.371},
		{"44%", 0.44},
	}
	for _, tc := range cases {
		v, err := coerce.Percent(tc.text)
		require.NoError(t, err, tc.text)
		assert.InDelta(t, tc.want, v, 1e-9, tc.text)
	}

	_, err := coerce.Percent("101%")
	assert.EqualError(t, err, "percentage is out of valid range")
	_, err = coerce.Percent("-1%")
	assert.Error(t, err)
	_, err = coerce.Percent("37")
	assert.EqualError(t, err, "the value is not a percentage")
	_, err = coerce.Percent("x%")
	assert.Error(t, err)
}

func TestTimespan(t *testing.T) {
	cases := []struct {
		text string
		want time.Duration
	}{
		{"0 seconds", 0},
		{"1 second", time.Second},
		{"500 milliseconds", 500 * time.Millisecond},
		{"2 minutes", 2 * time.Minute},
		{"1 hour", time.Hour},
		{"3 days", 72 * time.Hour},
	}
	for _, tc := range cases {
		v, err := coerce.Timespan(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, v, tc.text)
	}

	_, err := coerce.Timespan("3")
	assert.EqualError(t, err, "invalid specification")
	_, err = coerce.Timespan("3 days ago")
	assert.EqualError(t, err, "invalid specification")
	_, err = coerce.Timespan("x days")
	assert.Error(t, err)
	_, err = coerce.Timespan("3 fortnights")
	assert.EqualError(t, err, "unknown unit")
	_, err = coerce.Timespan("1.5 hours")
	assert.Error(t, err, "fractional counts must be rejected")
}

func TestBase64(t *testing.T) {
	v, err := coerce.Base64("aHVudGVyMg==")
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), v)

	_, err = coerce.Base64("")
	assert.EqualError(t, err, "expected base64 encoded data")
	_, err = coerce.Base64("x")
	assert.Error(t, err)
}
