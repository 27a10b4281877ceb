package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "+923012345678", Normalize("+92 301 234-5678"))
	assert.Equal(t, "03012345678", Normalize("0301 234 5678"))
	assert.Equal(t, "+12015550123", Normalize("+1 (201) 555-0123"))
	assert.Equal(t, "", Normalize(""))
	// A plus anywhere but the front is noise.
	assert.Equal(t, "+4912345", Normalize("+49+123-45"))
}

func TestMatch_PrefersLongestCallingCode(t *testing.T) {
	// +880 (Bangladesh) must win over any shorter prefix.
	c, ok := Match("+8801812345678")
	require.True(t, ok)
	assert.Equal(t, "BD", c.ISO)
}

func TestMatch_NoCountry(t *testing.T) {
	_, ok := Match("03012345678")
	assert.False(t, ok)
}

func TestByISO(t *testing.T) {
	c, ok := ByISO("pk")
	require.True(t, ok)
	assert.Equal(t, "+92", c.CallingCode)

	_, ok = ByISO("ZZ")
	assert.False(t, ok)
}

func TestFormat_SlotsDigitsIntoExampleGrouping(t *testing.T) {
	// Pakistan example is "301 2345678".
	assert.Equal(t, "+92 301 2345678", Format("+923012345678"))
}

func TestFormat_PartialNumber(t *testing.T) {
	assert.Equal(t, "+92 301 23", Format("+9230123"))
}

func TestFormat_OverflowDigitsAppended(t *testing.T) {
	assert.Equal(t, "+92 301 234567899", Format("+92301234567899"))
}

func TestFormat_UnknownCountryReturnsNormalized(t *testing.T) {
	assert.Equal(t, "0301234", Format("0301-234"))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("+923012345678"))
	assert.True(t, Valid("+92 301 234 5678"))
	assert.False(t, Valid("+92301234"))      // too short
	assert.False(t, Valid("03012345678901")) // no country code
}
