package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		enc      Encoding
		expected float64
	}{
		{"float passthrough", 0.3, EncodingFloat32, 0.3},
		{"uint8 one", 1, EncodingUint8, 255},
		{"uint8 half", 0.5, EncodingUint8, 128},
		{"uint16 one", 1, EncodingUint16, 65535},
		{"uint32 one", 1, EncodingUint32, 4294967295},
		{"int8 one", 1, EncodingInt8, 127},
		{"int8 minus one", -1, EncodingInt8, -127},
		{"int16 half", 0.5, EncodingInt16, 16384},
		{"int32 one", 1, EncodingInt32, 2147483647},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.value, tc.enc)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDenormalize(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		enc      Encoding
		expected float64
	}{
		{"float passthrough", 0.3, EncodingFloat32, 0.3},
		{"uint8", 255, EncodingUint8, 1},
		{"uint16", 65535, EncodingUint16, 1},
		{"uint32", 4294967295, EncodingUint32, 1},
		{"int8 max", 127, EncodingInt8, 1},
		{"int16 max", 32767, EncodingInt16, 1},
		{"int32 max", 2147483647, EncodingInt32, 1},
		// The most negative integer lies below -1 and is clamped.
		{"int8 min clamps", -128, EncodingInt8, -1},
		{"int16 min clamps", -32768, EncodingInt16, -1},
		{"int32 min clamps", -2147483648, EncodingInt32, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Denormalize(tc.value, tc.enc)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-12)
		})
	}
}

// Unsigned encodings are not floored. Out-of-range input passes through
// scaled, which is the observed behavior and is kept as is.
func TestDenormalizeUnsignedNotClamped(t *testing.T) {
	got, err := Denormalize(-255, EncodingUint8)
	require.NoError(t, err)
	assert.Equal(t, -1.0, got)

	got, err = Denormalize(-510, EncodingUint8)
	require.NoError(t, err)
	assert.Equal(t, -2.0, got)
}

func TestEncodingRoundTrip(t *testing.T) {
	for _, enc := range []Encoding{EncodingUint8, EncodingUint16, EncodingInt8, EncodingInt16} {
		q, err := Normalize(0.25, enc)
		require.NoError(t, err)
		back, err := Denormalize(q, enc)
		require.NoError(t, err)
		scale, _ := enc.Scale()
		assert.InDelta(t, 0.25, back, 1/scale, enc.String())
	}
}

func TestUnsupportedEncoding(t *testing.T) {
	_, err := Normalize(1, Encoding(42))
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	_, err = Denormalize(1, Encoding(-1))
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	_, err = ParseEncoding("float16")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestParseEncoding(t *testing.T) {
	enc, err := ParseEncoding("int16")
	require.NoError(t, err)
	assert.Equal(t, EncodingInt16, enc)
	assert.True(t, enc.Signed())
	assert.False(t, EncodingUint16.Signed())
	assert.Equal(t, "Encoding(42)", Encoding(42).String())
}
