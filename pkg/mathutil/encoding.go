package mathutil

import (
	"fmt"
	"math"
)

// Encoding names the storage type a normalized value is quantized into.
type Encoding int

const (
	EncodingFloat32 Encoding = iota // identity passthrough
	EncodingUint32
	EncodingUint16
	EncodingUint8
	EncodingInt32
	EncodingInt16
	EncodingInt8
)

var encodingNames = map[Encoding]string{
	EncodingFloat32: "float32",
	EncodingUint32:  "uint32",
	EncodingUint16:  "uint16",
	EncodingUint8:   "uint8",
	EncodingInt32:   "int32",
	EncodingInt16:   "int16",
	EncodingInt8:    "int8",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// Signed reports whether e stores values in [-1, 1] rather than [0, 1].
func (e Encoding) Signed() bool {
	return e == EncodingInt32 || e == EncodingInt16 || e == EncodingInt8
}

// Scale returns the integer magnitude that 1.0 maps to, or 1 for float32.
func (e Encoding) Scale() (float64, error) {
	switch e {
	case EncodingFloat32:
		return 1, nil
	case EncodingUint32:
		return 4294967295, nil
	case EncodingUint16:
		return 65535, nil
	case EncodingUint8:
		return 255, nil
	case EncodingInt32:
		return 2147483647, nil
	case EncodingInt16:
		return 32767, nil
	case EncodingInt8:
		return 127, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedEncoding, e)
}

// ParseEncoding maps a name such as "int16" to its Encoding.
func ParseEncoding(name string) (Encoding, error) {
	for e, n := range encodingNames {
		if n == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

// Normalize quantizes value (in [0, 1], or [-1, 1] for signed encodings)
// to the integer range of e, rounding to the nearest step.
func Normalize(value float64, e Encoding) (float64, error) {
	scale, err := e.Scale()
	if err != nil {
		return 0, err
	}
	if e == EncodingFloat32 {
		return value, nil
	}
	return jsRound(value * scale), nil
}

// Denormalize maps a quantized integer back to a float. Signed encodings
// clamp at -1 because their integer range has one more negative step than
// positive. Unsigned encodings are not clamped.
func Denormalize(value float64, e Encoding) (float64, error) {
	scale, err := e.Scale()
	if err != nil {
		return 0, err
	}
	v := value / scale
	if e.Signed() {
		v = math.Max(v, -1)
	}
	return v, nil
}

// jsRound rounds half toward positive infinity.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}
