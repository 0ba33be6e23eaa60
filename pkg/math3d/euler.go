package math3d

// EulerOrder is the order the three axis rotations are applied in.
type EulerOrder int

const (
	OrderXYZ EulerOrder = iota
	OrderYXZ
	OrderZXY
	OrderZYX
	OrderYZX
	OrderXZY
)

func (o EulerOrder) String() string {
	switch o {
	case OrderYXZ:
		return "YXZ"
	case OrderZXY:
		return "ZXY"
	case OrderZYX:
		return "ZYX"
	case OrderYZX:
		return "YZX"
	case OrderXZY:
		return "XZY"
	}
	return "XYZ"
}

// Euler holds three rotation angles in radians.
type Euler struct {
	X, Y, Z float64
	Order   EulerOrder
}

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// ColorFromHex unpacks 0xRRGGBB.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
	}
}
