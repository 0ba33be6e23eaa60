package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/vek/pkg/math3d"
	"github.com/taigrr/vek/pkg/mathutil"
)

func newUUIDCmd(cfg *config) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Print version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := cfg.source()
			for range count {
				fmt.Fprintln(cmd.OutOrStdout(), mathutil.UUIDFrom(src))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs")
	return cmd
}

func newRandCmd(cfg *config) *cobra.Command {
	var (
		count     int
		dim       int
		direction bool
	)
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print random vectors",
		Long:  "Print vectors with components uniform in [0, 1), or unit directions uniform on the sphere with --direction.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if direction && dim != 3 {
				return fmt.Errorf("--direction needs --dim 3, got %d", dim)
			}
			src := cfg.source()
			for range count {
				var v fmt.Stringer
				switch dim {
				case 2:
					v = math3d.NewVector2().RandomWith(src)
				case 3:
					if direction {
						v = math3d.NewVector3().RandomDirectionWith(src)
					} else {
						v = math3d.NewVector3().RandomWith(src)
					}
				case 4:
					v = math3d.NewVector4().RandomWith(src)
				default:
					return fmt.Errorf("unsupported dimension %d (use 2, 3 or 4)", dim)
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of vectors")
	cmd.Flags().IntVar(&dim, "dim", 3, "Vector dimension (2, 3 or 4)")
	cmd.Flags().BoolVar(&direction, "direction", false, "Unit directions instead of the unit cube")
	return cmd
}

func newQuantizeCmd() *cobra.Command {
	var (
		encoding string
		decode   bool
	)
	cmd := &cobra.Command{
		Use:   "quantize <value>...",
		Short: "Quantize normalized values to an integer encoding",
		Long: `Quantize values in [0, 1] (or [-1, 1] for signed encodings) to the
integer range of an encoding, or map integers back with --decode.

Encodings: float32, uint32, uint16, uint8, int32, int16, int8.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := mathutil.ParseEncoding(encoding)
			if err != nil {
				return err
			}
			convert := mathutil.Normalize
			if decode {
				convert = mathutil.Denormalize
			}
			for _, arg := range args {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("parse value %q: %w", arg, err)
				}
				out, err := convert(value, enc)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", arg, out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&encoding, "encoding", "e", "uint8", "Target encoding")
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Map quantized integers back to floats")
	return cmd
}

func newAxisAngleCmd() *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "axis-angle <x> <y> <z>",
		Short: "Convert Euler angles in degrees to axis-angle form",
		Long: `Convert Euler angles (degrees) to a rotation axis and angle, both
through the quaternion and through the rotation matrix.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOrder(order)
			if err != nil {
				return err
			}
			var deg [3]float64
			for i, arg := range args {
				if deg[i], err = strconv.ParseFloat(arg, 64); err != nil {
					return fmt.Errorf("parse angle %q: %w", arg, err)
				}
			}

			e := math3d.Euler{
				X:     mathutil.DegToRad(deg[0]),
				Y:     mathutil.DegToRad(deg[1]),
				Z:     mathutil.DegToRad(deg[2]),
				Order: o,
			}
			q := math3d.QuatFromEuler(e)
			fromQuat := math3d.NewVector4().SetAxisAngleFromQuaternion(q)
			fromMat := math3d.NewVector4().SetAxisAngleFromRotationMatrix(math3d.FromQuat(q))

			out := cmd.OutOrStdout()
			printAxisAngle(out, "quaternion", fromQuat)
			printAxisAngle(out, "matrix", fromMat)
			return nil
		},
	}
	cmd.Flags().StringVar(&order, "order", "XYZ", "Rotation order (XYZ, YXZ, ZXY, ZYX, YZX, XZY)")
	return cmd
}

func printAxisAngle(w io.Writer, label string, v *math3d.Vector4) {
	fmt.Fprintf(w, "%-11s axis (%.6f, %.6f, %.6f)  angle %.4f°\n",
		label+":", v.X(), v.Y(), v.Z(), mathutil.RadToDeg(v.W()))
}

func parseOrder(s string) (math3d.EulerOrder, error) {
	for o := math3d.OrderXYZ; o <= math3d.OrderXZY; o++ {
		if strings.EqualFold(o.String(), s) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown rotation order %q", s)
}
