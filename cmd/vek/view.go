package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/vek/pkg/anim"
	"github.com/taigrr/vek/pkg/math3d"
	"github.com/taigrr/vek/pkg/models"
	"github.com/taigrr/vek/pkg/render"
)

// canvas holds the terminal size flags shared by the plotting commands.
type canvas struct {
	cols, rows int
	png        string
}

func (c *canvas) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&c.cols, "cols", 80, "Output width in terminal columns")
	cmd.Flags().IntVar(&c.rows, "rows", 30, "Output height in terminal rows")
	cmd.Flags().StringVar(&c.png, "png", "", "Also save the frame as a PNG file")
}

func (c *canvas) validate() error {
	if c.cols <= 0 {
		return fmt.Errorf("--cols must be positive, got %d", c.cols)
	}
	if c.rows <= 0 {
		return fmt.Errorf("--rows must be positive, got %d", c.rows)
	}
	return nil
}

// output prints fb and writes the optional PNG.
func (c *canvas) output(cmd *cobra.Command, fb *render.Framebuffer) error {
	fmt.Fprintln(cmd.OutOrStdout(), fb.Render())
	if c.png == "" {
		return nil
	}
	return fb.SavePNG(c.png)
}

var background = render.RGB(20, 20, 28)

func newSphereCmd(cfg *config) *cobra.Command {
	var (
		cv     canvas
		points int
	)
	cmd := &cobra.Command{
		Use:   "sphere",
		Short: "Plot random unit directions",
		Long:  "Scatter uniformly random unit directions over a sphere and plot them, shaded by depth, in the terminal.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cv.validate(); err != nil {
				return err
			}
			if points < 0 {
				return fmt.Errorf("--points must not be negative, got %d", points)
			}
			fb := render.ForTerminal(cv.cols, cv.rows)
			fb.Clear(background)

			cam := render.NewCamera()
			p := render.NewPlotter(cam, fb)
			cam.Orbit(math3d.Zero3(), math3d.Spherical{Radius: 3, Phi: math.Pi / 3, Theta: math.Pi / 4})
			p.Near, p.Far = render.ColorWhite, render.RGB(40, 60, 120)

			src := cfg.source()
			cloud := make([]*math3d.Vector3, points)
			for i := range cloud {
				cloud[i] = math3d.NewVector3().RandomDirectionWith(src)
			}
			p.DrawAxes(1.5)
			drawn := p.PlotAll(cloud, render.ColorWhite)
			cfg.logger.DebugContext(cmd.Context(), "sphere plotted", "points", points, "drawn", drawn)

			return cv.output(cmd, fb)
		},
	}
	cv.bind(cmd)
	cmd.Flags().IntVarP(&points, "points", "n", 2000, "Number of directions")
	return cmd
}

func newInfoCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "info <model.glb|model.gltf>",
		Short: "Display model information",
		Long:  "Display vertex and triangle counts and the bounding box of a glTF model.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, cfg, args[0])
		},
	}
}

func loadModel(ctx context.Context, cfg *config, path string) (*models.Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
	mesh, err := models.NewGLTFLoader(models.WithLogger(cfg.logger)).Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return mesh, nil
}

func runInfo(cmd *cobra.Command, cfg *config, modelPath string) error {
	info, err := os.Stat(modelPath)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	mesh, err := loadModel(cmd.Context(), cfg, modelPath)
	if err != nil {
		return err
	}

	b := mesh.Bounds()
	size := mesh.Size()
	center := mesh.Center()
	ext := strings.TrimPrefix(filepath.Ext(modelPath), ".")

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "File:       %s\n", filepath.Base(modelPath))
	fmt.Fprintf(w, "Format:     %s\n", strings.ToUpper(ext))
	fmt.Fprintf(w, "Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Vertices:   %d\n", mesh.VertexCount())
	fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Bounds Min: (%.3f, %.3f, %.3f)\n", b.Min.X(), b.Min.Y(), b.Min.Z())
	fmt.Fprintf(w, "Bounds Max: (%.3f, %.3f, %.3f)\n", b.Max.X(), b.Max.Y(), b.Max.Z())
	fmt.Fprintf(w, "Dimensions: %.3f x %.3f x %.3f\n", size.X(), size.Y(), size.Z())
	fmt.Fprintf(w, "Center:     (%.3f, %.3f, %.3f)\n", center.X(), center.Y(), center.Z())
	fmt.Fprintf(w, "Radius:     %.3f\n", mesh.Radius())
	return nil
}

func newViewCmd(cfg *config) *cobra.Command {
	var (
		cv     canvas
		frames int
		spin   float64
	)
	cmd := &cobra.Command{
		Use:   "view <model.glb|model.gltf>",
		Short: "Plot a model's vertices in the terminal",
		Long: `Plot the vertices of a glTF model as a depth-shaded point cloud with
its bounding box. The camera springs from a distance into an orbit around
the model over --frames steps, spinning by --spin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cv.validate(); err != nil {
				return err
			}
			if frames < 0 {
				return fmt.Errorf("--frames must not be negative, got %d", frames)
			}
			mesh, err := loadModel(cmd.Context(), cfg, args[0])
			if err != nil {
				return err
			}
			mesh.Recenter()
			radius := max(mesh.Radius(), 1e-3)

			fb := render.ForTerminal(cv.cols, cv.rows)
			cam := render.NewCamera()
			p := render.NewPlotter(cam, fb)
			p.Near, p.Far = render.ColorCyan, render.RGB(30, 40, 90)

			const fps = 30
			orbit := math3d.Spherical{Radius: 2.5 * radius, Phi: math.Pi / 3}
			cam.Position.SetFromSpherical(orbit).MultiplyScalar(4)
			move := anim.NewSpring3(cam.Position, fps, 4, 1)
			turn := anim.NewSpin(fps)
			turn.ApplyImpulse(0, spin, 0)

			origin := math3d.Zero3()
			frameLog := cfg.logger.WithVector(cam.Position.Origin(), cam.Position.ID())
			for i := range frames {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				turn.Update()
				orbit.Theta = turn.Yaw.Angle
				move.Target.SetFromSpherical(orbit.MakeSafe())
				move.Update()
				cam.LookAt(origin)
				frameLog.DebugContext(cmd.Context(), "frame", "index", i, "camera", cam.Position.String())
			}
			if frames == 0 {
				cam.Orbit(origin, orbit)
			}

			fb.Clear(background)
			p.DrawBox(mesh.Bounds(), render.ColorGray)
			drawn := p.PlotAll(mesh.Positions, render.ColorWhite)
			cfg.logger.InfoContext(cmd.Context(), "model plotted",
				"vertices", mesh.VertexCount(),
				"drawn", drawn,
			)
			return cv.output(cmd, fb)
		},
	}
	cv.bind(cmd)
	cmd.Flags().IntVar(&frames, "frames", 60, "Animation steps before the frame is drawn")
	cmd.Flags().Float64Var(&spin, "spin", 0.05, "Initial yaw impulse in radians per frame")
	return cmd
}
