// Package main provides dockview, a headless renderer for panel layout
// scenes. It loads a scripted scene, drives the layout frame by frame,
// and writes each frame as a PNG, optionally serving layout snapshots
// over HTTP while it runs.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/go-drift/dock/cmd/dockview/internal/scene"
	dockerrors "github.com/go-drift/dock/pkg/errors"
	"github.com/go-drift/dock/pkg/geometry"
	"github.com/go-drift/dock/pkg/input"
	"github.com/go-drift/dock/pkg/inspect"
	"github.com/go-drift/dock/pkg/paint"
	"github.com/go-drift/dock/pkg/panel"
	"github.com/go-drift/dock/pkg/raster"
	"github.com/go-drift/dock/pkg/style"
	"github.com/go-drift/dock/pkg/ui"
)

// rowHeight is the height of a placeholder content row.
const rowHeight = 18.0

// backdrop shows through wherever no panel painted.
var backdrop = paint.Gray(8)

type options struct {
	scenePath string
	outDir    string
	serveAddr string
	help      bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dockview: %v\n\n", err)
		printUsage()
		os.Exit(2)
	}
	if opts.help {
		printUsage()
		return
	}

	sc, err := scene.Load(opts.scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dockview: %v\n", err)
		os.Exit(1)
	}

	ctx := ui.NewContext()
	if sc.Style != "" {
		st, err := style.Load(resolvePath(opts.scenePath, sc.Style))
		if err != nil {
			fmt.Fprintf(os.Stderr, "dockview: %v\n", err)
			os.Exit(1)
		}
		ctx.SetStyle(st)
	}

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "dockview: failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	var latest inspect.Latest
	if opts.serveAddr != "" {
		srv := inspect.NewServer(latest.Load)
		port, err := srv.Start(opts.serveAddr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dockview: %v\n", err)
			os.Exit(1)
		}
		defer srv.Close()
		fmt.Printf("Serving layout snapshots on http://localhost:%d/layout\n", port)
	}

	screen := geometry.RectFromLTWH(0, 0, float64(sc.Window.Width), float64(sc.Window.Height))
	canvas := raster.NewCanvas(sc.Window.Width, sc.Window.Height)

	prevDown := false
	for i, frame := range sc.Frames {
		in := frameInput(screen, frame, prevDown)
		prevDown = in.Pointer.Down

		renderFrame(ctx, sc, in, canvas)
		latest.Store(inspect.Capture(ctx))

		if err := writeFrame(opts.outDir, i, canvas.Image()); err != nil {
			fmt.Fprintf(os.Stderr, "dockview: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Rendered %d frames to %s\n", len(sc.Frames), opts.outDir)

	if opts.serveAddr != "" {
		fmt.Println("Holding for snapshot queries (Ctrl+C to stop)...")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
	}
}

func parseArgs(args []string) (options, error) {
	opts := options{outDir: "frames"}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help", "help":
			opts.help = true
		case "--scene":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--scene requires a file path")
			}
			opts.scenePath = args[i+1]
			i++
		case "--out":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--out requires a directory path")
			}
			opts.outDir = args[i+1]
			i++
		case "--serve":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--serve requires an address")
			}
			opts.serveAddr = args[i+1]
			i++
		default:
			switch {
			case strings.HasPrefix(args[i], "--scene="):
				opts.scenePath = strings.TrimPrefix(args[i], "--scene=")
			case strings.HasPrefix(args[i], "--out="):
				opts.outDir = strings.TrimPrefix(args[i], "--out=")
			case strings.HasPrefix(args[i], "--serve="):
				opts.serveAddr = strings.TrimPrefix(args[i], "--serve=")
			default:
				return opts, fmt.Errorf("unknown argument %q", args[i])
			}
		}
	}
	if !opts.help && opts.scenePath == "" {
		return opts, fmt.Errorf("--scene is required")
	}
	return opts, nil
}

func printUsage() {
	fmt.Println("dockview renders a scripted panel scene to PNG frames.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dockview --scene FILE [--out DIR] [--serve ADDR]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --scene FILE    Scene file to render (required)")
	fmt.Println("  --out DIR       Output directory for PNG frames (default: frames)")
	fmt.Println("  --serve ADDR    Serve layout snapshots over HTTP, e.g. localhost:8734")
	fmt.Println("  -h, --help      Show this help")
}

// frameInput converts one scripted frame to an input snapshot. The press
// edge fires only on the first frame the button is down.
func frameInput(screen geometry.Rect, frame scene.FrameConfig, prevDown bool) input.State {
	in := input.State{ScreenRect: screen}
	if frame.Pointer != nil {
		in.Pointer.Position = geometry.Offset{X: frame.Pointer.X, Y: frame.Pointer.Y}
		in.Pointer.Known = true
		in.Pointer.Down = frame.Pointer.Down
		in.Pointer.Pressed = frame.Pointer.Down && !prevDown
	}
	return in
}

// renderFrame runs one frame and rasters its display list. A panic while
// declaring panels is reported and leaves the frame blank.
func renderFrame(ctx *ui.Context, sc *scene.Scene, in input.State, canvas *raster.Canvas) {
	defer dockerrors.Recover("dockview.renderFrame")

	ctx.BeginFrame(in)
	declarePanels(ctx, sc)
	out := ctx.EndFrame()

	canvas.Clear(backdrop)
	out.Shapes.Replay(canvas)
}

// declarePanels shows the scene's panels in declaration order.
func declarePanels(ctx *ui.Context, sc *scene.Scene) {
	for _, p := range sc.Panels {
		switch p.Kind {
		case scene.KindLeft:
			sp := panel.Left(p.ID)
			if p.DefaultWidth != nil {
				sp = sp.WithDefaultWidth(*p.DefaultWidth)
			}
			if p.MinWidth != nil {
				sp = sp.WithMinWidth(*p.MinWidth)
			}
			if p.MaxWidth != nil {
				sp = sp.WithMaxWidth(*p.MaxWidth)
			}
			if p.Resizable != nil {
				sp = sp.WithResizable(*p.Resizable)
			}
			rows := p.Rows
			sp.Show(ctx, func(r *ui.Region) {
				sidebarContent(r, rows)
			})
		case scene.KindTop:
			tp := panel.Top(p.ID)
			if p.MaxHeight != nil {
				tp = tp.WithMaxHeight(*p.MaxHeight)
			}
			tp.Show(ctx, stripContent)
		case scene.KindCentral:
			panel.Central().Show(ctx, centralContent)
		}
	}
}

// sidebarContent claims the panel's full width and paints placeholder
// rows, standing in for a file tree or tool list.
func sidebarContent(r *ui.Region, rows int) {
	r.SetMinWidth(r.MaxRect().Width())
	if rows <= 0 {
		rows = 6
	}
	for i := 0; i < rows; i++ {
		rect := r.Allocate(geometry.Size{Width: r.MaxRect().Width(), Height: rowHeight})
		r.Painter().RectFilled(rect, paint.Gray(70))
	}
}

// stripContent claims the strip's full height and paints a placeholder
// menu block.
func stripContent(r *ui.Region) {
	r.SetMinHeight(r.MaxRect().Height())
	inner := r.MaxRect()
	r.Painter().RectFilled(
		geometry.RectFromLTWH(inner.Left, inner.Top, 120, inner.Height()),
		paint.Gray(70),
	)
}

// centralContent paints an outlined placeholder document area.
func centralContent(r *ui.Region) {
	inner := r.MaxRect().Shrink(geometry.InsetsAll(24))
	if inner.IsEmpty() {
		return
	}
	r.Painter().Rect(inner, paint.Gray(35), paint.Stroke{Width: 1, Color: paint.Gray(60)})
}

// resolvePath resolves a scene-relative path.
func resolvePath(scenePath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(scenePath), p)
}

func writeFrame(dir string, index int, img *image.RGBA) error {
	path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", index))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
