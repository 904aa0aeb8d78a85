package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ppm-raytracer/internal/batch"
	"ppm-raytracer/internal/config"
	"ppm-raytracer/internal/export"
	"ppm-raytracer/internal/mathutil"
	"ppm-raytracer/internal/pixmap"
	"ppm-raytracer/internal/raytrace"
	"ppm-raytracer/internal/scene"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run renders as directed by args and returns the process exit code. Deferred
// cleanup always runs before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	// CLI flags
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to config.json file")
	sceneName := fs.String("scene", "", "Built-in scene to render (default: default)")
	output := fs.String("out", "", "Output pixmap path (default: untitled.ppm)")
	outputDir := fs.String("outdir", "", "Output directory for -all (default: renders)")
	width := fs.Int("width", 0, "Image width (default: 640)")
	height := fs.Int("height", 0, "Image height (default: 480)")
	fov := fs.Float64("fov", 0, "Vertical field of view in degrees (default: 30)")
	workers := fs.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	webp := fs.String("webp", "", "Also write a lossless WebP copy to this path")
	preview := fs.String("preview", "", "Also write a downscaled PNG preview to this path")
	all := fs.Bool("all", false, "Render every built-in scene into -outdir")
	list := fs.Bool("list", false, "List built-in scenes and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, name := range scene.PresetNames() {
			sc, _ := scene.Preset(name)
			fmt.Fprintf(stdout, "%-12s %d primitives, %d lights\n", name, sc.Len(), len(sc.Lights()))
		}
		return 0
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Scene:         *sceneName,
		Output:        *output,
		OutputDir:     *outputDir,
		WebPOutput:    *webp,
		PreviewOutput: *preview,
		Width:         *width,
		Height:        *height,
		FOV:           float32(*fov),
		Workers:       *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cam := raytrace.NewCamera(cfg.Width, cfg.Height, cfg.FOV)
	cam.Basis = mathutil.Orientation(cfg.Yaw, cfg.Pitch, cfg.Roll)
	logger := log.New(stdout, "", 0)
	p := message.NewPrinter(language.English)

	if *all {
		return renderAll(ctx, cfg, cam, logger, p, stdout, stderr)
	}

	sc, err := scene.Preset(cfg.Scene)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	p.Fprintf(stdout, "Scene: %s (%d primitives, %d lights)\n", sc.Name, sc.Len(), len(sc.Lights()))
	p.Fprintf(stdout, "Image: %dx%d, FOV %g°, Workers: %d\n", cfg.Width, cfg.Height, cfg.FOV, cfg.Workers)

	img, err := raytrace.Render(ctx, sc, cam, raytrace.Options{
		Workers:          cfg.Workers,
		Logger:           logger,
		ProgressInterval: cfg.ProgressInterval(),
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: render: %v\n", err)
		return 1
	}
	defer img.Release()

	if err := pixmap.WriteFile(cfg.Output, img.Width, img.Height, img.Pix); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	p.Fprintf(stdout, "Wrote %s (%d pixels)\n", cfg.Output, img.Width*img.Height)

	if cfg.WebPOutput == "" && cfg.PreviewOutput == "" {
		return 0
	}
	nrgba := pixmap.ToNRGBA(img.Width, img.Height, img.Pix)
	if cfg.WebPOutput != "" {
		if err := export.WriteWebP(cfg.WebPOutput, nrgba); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "WebP: %s\n", cfg.WebPOutput)
	}
	if cfg.PreviewOutput != "" {
		if err := export.WritePNG(cfg.PreviewOutput, export.Preview(nrgba, cfg.PreviewSize)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Preview: %s\n", cfg.PreviewOutput)
	}
	return 0
}

func renderAll(ctx context.Context, cfg config.Config, cam raytrace.Camera, logger *log.Logger, p *message.Printer, stdout, stderr io.Writer) int {
	names := scene.PresetNames()

	p.Fprintf(stdout, "Scenes: %d, Workers: %d, Image: %dx%d\n", len(names), cfg.Workers, cfg.Width, cfg.Height)
	fmt.Fprintf(stdout, "Output: %s\n", cfg.OutputDir)
	fmt.Fprintln(stdout, "------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(ctx, batch.Config{
		OutputDir:        cfg.OutputDir,
		Camera:           cam,
		WebP:             cfg.WebPOutput != "",
		Workers:          cfg.Workers,
		Logger:           logger,
		ProgressInterval: cfg.ProgressInterval(),
	}, names)

	fmt.Fprintln(stdout, "------------------------------------------------------------")
	fmt.Fprintf(stdout, "Done in %.1fs\n", time.Since(start).Seconds())

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
		}
	}
	p.Fprintf(stdout, "Rendered: %d/%d (%d pixels)\n", success, len(names), success*cfg.Width*cfg.Height)

	if failed > 0 {
		fmt.Fprintf(stdout, "\nFailed (%d):\n", failed)
		for _, r := range results {
			if !r.Success {
				fmt.Fprintf(stdout, "  %s: %s\n", r.Name, r.Error)
			}
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, cfg.Width, cfg.Height, results); err != nil {
		fmt.Fprintf(stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Fprintf(stdout, "Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
