package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"ppm-raytracer/internal/export"
	"ppm-raytracer/internal/pixmap"
	"ppm-raytracer/internal/raytrace"
	"ppm-raytracer/internal/scene"
)

// Config holds the shared settings for a batch run.
type Config struct {
	OutputDir        string
	Camera           raytrace.Camera
	WebP             bool // also write <name>.webp next to each pixmap
	Workers          int
	Logger           raytrace.Logger
	ProgressInterval time.Duration
}

// Result holds the outcome of rendering one preset.
type Result struct {
	Name       string
	Image      string
	WebP       string
	Primitives int
	Lights     int
	Success    bool
	Error      string
}

// Run renders the named presets using a worker pool. Each frame is rendered
// single-threaded so the pool owns all parallelism. Results keep the order
// of names.
func Run(ctx context.Context, cfg Config, names []string) []Result {
	total := len(names)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Logger != nil {
		interval := cfg.ProgressInterval
		if interval <= 0 {
			interval = 2 * time.Second
		}
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						cfg.Logger.Printf("  [%d/%d] %.1f scenes/sec", p, total, rate)
					}
				}
			}
		}()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Worker pool
	nameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range nameChan {
				results[idx] = renderPreset(ctx, cfg, names[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range names {
		nameChan <- i
	}
	close(nameChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

func renderPreset(ctx context.Context, cfg Config, name string) Result {
	res := Result{Name: name}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	sc, err := scene.Preset(name)
	if err != nil {
		return fail(err)
	}
	res.Primitives = sc.Len()
	res.Lights = len(sc.Lights())

	img, err := raytrace.Render(ctx, sc, cfg.Camera, raytrace.Options{Workers: 1})
	if err != nil {
		return fail(err)
	}
	defer img.Release()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fail(err)
	}

	res.Image = name + ".ppm"
	if err := pixmap.WriteFile(filepath.Join(cfg.OutputDir, res.Image), img.Width, img.Height, img.Pix); err != nil {
		return fail(err)
	}

	if cfg.WebP {
		res.WebP = name + ".webp"
		nrgba := pixmap.ToNRGBA(img.Width, img.Height, img.Pix)
		if err := export.WriteWebP(filepath.Join(cfg.OutputDir, res.WebP), nrgba); err != nil {
			return fail(fmt.Errorf("batch: %s: %w", name, err))
		}
	}

	res.Success = true
	return res
}
