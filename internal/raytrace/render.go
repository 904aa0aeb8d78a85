package raytrace

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"ppm-raytracer/internal/scene"
)

// Logger receives progress messages. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Options controls how a frame is scheduled. None of them affect pixel values.
type Options struct {
	Workers          int           // row workers; <= 0 means runtime.NumCPU()
	Logger           Logger        // progress sink; nil disables reporting
	ProgressInterval time.Duration // reporting period; <= 0 means 2s
}

// Render traces one primary ray per pixel of cam into a new image.
//
// Rows are handed to a pool of workers. Every pixel is a pure function of its
// coordinates and the scene, and each is written by exactly one worker, so
// the image is identical for any worker count. The scene must not change
// while Render runs. Cancelling ctx stops the frame between rows and returns
// ctx.Err() with a partially filled image.
func Render(ctx context.Context, sc *scene.Scene, cam Camera, opts Options) (*Image, error) {
	img := NewImage(cam.Width, cam.Height)
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cam.Height {
		workers = cam.Height
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if opts.Logger != nil {
		interval := opts.ProgressInterval
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
						opts.Logger.Printf("  [%d/%d rows] %.1f rows/sec", p, cam.Height, float64(p)/elapsed)
					}
				}
			}
		}()
	}

	// Worker pool
	rowChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				renderRow(img, sc, cam, y)
				processed.Add(1)
			}
		}()
	}

	// Send work
	var err error
feed:
	for y := 0; y < cam.Height; y++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case rowChan <- y:
		}
	}
	close(rowChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	if opts.Logger != nil && err == nil {
		opts.Logger.Printf("  [%d/%d rows] done in %.2fs", cam.Height, cam.Height, time.Since(start).Seconds())
	}
	return img, err
}

func renderRow(img *Image, sc *scene.Scene, cam Camera, y int) {
	orig := cam.Origin()
	for x := 0; x < cam.Width; x++ {
		img.Set(x, y, Trace(orig, cam.Direction(x, y), sc, 0))
	}
}
