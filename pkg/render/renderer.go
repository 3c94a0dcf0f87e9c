package render

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rngbrew/pathtracer/pkg/scenegraph"
	"github.com/rngbrew/pathtracer/pkg/shading"
	"github.com/rngbrew/pathtracer/pkg/tracelog"
	"github.com/rngbrew/pathtracer/pkg/vecmath"
)

// Renderer drives per-pixel sampling across a worker pool. Each worker
// owns a contiguous band of rows, processing every sample of every pixel
// in that band sequentially on its own *rand.Rand — no cross-worker
// sharing, no lock on the framebuffer.
type Renderer struct {
	Scene          *scenegraph.Scene
	Shader         shading.Shader
	SamplesPerPixel int
	Seed           int64
	NumWorkers     int
	Logger         tracelog.Logger
}

// Stats summarizes a completed render pass.
type Stats struct {
	Width, Height   int
	SamplesPerPixel int
	Elapsed         time.Duration
}

// Render partitions the pixel grid by row across NumWorkers goroutines
// (defaulting to runtime.NumCPU()) using an errgroup.Group, which supplies
// cancellation propagation and first-error capture for the worker-pool
// shutdown path.
func (r *Renderer) Render(ctx context.Context) (*Framebuffer, Stats, error) {
	width, height := r.Scene.Camera.Width, r.Scene.Camera.Height
	fb := NewFramebuffer(width, height)

	numWorkers := r.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	start := time.Now()
	group, gctx := errgroup.WithContext(ctx)

	rowsPerWorker := (height + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > height {
			endRow = height
		}
		if startRow >= endRow {
			continue
		}

		workerSeed := r.Seed + int64(w)
		group.Go(func() error {
			rng := rand.New(rand.NewSource(workerSeed))
			for y := startRow; y < endRow; y++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				for x := 0; x < width; x++ {
					fb.Set(x, y, r.samplePixel(x, y, rng))
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Width: width, Height: height, SamplesPerPixel: r.SamplesPerPixel, Elapsed: time.Since(start)}
	if r.Logger != nil {
		r.Logger.Infow("render complete",
			"width", width, "height", height,
			"samplesPerPixel", r.SamplesPerPixel, "elapsed", stats.Elapsed)
	}
	return fb, stats, nil
}

// samplePixel accumulates SamplesPerPixel camera-ray samples for one
// pixel and returns their mean.
func (r *Renderer) samplePixel(x, y int, rng *rand.Rand) vecmath.Vec3 {
	sum := vecmath.Vec3{}
	for s := 0; s < r.SamplesPerPixel; s++ {
		jx, jy := rng.Float64(), rng.Float64()
		ray := r.Scene.Camera.GetRay(x, y, jx, jy)
		sample := r.Shader.Shade(ray, r.Scene, 0, rng)
		sum = sum.Add(sample)
	}
	return sum.Scale(1.0 / float64(r.SamplesPerPixel))
}
