// Command renderdemo renders a lit, filtered cube to a PNG file.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/minirender"
	"github.com/gogpu/minirender/backend"
	_ "github.com/gogpu/minirender/backend/wgpu"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "cube.png", "output file")
		backing = flag.String("backend", "", "render backend (default: best available)")
		angle   = flag.Float64("angle", 0.6, "cube yaw in radians")
		sepia   = flag.Bool("sepia", false, "apply a sepia filter")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		minirender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var be backend.RenderBackend
	if *backing != "" {
		be = backend.Get(*backing)
		if be == nil {
			log.Fatalf("unknown backend %q", *backing)
		}
		if err := be.Init(); err != nil {
			log.Fatalf("backend %s: %v", be.Name(), err)
		}
	} else {
		be = backend.Default()
		if err := be.Init(); err != nil {
			log.Printf("backend %s unavailable (%v), using software", be.Name(), err)
			be = backend.Get(backend.BackendSoftware)
			if err := be.Init(); err != nil {
				log.Fatalf("software backend: %v", err)
			}
		}
	}
	defer be.Close()

	r, err := be.NewMeshRenderer()
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	defer r.Close()

	fb, err := minirender.NewFramebuffer(*width, *height)
	if err != nil {
		log.Fatalf("framebuffer: %v", err)
	}
	fb.Clear(minirender.RGBA{R: 0.05, G: 0.05, B: 0.08, A: 1})

	ops := []minirender.FilterOp{minirender.Tonemap(), minirender.Gamma()}
	if *sepia {
		ops = append([]minirender.FilterOp{minirender.Sepia()}, ops...)
	}
	chain, err := minirender.NewFilterChain(ops...)
	if err != nil {
		log.Fatalf("filter chain: %v", err)
	}

	cam := minirender.NewCamera(
		minirender.LookAt(minirender.V3(0, 1.2, 2.5), minirender.Vec3{}, minirender.V3(0, 1, 0)),
		minirender.Perspective(math.Pi/3, float32(*width)/float32(*height), 0.1, 100),
	)
	model := minirender.Transform{
		Position: minirender.Vec3{},
		Rotation: minirender.QuatFromEuler(float32(*angle), 0, 0),
		Scale:    minirender.V3(1, 1, 1),
	}

	err = r.Draw(fb, minirender.NewCubeMesh(), nil, minirender.Sampler{}, minirender.DrawUniforms{
		Model:    model.Matrix(),
		ViewProj: cam.ViewProjection(),
		Light:    minirender.NewDirectionalLight(minirender.V3(0.4, 1, 0.8), minirender.V3(1, 0.98, 0.92)),
		Ambient:  minirender.V3(0.08, 0.08, 0.1),
		Chain:    chain,
	})
	if err != nil {
		log.Fatalf("draw: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.Image()); err != nil {
		log.Fatalf("encode: %v", err)
	}
	log.Printf("rendered %s (%dx%d, %s backend)", *output, *width, *height, be.Name())
}
