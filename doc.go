// Package minirender is a minimal real-time 3D shading pipeline.
//
// The pipeline runs four stages in a strictly forward data flow:
//
//	geometry -> lighting -> texturing -> tone mapping / filters -> framebuffer
//
// Each stage is a pure function over float32 inputs (TransformVertex,
// Shade, Texture.Sample + Modulate, TonemapACES and FilterChain.Apply),
// so correctness does not depend on any particular execution model. The
// same functions back the CPU reference renderer in this package and the
// WGSL emitted by the GPU backend, and they are safe to evaluate
// concurrently across vertices and fragments without synchronization.
//
// Uniform state (model matrix, camera, light, filter chain) is read-only
// for the duration of a draw. The Uniforms holder hands out per-draw
// snapshots so a frame loop can mutate its own state while a draw is in
// flight.
//
// Asset loading, windowing and presentation are external collaborators:
// the package consumes vertex buffers, textures and per-draw uniforms,
// and produces an RGBA framebuffer.
//
// # Quick start
//
//	fb, _ := minirender.NewFramebuffer(640, 480)
//	fb.Clear(minirender.Black)
//
//	chain, _ := minirender.NewFilterChain(minirender.Tonemap(), minirender.Gamma())
//	cam := minirender.NewCamera(
//	    minirender.LookAt(minirender.V3(0, 1, 3), minirender.Vec3{}, minirender.V3(0, 1, 0)),
//	    minirender.Perspective(math.Pi/3, 640.0/480.0, 0.1, 100),
//	)
//
//	r := minirender.NewSoftwareRenderer()
//	defer r.Close()
//	err := r.Draw(fb, minirender.NewCubeMesh(), nil, minirender.Sampler{}, minirender.DrawUniforms{
//	    Model:    minirender.NewTransform().Matrix(),
//	    ViewProj: cam.ViewProjection(),
//	    Light:    minirender.NewDirectionalLight(minirender.V3(0.3, 1, 0.5), minirender.V3(1, 1, 1)),
//	    Ambient:  minirender.V3(0.1, 0.1, 0.1),
//	    Chain:    chain,
//	})
package minirender
