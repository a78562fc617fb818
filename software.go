package minirender

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/minirender/internal/parallel"
)

// SoftwareRenderer is the CPU reference implementation of the pipeline:
// geometry transform, barycentric triangle rasterization with a depth
// buffer, and per-fragment shading through the pure stage functions.
//
// Fragment work is split by framebuffer row across a worker pool. Rows
// are disjoint, every stage is pure and all draw state is read-only, so
// no further synchronization is needed; the same draw produces identical
// output at any worker count.
type SoftwareRenderer struct {
	opts rendererOptions
	pool *parallel.Pool
}

// NewSoftwareRenderer creates a software renderer.
func NewSoftwareRenderer(opts ...Option) *SoftwareRenderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &SoftwareRenderer{
		opts: o,
		pool: parallel.NewPool(o.workers),
	}
}

// Close releases the worker pool.
func (r *SoftwareRenderer) Close() {
	r.pool.Close()
}

// screenVertex is one mesh vertex after the geometry stage and the
// viewport transform.
type screenVertex struct {
	x, y   float32 // screen position in pixels
	z      float32 // NDC depth in [0,1]
	invW   float32 // 1/clip.W, for perspective-correct interpolation
	normal Vec3
	uv     Vec2
}

// Draw renders the mesh into fb with the given texture binding and
// uniform snapshot.
//
// Triangles crossing the near plane are dropped whole rather than
// clipped; polygon clipping is outside this minimal pipeline's scope.
func (r *SoftwareRenderer) Draw(fb *Framebuffer, mesh *Mesh, tex *Texture, sampler Sampler, uniforms DrawUniforms) error {
	if fb == nil {
		return ErrNilFramebuffer
	}
	if mesh == nil {
		return ErrNilMesh
	}

	verts := mesh.Vertices()
	screen := make([]screenVertex, len(verts))
	halfW := float32(fb.Width()) / 2
	halfH := float32(fb.Height()) / 2

	// Geometry stage across all vertices. Each element is independent.
	r.pool.For(0, len(verts), func(i int) {
		vary := TransformVertex(verts[i], uniforms.Model, uniforms.ViewProj)
		clip := vary.ClipPosition

		sv := screenVertex{normal: vary.WorldNormal, uv: vary.TexCoord}
		if clip.W > nearEpsilon {
			invW := 1 / clip.W
			sv.x = (clip.X*invW + 1) * halfW
			sv.y = (1 - clip.Y*invW) * halfH
			sv.z = clip.Z * invW
			sv.invW = invW
		}
		// invW stays 0 for vertices at or behind the eye plane; the
		// triangle loop drops any triangle touching one.
		screen[i] = sv
	})

	indices := mesh.Indices()
	drawn := 0
	for t := 0; t < len(indices); t += 3 {
		if r.rasterTriangle(fb, tex, sampler, uniforms,
			screen[indices[t]], screen[indices[t+1]], screen[indices[t+2]]) {
			drawn++
		}
	}

	Logger().Debug("software draw",
		"triangles", mesh.TriangleCount(),
		"rasterized", drawn,
		"filters", uniforms.Chain.Len())
	return nil
}

// nearEpsilon is the minimum clip-space w accepted; anything closer is
// treated as behind the eye.
const nearEpsilon = 1e-6

// edgeFn is the signed doubled area of triangle (a, b, p). Its sign
// tells which side of edge ab the point p lies on.
func edgeFn(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// rasterTriangle fills one screen-space triangle, dispatching rows over
// the worker pool. Reports whether the triangle survived culling and
// reached fragment dispatch.
//
// With the Y axis flipped into screen coordinates, front-facing
// (counter-clockwise in NDC) triangles have negative signed area here.
func (r *SoftwareRenderer) rasterTriangle(fb *Framebuffer, tex *Texture, sampler Sampler, uniforms DrawUniforms, v0, v1, v2 screenVertex) bool {
	if v0.invW == 0 || v1.invW == 0 || v2.invW == 0 {
		return false // crosses the eye plane
	}

	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 {
		return false // degenerate
	}
	if r.opts.cullBackfaces && area > 0 {
		return false
	}

	minX := max(int(math32.Floor(min3(v0.x, v1.x, v2.x))), 0)
	maxX := min(int(math32.Ceil(max3(v0.x, v1.x, v2.x))), fb.Width()-1)
	minY := max(int(math32.Floor(min3(v0.y, v1.y, v2.y))), 0)
	maxY := min(int(math32.Ceil(max3(v0.y, v1.y, v2.y))), fb.Height()-1)
	if minX > maxX || minY > maxY {
		return false // fully off screen
	}

	r.pool.For(minY, maxY+1, func(y int) {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			e0 := edgeFn(v1.x, v1.y, v2.x, v2.y, px, py)
			e1 := edgeFn(v2.x, v2.y, v0.x, v0.y, px, py)
			e2 := edgeFn(v0.x, v0.y, v1.x, v1.y, px, py)

			// Inside when all edge values share the area's sign.
			if area > 0 {
				if e0 < 0 || e1 < 0 || e2 < 0 {
					continue
				}
			} else {
				if e0 > 0 || e1 > 0 || e2 > 0 {
					continue
				}
			}

			w0 := e0 / area
			w1 := e1 / area
			w2 := e2 / area

			// NDC depth is affine in screen space.
			z := w0*v0.z + w1*v1.z + w2*v2.z
			if !fb.depthTest(x, y, z) {
				continue
			}

			// Perspective-correct varyings: interpolate attr/w and
			// 1/w, then divide.
			invW := w0*v0.invW + w1*v1.invW + w2*v2.invW
			normal := v0.normal.Mul(w0 * v0.invW).
				Add(v1.normal.Mul(w1 * v1.invW)).
				Add(v2.normal.Mul(w2 * v2.invW)).
				Mul(1 / invW)
			uv := v0.uv.Mul(w0 * v0.invW).
				Add(v1.uv.Mul(w1 * v1.invW)).
				Add(v2.uv.Mul(w2 * v2.invW)).
				Mul(1 / invW)

			frag := ShadeFragment(Varyings{
				WorldNormal: normal,
				TexCoord:    uv,
			}, uniforms, tex, sampler, r.opts.alphaFromTexture)
			fb.SetPixel(x, y, frag)
		}
	})
	return true
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}
