package minirender

import "sync"

// DrawUniforms is the complete read-only uniform state for one draw: the
// model matrix, the effective view-projection matrix, the light
// descriptor, the ambient term and the active filter chain. It is a
// plain value; once handed to a renderer it is the draw's private
// snapshot and later caller mutation cannot reach it.
type DrawUniforms struct {
	Model    Mat4
	ViewProj Mat4
	Light    DirectionalLight
	Ambient  Vec3
	Chain    *FilterChain
}

// Uniforms holds the current uniform state between frames and hands out
// per-draw snapshots. The frame loop calls Update between draws; a draw
// calls Snapshot once at its start. This keeps uniform mutation strictly
// outside in-flight fragment evaluation even when the frame loop and a
// draw overlap in time.
type Uniforms struct {
	mu    sync.Mutex
	cur   DrawUniforms
	dirty bool
}

// NewUniforms creates a holder with the given initial state. The initial
// state counts as dirty so the first snapshot reports a change.
func NewUniforms(u DrawUniforms) *Uniforms {
	return &Uniforms{cur: u, dirty: true}
}

// Update mutates the uniform state through fn and marks it dirty.
func (u *Uniforms) Update(fn func(*DrawUniforms)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fn(&u.cur)
	u.dirty = true
}

// Set replaces the uniform state wholesale and marks it dirty.
func (u *Uniforms) Set(state DrawUniforms) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.cur = state
	u.dirty = true
}

// Snapshot returns a copy of the current state and whether it changed
// since the previous snapshot. The dirty flag lets a GPU backend skip
// re-uploading unchanged uniform buffers.
func (u *Uniforms) Snapshot() (DrawUniforms, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	changed := u.dirty
	u.dirty = false
	return u.cur, changed
}
