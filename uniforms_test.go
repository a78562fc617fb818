package minirender

import "testing"

func TestUniformsSnapshotDirty(t *testing.T) {
	u := NewUniforms(DrawUniforms{Ambient: V3(0.1, 0.1, 0.1)})

	state, changed := u.Snapshot()
	if !changed {
		t.Error("first snapshot not marked changed")
	}
	if state.Ambient != V3(0.1, 0.1, 0.1) {
		t.Errorf("snapshot ambient = %+v", state.Ambient)
	}

	if _, changed := u.Snapshot(); changed {
		t.Error("unchanged state reported dirty")
	}

	u.Update(func(d *DrawUniforms) { d.Ambient = V3(0.2, 0.2, 0.2) })
	state, changed = u.Snapshot()
	if !changed || state.Ambient != V3(0.2, 0.2, 0.2) {
		t.Errorf("after Update: changed=%v ambient=%+v", changed, state.Ambient)
	}

	u.Set(DrawUniforms{Model: Translation(V3(1, 0, 0))})
	state, changed = u.Snapshot()
	if !changed || state.Model != Translation(V3(1, 0, 0)) {
		t.Errorf("after Set: changed=%v", changed)
	}
}

func TestUniformsSnapshotIsCopy(t *testing.T) {
	u := NewUniforms(DrawUniforms{Ambient: V3(1, 1, 1)})
	state, _ := u.Snapshot()
	state.Ambient = V3(0, 0, 0)

	cur, _ := u.Snapshot()
	if cur.Ambient != V3(1, 1, 1) {
		t.Errorf("snapshot mutation leaked into holder: %+v", cur.Ambient)
	}
}
