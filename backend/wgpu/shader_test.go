package wgpu

import (
	"strings"
	"testing"

	"github.com/gogpu/minirender"
)

func TestShaderSourceCarriesPipelineConstants(t *testing.T) {
	src := ShaderSource()

	// The WGSL must mirror the CPU stages exactly; spot-check the
	// constants that define the visual output.
	for _, want := range []string{
		"2.51", "0.03", "2.43", "0.59", "0.14", // ACES
		"0.393", "0.769", "0.189", // sepia row r
		"0.349", "0.686", "0.168", // sepia row g
		"0.272", "0.534", "0.131", // sepia row b
		"1.0 / 2.2", // gamma
		"vs_main", "fs_main",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
}

func TestShaderOpsCapacityMatchesConstant(t *testing.T) {
	want := "array<vec4<f32>, 16>"
	if maxFilterOps != 16 {
		t.Fatalf("maxFilterOps = %d; update the shader ops array and this test together", maxFilterOps)
	}
	if !strings.Contains(ShaderSource(), want) {
		t.Errorf("shader source missing op array %q", want)
	}
}

func TestPackDrawUniformsLayout(t *testing.T) {
	chain, err := minirender.NewFilterChain(minirender.Tonemap(), minirender.Brightness(0.25))
	if err != nil {
		t.Fatal(err)
	}

	model := minirender.Translation(minirender.V3(1, 2, 3))
	u := minirender.DrawUniforms{
		Model:    model,
		ViewProj: minirender.Mat4Identity(),
		Light:    minirender.NewDirectionalLight(minirender.V3(0, 0, 1), minirender.V3(1, 0.5, 0.25)),
		Ambient:  minirender.V3(0.1, 0.2, 0.3),
		Chain:    chain,
	}
	packed := packDrawUniforms(u)

	for i := 0; i < 16; i++ {
		if packed[i] != model[i] {
			t.Errorf("model[%d] = %v, want %v", i, packed[i], model[i])
		}
	}
	if packed[34] != 1 {
		t.Errorf("light_dir.z = %v, want 1", packed[34])
	}
	if packed[37] != 0.5 {
		t.Errorf("light_color.y = %v, want 0.5", packed[37])
	}
	if packed[43] != 2 {
		t.Errorf("op count = %v, want 2", packed[43])
	}
	if got := minirender.FilterOpKind(packed[44]); got != minirender.OpTonemap {
		t.Errorf("op 0 kind = %v, want Tonemap", got)
	}
	if got := minirender.FilterOpKind(packed[48]); got != minirender.OpBrightness {
		t.Errorf("op 1 kind = %v, want Brightness", got)
	}
	if packed[49] != 0.25 {
		t.Errorf("op 1 value = %v, want 0.25", packed[49])
	}
}

func TestPackVertices(t *testing.T) {
	mesh := minirender.NewCubeMesh()
	packed := packVertices(mesh)

	if got, want := len(packed), len(mesh.Vertices())*8; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	v0 := mesh.Vertices()[0]
	if packed[0] != v0.Position.X || packed[3] != v0.Normal.X || packed[6] != v0.TexCoord.X {
		t.Error("vertex 0 layout mismatch")
	}
}
