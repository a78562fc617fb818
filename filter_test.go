package minirender

import "testing"

func mustChain(t *testing.T, ops ...FilterOp) *FilterChain {
	t.Helper()
	chain, err := NewFilterChain(ops...)
	if err != nil {
		t.Fatalf("NewFilterChain: %v", err)
	}
	return chain
}

func TestInvertInvolutive(t *testing.T) {
	chain := mustChain(t, Invert(), Invert())
	c := V3(0.2, 0.7, 0.9)
	if got := chain.Apply(c); !vec3ApproxEq(got, c, 1e-6) {
		t.Errorf("invert twice = %+v, want %+v", got, c)
	}
}

func TestGrayscaleIdempotent(t *testing.T) {
	once := mustChain(t, Grayscale()).Apply(V3(0.9, 0.3, 0.1))
	twice := mustChain(t, Grayscale(), Grayscale()).Apply(V3(0.9, 0.3, 0.1))
	if once != twice {
		t.Errorf("grayscale once = %+v, twice = %+v", once, twice)
	}
	if once.X != once.Y || once.Y != once.Z {
		t.Errorf("grayscale output not uniform: %+v", once)
	}
}

func TestGrayscaleEqualWeights(t *testing.T) {
	got := mustChain(t, Grayscale()).Apply(V3(1, 0, 0))
	want := float32(1) / 3
	if !approxEq(got.X, want, 1e-6) {
		t.Errorf("grayscale(1,0,0) = %v, want %v", got.X, want)
	}
}

func TestSepiaMatrix(t *testing.T) {
	got := mustChain(t, Sepia()).Apply(V3(1, 0, 0))
	if !vec3ApproxEq(got, V3(0.393, 0.349, 0.272), 1e-6) {
		t.Errorf("sepia(red) = %+v, want first matrix column", got)
	}
	// White maps to the rows' sums, above 1 in red.
	white := mustChain(t, Sepia()).Apply(V3(1, 1, 1))
	if !vec3ApproxEq(white, V3(1.351, 1.203, 0.937), 1e-5) {
		t.Errorf("sepia(white) = %+v", white)
	}
}

func TestChainOrderMatters(t *testing.T) {
	c := V3(1, 0, 0)
	sepiaThenInvert := mustChain(t, Sepia(), Invert()).Apply(c)
	invertThenSepia := mustChain(t, Invert(), Sepia()).Apply(c)
	if vec3ApproxEq(sepiaThenInvert, invertThenSepia, 1e-6) {
		t.Errorf("sepia/invert order had no effect: %+v", sepiaThenInvert)
	}
	if !vec3ApproxEq(sepiaThenInvert, V3(0.607, 0.651, 0.728), 1e-6) {
		t.Errorf("sepia then invert = %+v", sepiaThenInvert)
	}
	if !vec3ApproxEq(invertThenSepia, V3(0.958, 0.854, 0.665), 1e-6) {
		t.Errorf("invert then sepia = %+v", invertThenSepia)
	}
}

func TestInvertGrayscaleCommute(t *testing.T) {
	// Grayscale is affine with equal weights, so it commutes with invert;
	// both orders give 2/3 for pure red.
	c := V3(1, 0, 0)
	a := mustChain(t, Invert(), Grayscale()).Apply(c)
	b := mustChain(t, Grayscale(), Invert()).Apply(c)
	if !vec3ApproxEq(a, b, 1e-6) {
		t.Errorf("invert/grayscale diverged: %+v vs %+v", a, b)
	}
	if !approxEq(a.X, 2.0/3.0, 1e-6) {
		t.Errorf("invert+grayscale(red) = %v, want 2/3", a.X)
	}
}

func TestBrightnessContrast(t *testing.T) {
	got := mustChain(t, Brightness(0.25)).Apply(V3(0.5, 0, 1))
	if !vec3ApproxEq(got, V3(0.75, 0.25, 1.25), 1e-6) {
		t.Errorf("brightness = %+v", got)
	}
	// Contrast pivots at 0.5: the pivot is a fixed point.
	got = mustChain(t, Contrast(2)).Apply(V3(0.5, 0.75, 0.25))
	if !vec3ApproxEq(got, V3(0.5, 1.0, 0.0), 1e-6) {
		t.Errorf("contrast = %+v", got)
	}
}

func TestSaturationEndpoints(t *testing.T) {
	c := V3(0.8, 0.4, 0.2)
	gray := mustChain(t, Grayscale()).Apply(c)
	if got := mustChain(t, Saturation(0)).Apply(c); !vec3ApproxEq(got, gray, 1e-6) {
		t.Errorf("Saturation(0) = %+v, want grayscale %+v", got, gray)
	}
	if got := mustChain(t, Saturation(1)).Apply(c); !vec3ApproxEq(got, c, 1e-6) {
		t.Errorf("Saturation(1) = %+v, want identity %+v", got, c)
	}
	// Oversaturation pushes channels apart.
	over := mustChain(t, Saturation(2)).Apply(c)
	if over.X <= c.X || over.Z >= c.Z {
		t.Errorf("Saturation(2) = %+v, want spread beyond %+v", over, c)
	}
}

func TestNewFilterChainRejectsUnknownKind(t *testing.T) {
	if _, err := NewFilterChain(FilterOp{}); err == nil {
		t.Error("NewFilterChain accepted the zero op")
	}
	if _, err := NewFilterChain(Invert(), FilterOp{kind: opKindEnd}); err == nil {
		t.Error("NewFilterChain accepted an out-of-range kind")
	}
}

func TestFilterChainNilAndEmpty(t *testing.T) {
	c := V3(0.1, 0.2, 0.3)
	var nilChain *FilterChain
	if got := nilChain.Apply(c); got != c {
		t.Errorf("nil chain Apply = %+v, want identity", got)
	}
	if nilChain.Len() != 0 {
		t.Errorf("nil chain Len = %d, want 0", nilChain.Len())
	}
	empty := mustChain(t)
	if got := empty.Apply(c); got != c {
		t.Errorf("empty chain Apply = %+v, want identity", got)
	}
}

func TestFilterChainImmutable(t *testing.T) {
	ops := []FilterOp{Invert()}
	chain := mustChain(t, ops...)
	ops[0] = Sepia()
	if got := chain.Ops()[0].Kind(); got != OpInvert {
		t.Errorf("chain op kind = %v, want Invert after caller mutation", got)
	}
	// Ops returns a copy too.
	chain.Ops()[0] = Grayscale()
	if got := chain.Ops()[0].Kind(); got != OpInvert {
		t.Errorf("Ops leaked internal slice")
	}
}

func TestTonemapGammaOpsMatchFunctions(t *testing.T) {
	c := V3(1.5, 0.5, 0.1)
	want := LinearToGamma(TonemapACES(c))
	got := mustChain(t, Tonemap(), Gamma()).Apply(c)
	if got != want {
		t.Errorf("chain [tonemap, gamma] = %+v, want %+v", got, want)
	}
}
