package minirender

// TransformVertex is the geometry stage: it lifts one vertex through the
// model and view-projection transforms and produces the varyings handed
// to the rasterizer.
//
// The clip position is viewProj * model * (position, 1). The normal is
// transformed by the model matrix with w=0, which excludes translation;
// this is correct for uniform scale only. Non-uniform scale would need
// the inverse-transpose of the upper 3x3, which this pipeline does not
// implement. That is a documented limitation, not an oversight.
//
// TransformVertex is a pure function and safe to call concurrently across
// vertices.
func TransformVertex(v Vertex, model, viewProj Mat4) Varyings {
	world := model.MulVec4(V4(v.Position.X, v.Position.Y, v.Position.Z, 1))
	clip := viewProj.MulVec4(world)

	// w=0 drops the translation column. Normalize guards zero-length
	// normals, returning the zero vector instead of NaN.
	worldNormal := model.MulVec4(V4(v.Normal.X, v.Normal.Y, v.Normal.Z, 0)).XYZ().Normalize()

	return Varyings{
		ClipPosition: clip,
		WorldNormal:  worldNormal,
		TexCoord:     v.TexCoord,
	}
}
