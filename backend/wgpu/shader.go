package wgpu

// meshShaderWGSL is the GPU half of the pipeline. Every constant and
// every operation mirrors the CPU stage functions in the root package;
// if one side changes, the other must change with it.
//
// Filter op kinds in the uniform array use the same numeric values as
// minirender.FilterOpKind (Invert=1 ... Gamma=8). The w component of
// the ambient vector carries the op count.
const meshShaderWGSL = `
struct Uniforms {
    model: mat4x4<f32>,
    view_proj: mat4x4<f32>,
    light_dir: vec4<f32>,
    light_color: vec4<f32>,
    ambient: vec4<f32>,
    ops: array<vec4<f32>, 16>,
};

@group(0) @binding(0) var<uniform> u: Uniforms;
@group(0) @binding(1) var t_diffuse: texture_2d<f32>;
@group(0) @binding(2) var s_diffuse: sampler;

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) normal: vec3<f32>,
    @location(2) tex_coord: vec2<f32>,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) world_normal: vec3<f32>,
    @location(1) tex_coord: vec2<f32>,
};

fn safe_normalize(v: vec3<f32>) -> vec3<f32> {
    let len = length(v);
    if (len == 0.0) {
        return vec3<f32>(0.0);
    }
    return v / len;
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = u.view_proj * u.model * vec4<f32>(in.position, 1.0);
    out.world_normal = safe_normalize((u.model * vec4<f32>(in.normal, 0.0)).xyz);
    out.tex_coord = in.tex_coord;
    return out;
}

fn tonemap_aces(c: vec3<f32>) -> vec3<f32> {
    let x = max(c, vec3<f32>(0.0));
    return (x * (2.51 * x + 0.03)) / (x * (2.43 * x + 0.59) + 0.14);
}

fn gray_average(c: vec3<f32>) -> f32 {
    return (c.r + c.g + c.b) / 3.0;
}

fn apply_op(kind: u32, value: f32, c: vec3<f32>) -> vec3<f32> {
    if (kind == 1u) { // invert
        return vec3<f32>(1.0) - c;
    }
    if (kind == 2u) { // grayscale
        return vec3<f32>(gray_average(c));
    }
    if (kind == 3u) { // sepia
        return vec3<f32>(
            0.393 * c.r + 0.769 * c.g + 0.189 * c.b,
            0.349 * c.r + 0.686 * c.g + 0.168 * c.b,
            0.272 * c.r + 0.534 * c.g + 0.131 * c.b,
        );
    }
    if (kind == 4u) { // brightness
        return c + vec3<f32>(value);
    }
    if (kind == 5u) { // contrast
        return (c - vec3<f32>(0.5)) * value + vec3<f32>(0.5);
    }
    if (kind == 6u) { // saturation
        let avg = vec3<f32>(gray_average(c));
        return avg + (c - avg) * value;
    }
    if (kind == 7u) { // tonemap
        return tonemap_aces(c);
    }
    if (kind == 8u) { // gamma
        return pow(max(c, vec3<f32>(0.0)), vec3<f32>(1.0 / 2.2));
    }
    return c;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let n = safe_normalize(in.world_normal);
    let l = safe_normalize(u.light_dir.xyz);
    let intensity = max(dot(n, l), 0.0);

    var color = u.ambient.xyz + intensity * u.light_color.xyz;

    let texel = textureSample(t_diffuse, s_diffuse, in.tex_coord);
    color = color * texel.rgb;

    let op_count = u32(u.ambient.w);
    for (var i = 0u; i < op_count; i = i + 1u) {
        color = apply_op(u32(u.ops[i].x), u.ops[i].y, color);
    }

    return vec4<f32>(color, 1.0);
}
`

// ShaderSource returns the WGSL source for the mesh pipeline. Exposed
// for inspection and for hosts that manage their own pipelines.
func ShaderSource() string {
	return meshShaderWGSL
}
