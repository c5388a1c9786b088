// Package shademath is the CPU reference implementation of the
// lighting model. Every function mirrors shaders/shading_common.wgsl
// and the variant fragment stages line for line; keep them in sync.
//
// The math is deliberately unguarded against degenerate input: a
// zero-length normal or tangent fed into a normalize produces NaN,
// which propagates into the returned color exactly as it does on the
// GPU.
package shademath

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/embersky/shade"
)

// FresnelSchlick returns the Schlick approximation of the Fresnel
// reflectance. f0 is the base reflectivity at normal incidence and
// cosTheta the cosine of the view/normal angle. The result rises from
// f0 at cosTheta = 1 to exactly 1 at grazing incidence.
func FresnelSchlick(cosTheta, f0 float32) float32 {
	x := clamp(1-cosTheta, 0, 1)
	return f0 + (1-f0)*x*x*x*x*x
}

// DecodeNormal maps a normal-map texel from [0,1] storage range to the
// [-1,1] signed range.
func DecodeNormal(sample mgl32.Vec3) mgl32.Vec3 {
	return sample.Mul(2).Sub(mgl32.Vec3{1, 1, 1})
}

// PerturbNormal reconstructs the world-space shading normal from a raw
// normal-map sample and the interpolated vertex normal and tangent.
// The bitangent is cross(normal, tangent) scaled by the handedness in
// tangent.w. The basis vectors enter as-is, raw interpolation
// magnitudes included; only the combined result is normalized. It is
// unit length unless an input is degenerate, in which case it is NaN.
func PerturbNormal(sample, normal mgl32.Vec3, tangent mgl32.Vec4) mgl32.Vec3 {
	t := tangent.Vec3()
	b := normal.Cross(t).Mul(tangent.W())
	d := DecodeNormal(sample)
	return t.Mul(d.X()).Add(b.Mul(d.Y())).Add(normal.Mul(d.Z())).Normalize()
}

// Reflect returns the reflection of incident direction i about the
// normal n, the standard i - 2*dot(n,i)*n formula.
func Reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

// Varyings is the vertex-stage output interpolated across a primitive:
// the fragment-stage input.
type Varyings struct {
	ClipPosition  mgl32.Vec4
	Texcoord      mgl32.Vec2
	WorldPosition mgl32.Vec3
	WorldNormal   mgl32.Vec3
	WorldTangent  mgl32.Vec4
}

// TransformVertex runs the lit vertex stage on the CPU: world position
// with w = 1, direction vectors with w = 0 and no renormalization,
// handedness passthrough, clip position through the camera matrix.
func TransformVertex(camera, model mgl32.Mat4, v shade.Vertex) Varyings {
	world := model.Mul4x1(mgl32.Vec4{v.Position[0], v.Position[1], v.Position[2], 1})
	normal := model.Mul4x1(mgl32.Vec4{v.Normal[0], v.Normal[1], v.Normal[2], 0}).Vec3()
	tangent := model.Mul4x1(mgl32.Vec4{v.Tangent[0], v.Tangent[1], v.Tangent[2], 0}).Vec3()
	return Varyings{
		ClipPosition:  camera.Mul4x1(world),
		Texcoord:      mgl32.Vec2{v.Texcoord[0], v.Texcoord[1]},
		WorldPosition: world.Vec3(),
		WorldNormal:   normal,
		WorldTangent:  tangent.Vec4(v.Tangent[3]),
	}
}

// Surface is the per-fragment sampled material state.
type Surface struct {
	// Albedo is the diffuse texture sample, alpha included.
	Albedo mgl32.Vec4

	// NormalSample is the raw normal-map texel in [0,1] storage range.
	NormalSample mgl32.Vec3

	// F0 is the Fresnel base reflectivity (material diffuse_spec.w).
	F0 float32
}

// Light mirrors the light uniform.
type Light struct {
	Position      mgl32.Vec3
	Color         mgl32.Vec3
	Ambient       float32
	DiffuseWeight float32
}

// DefaultLight returns the light uniform defaults: white light at
// (2, 1, 2), ambient 0.1, diffuse weight 0.9.
func DefaultLight() Light {
	return Light{
		Position:      mgl32.Vec3{2, 1, 2},
		Color:         mgl32.Vec3{1, 1, 1},
		Ambient:       0.1,
		DiffuseWeight: 0.9,
	}
}

// Environment samples an environment cube map in a direction. The
// direction is not normalized by the caller; cube lookups select by
// major axis and are magnitude-independent.
type Environment func(dir mgl32.Vec3) mgl32.Vec3

// ShadeUnlit is the UnlitTextured fragment stage: the diffuse sample
// passes through untouched, alpha included.
func ShadeUnlit(albedo mgl32.Vec4) mgl32.Vec4 {
	return albedo
}

// ShadeLitSimple is the LitSimple fragment stage: Lambertian diffuse
// scaled by the light's diffuse weight, plus a constant ambient term.
// Alpha passes through from the albedo sample.
func ShadeLitSimple(vary Varyings, s Surface, l Light) mgl32.Vec4 {
	n := PerturbNormal(s.NormalSample, vary.WorldNormal, vary.WorldTangent)
	lightDir := l.Position.Sub(vary.WorldPosition).Normalize()
	diffuse := l.Color.Mul(max32(n.Dot(lightDir), 0) * l.DiffuseWeight)
	ambient := l.Color.Mul(l.Ambient)
	rgb := mulElem(diffuse.Add(ambient), s.Albedo.Vec3())
	return rgb.Vec4(s.Albedo.W())
}

// ShadeLitReflective is the LitReflective fragment stage: the Fresnel
// term splits response between an environment reflection and point
// light diffuse, so the two never double-count. Alpha passes through.
func ShadeLitReflective(vary Varyings, s Surface, l Light, eye mgl32.Vec3, env Environment) mgl32.Vec4 {
	n := PerturbNormal(s.NormalSample, vary.WorldNormal, vary.WorldTangent)

	view := eye.Sub(vary.WorldPosition).Normalize()
	reflectStrength := FresnelSchlick(max32(n.Dot(view), 0), s.F0)
	reflection := env(Reflect(view.Mul(-1), n)).Mul(reflectStrength)

	lightDir := l.Position.Sub(vary.WorldPosition).Normalize()
	diffuseStrength := max32(n.Dot(lightDir), 0) * (1 - reflectStrength)
	diffuse := l.Color.Mul(diffuseStrength)

	rgb := mulElem(diffuse.Add(reflection), s.Albedo.Vec3())
	return rgb.Vec4(s.Albedo.W())
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// mulElem multiplies two vectors component-wise.
func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
