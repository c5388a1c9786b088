package shade

import "fmt"

// Variant identifies one of the shading programs provided by this
// package. Each variant is a complete vertex+fragment WGSL program
// with its own vertex layout and bind group contract.
type Variant uint8

const (
	// UnlitTextured samples a diffuse texture with no lighting.
	// Positions pass through to clip space unchanged.
	UnlitTextured Variant = iota

	// LitReflective applies tangent-space normal mapping and blends
	// point-light diffuse against an environment cube-map reflection
	// using a Schlick Fresnel weight.
	LitReflective

	// LitSimple applies tangent-space normal mapping with Lambertian
	// diffuse plus an ambient term. No reflection.
	LitSimple
)

// Variants lists every shading variant in declaration order.
func Variants() []Variant {
	return []Variant{UnlitTextured, LitReflective, LitSimple}
}

// String returns the variant name used in labels and shader file names.
func (v Variant) String() string {
	switch v {
	case UnlitTextured:
		return "unlit_textured"
	case LitReflective:
		return "lit_reflective"
	case LitSimple:
		return "lit_simple"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// Lit reports whether the variant evaluates lighting. Lit variants use
// the full vertex layout (normal + tangent) and bind groups 0 through 3.
func (v Variant) Lit() bool {
	return v == LitReflective || v == LitSimple
}

// HasEnvironment reports whether the variant samples an environment
// cube map and therefore declares GroupEnvironment.
func (v Variant) HasEnvironment() bool {
	return v == LitReflective
}
