package shade

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Shader entry point names, shared by every variant.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Embedded WGSL sources. The lit variants share the lighting helper
// functions in shading_common.wgsl, which is prepended at assembly
// time so the math exists in one place.
var (
	//go:embed shaders/shading_common.wgsl
	shadingCommonSource string

	//go:embed shaders/unlit_textured.wgsl
	unlitTexturedSource string

	//go:embed shaders/lit_reflective.wgsl
	litReflectiveSource string

	//go:embed shaders/lit_simple.wgsl
	litSimpleSource string
)

// ShaderSource returns the complete WGSL source for the variant, with
// the shared lighting module prepended for lit variants.
func ShaderSource(v Variant) string {
	switch v {
	case LitReflective:
		return shadingCommonSource + litReflectiveSource
	case LitSimple:
		return shadingCommonSource + litSimpleSource
	default:
		return unlitTexturedSource
	}
}

// CompileShader compiles the variant's assembled WGSL to SPIR-V words
// through naga, validating the source in the process.
func CompileShader(v Variant) ([]byte, error) {
	spirv, err := naga.Compile(ShaderSource(v))
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", v, err)
	}
	Logger().Debug("shader compiled", "variant", v.String(), "spirv_bytes", len(spirv))
	return spirv, nil
}

// ValidateShaders compiles every variant and returns the first
// failure. Useful as a startup check on hosts that compile shaders
// lazily.
func ValidateShaders() error {
	for _, v := range Variants() {
		if _, err := CompileShader(v); err != nil {
			return err
		}
	}
	return nil
}
