package shade

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform buffer byte sizes. Each matches the corresponding WGSL
// struct with std140-compatible field alignment.
const (
	// CameraUniformSize is mat4x4<f32>.
	CameraUniformSize = 64

	// ModelUniformSize is mat4x4<f32>.
	ModelUniformSize = 64

	// MaterialUniformSize is vec4 + f32 + f32 + 8 bytes pad.
	MaterialUniformSize = 32

	// LightUniformSize is vec3 + f32 + vec3 + f32.
	LightUniformSize = 32

	// EyeUniformSize is vec4 (xyz used).
	EyeUniformSize = 16
)

// CameraUniform holds the combined view-projection matrix.
// Matches the Camera struct in the lit WGSL sources.
type CameraUniform struct {
	ViewProj mgl32.Mat4
}

// NewCameraUniform returns a camera uniform with an identity matrix.
func NewCameraUniform() CameraUniform {
	return CameraUniform{ViewProj: mgl32.Ident4()}
}

// Bytes returns the 64-byte GPU representation. mgl32 matrices are
// column-major, which is the WGSL mat4x4 storage order, so the floats
// serialize in element order.
func (u CameraUniform) Bytes() []byte {
	return appendF32(make([]byte, 0, CameraUniformSize), u.ViewProj[:]...)
}

// ModelUniform holds the object-to-world matrix.
// Matches the Model struct in the lit WGSL sources.
type ModelUniform struct {
	World mgl32.Mat4
}

// NewModelUniform returns a model uniform with an identity matrix.
func NewModelUniform() ModelUniform {
	return ModelUniform{World: mgl32.Ident4()}
}

// Bytes returns the 64-byte GPU representation.
func (u ModelUniform) Bytes() []byte {
	return appendF32(make([]byte, 0, ModelUniformSize), u.World[:]...)
}

// MaterialUniform holds per-material shading parameters.
// Matches the Material struct in the lit WGSL sources.
//
// DiffuseSpec xyz is the material diffuse color; w is the Fresnel base
// reflectivity f0, the only field the current formulas read. Roughness
// and Metal are reserved: bound and uploaded but unread, kept so the
// buffer layout will not change when a future formula consumes them.
type MaterialUniform struct {
	DiffuseSpec mgl32.Vec4
	Roughness   float32
	Metal       float32
}

// NewMaterialUniform returns material defaults: red diffuse with
// f0 = 0.5, roughness 0.5, metal 0.
func NewMaterialUniform() MaterialUniform {
	return MaterialUniform{
		DiffuseSpec: mgl32.Vec4{1, 0, 0, 0.5},
		Roughness:   0.5,
		Metal:       0,
	}
}

// Bytes returns the 32-byte GPU representation. The trailing 8 bytes
// are padding required by the vec4 alignment of the WGSL struct.
func (u MaterialUniform) Bytes() []byte {
	data := appendF32(make([]byte, 0, MaterialUniformSize), u.DiffuseSpec[:]...)
	data = appendF32(data, u.Roughness, u.Metal, 0, 0)
	return data
}

// LightUniform holds the point light parameters.
// Matches the Light struct in the lit WGSL sources.
//
// Ambient scales the ambient contribution and DiffuseWeight scales the
// diffuse contribution in LitSimple. They occupy what would otherwise
// be vec3 alignment padding, so the struct stays 32 bytes.
type LightUniform struct {
	Position      mgl32.Vec3
	Ambient       float32
	Color         mgl32.Vec3
	DiffuseWeight float32
}

// NewLightUniform returns light defaults: white light at (2, 1, 2)
// with ambient 0.1 and diffuse weight 0.9.
func NewLightUniform() LightUniform {
	return LightUniform{
		Position:      mgl32.Vec3{2, 1, 2},
		Ambient:       0.1,
		Color:         mgl32.Vec3{1, 1, 1},
		DiffuseWeight: 0.9,
	}
}

// Bytes returns the 32-byte GPU representation.
func (u LightUniform) Bytes() []byte {
	data := appendF32(make([]byte, 0, LightUniformSize), u.Position[:]...)
	data = appendF32(data, u.Ambient)
	data = appendF32(data, u.Color[:]...)
	data = appendF32(data, u.DiffuseWeight)
	return data
}

// EyeUniform holds the camera world-space position. Only xyz is read;
// the struct is padded to vec4 for uniform alignment.
type EyeUniform struct {
	Position mgl32.Vec3
}

// NewEyeUniform returns an eye uniform at the origin.
func NewEyeUniform() EyeUniform {
	return EyeUniform{}
}

// Bytes returns the 16-byte GPU representation.
func (u EyeUniform) Bytes() []byte {
	data := appendF32(make([]byte, 0, EyeUniformSize), u.Position[:]...)
	data = appendF32(data, 1)
	return data
}
