package shade

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex for lit variants.
// Layout per vertex:
//
//	position (vec3<f32>) = 12 bytes (location 0)
//	texcoord (vec2<f32>) =  8 bytes (location 1)
//	normal   (vec3<f32>) = 12 bytes (location 2)
//	tangent  (vec4<f32>) = 16 bytes (location 3)
//
// Total = 48 bytes per vertex.
const VertexStride = 48

// UnlitVertexStride is the byte stride per vertex for UnlitTextured.
// Layout: position (vec3<f32>) + texcoord (vec2<f32>) = 20 bytes.
const UnlitVertexStride = 20

// Vertex is a mesh vertex for the lit variants. Tangent xyz is the
// tangent direction; tangent w is the bitangent handedness, +1 or -1,
// and multiplies the reconstructed bitangent in the fragment stage.
type Vertex struct {
	Position [3]float32
	Texcoord [2]float32
	Normal   [3]float32
	Tangent  [4]float32
}

// UnlitVertex is the reduced vertex for UnlitTextured. Position is
// consumed as-is in clip space.
type UnlitVertex struct {
	Position [3]float32
	Texcoord [2]float32
}

// VertexLayout returns the vertex buffer layout for the variant,
// matching the VertexInput struct in the variant's WGSL source.
func VertexLayout(v Variant) []gputypes.VertexBufferLayout {
	if v == UnlitTextured {
		return []gputypes.VertexBufferLayout{
			{
				ArrayStride: UnlitVertexStride,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
					{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // texcoord
				},
			},
		}
	}
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // texcoord
				{Format: gputypes.VertexFormatFloat32x3, Offset: 20, ShaderLocation: 2}, // normal
				{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3}, // tangent
			},
		},
	}
}

// VertexBytes serializes lit vertices into raw bytes for GPU upload.
func VertexBytes(verts []Vertex) []byte {
	data := make([]byte, 0, len(verts)*VertexStride)
	for _, vt := range verts {
		data = appendF32(data, vt.Position[:]...)
		data = appendF32(data, vt.Texcoord[:]...)
		data = appendF32(data, vt.Normal[:]...)
		data = appendF32(data, vt.Tangent[:]...)
	}
	return data
}

// UnlitVertexBytes serializes unlit vertices into raw bytes for GPU
// upload.
func UnlitVertexBytes(verts []UnlitVertex) []byte {
	data := make([]byte, 0, len(verts)*UnlitVertexStride)
	for _, vt := range verts {
		data = appendF32(data, vt.Position[:]...)
		data = appendF32(data, vt.Texcoord[:]...)
	}
	return data
}

// IndexBytes serializes 32-bit indices into raw bytes for GPU upload.
func IndexBytes(indices []uint32) []byte {
	data := make([]byte, 0, len(indices)*4)
	for _, idx := range indices {
		data = binary.LittleEndian.AppendUint32(data, idx)
	}
	return data
}

// appendF32 appends float32 values in little-endian IEEE 754 order.
func appendF32(data []byte, vals ...float32) []byte {
	for _, v := range vals {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v))
	}
	return data
}
