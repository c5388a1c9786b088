package shade

import (
	"github.com/gogpu/gputypes"
)

// Canonical bind group indices. Group numbers are identical across
// variants: any group a variant declares lives at the same index in
// every variant, so a host can share bind groups between the lit
// pipelines without rebuilding them.
const (
	// GroupMaterial holds the material textures. Binding 0/1 are the
	// diffuse texture and sampler; lit variants add the normal map at
	// bindings 2/3. Updated per material.
	GroupMaterial = 0

	// GroupFrame holds the camera view-projection uniform at
	// binding 0. Updated per frame.
	GroupFrame = 1

	// GroupObject holds the model matrix (binding 0, vertex stage) and
	// material parameters (binding 1, fragment stage). Updated per
	// object.
	GroupObject = 2

	// GroupLight holds the light uniform (binding 0) and eye-position
	// uniform (binding 1), both fragment stage. Updated per light.
	GroupLight = 3

	// GroupEnvironment holds the environment cube texture (binding 0)
	// and its sampler (binding 1). LitReflective only. Updated per
	// scene.
	GroupEnvironment = 4
)

// BindGroupLayout describes one bind group of a variant's pipeline
// layout: its group index, a debug label, and the layout entries in
// binding order.
type BindGroupLayout struct {
	Group   uint32
	Label   string
	Entries []gputypes.BindGroupLayoutEntry
}

// BindGroupLayouts returns the binding contract for the variant, in
// group order starting at group 0. UnlitTextured declares group 0
// only. LitSimple declares groups 0 through 3; its shader does not
// read the eye-position binding, but the layout carries it so groups
// 0 through 3 are layout-compatible with LitReflective. LitReflective
// declares all five groups.
func BindGroupLayouts(v Variant) []BindGroupLayout {
	material := BindGroupLayout{
		Group: GroupMaterial,
		Label: v.String() + "_material_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			textureEntry(0, gputypes.TextureViewDimension2D),
			samplerEntry(1),
		},
	}
	if !v.Lit() {
		return []BindGroupLayout{material}
	}
	material.Entries = append(material.Entries,
		textureEntry(2, gputypes.TextureViewDimension2D),
		samplerEntry(3),
	)

	layouts := []BindGroupLayout{
		material,
		{
			Group: GroupFrame,
			Label: v.String() + "_frame_layout",
			Entries: []gputypes.BindGroupLayoutEntry{
				uniformEntry(0, gputypes.ShaderStageVertex),
			},
		},
		{
			Group: GroupObject,
			Label: v.String() + "_object_layout",
			Entries: []gputypes.BindGroupLayoutEntry{
				uniformEntry(0, gputypes.ShaderStageVertex),
				uniformEntry(1, gputypes.ShaderStageFragment),
			},
		},
		{
			Group: GroupLight,
			Label: v.String() + "_light_layout",
			Entries: []gputypes.BindGroupLayoutEntry{
				uniformEntry(0, gputypes.ShaderStageFragment),
				uniformEntry(1, gputypes.ShaderStageFragment),
			},
		},
	}

	if v.HasEnvironment() {
		layouts = append(layouts, BindGroupLayout{
			Group: GroupEnvironment,
			Label: v.String() + "_environment_layout",
			Entries: []gputypes.BindGroupLayoutEntry{
				textureEntry(0, gputypes.TextureViewDimensionCube),
				samplerEntry(1),
			},
		})
	}
	return layouts
}

func textureEntry(binding uint32, dim gputypes.TextureViewDimension) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageFragment,
		Texture: &gputypes.TextureBindingLayout{
			SampleType:    gputypes.TextureSampleTypeFloat,
			ViewDimension: dim,
		},
	}
}

func samplerEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageFragment,
		Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
	}
}

func uniformEntry(binding uint32, visibility gputypes.ShaderStage) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: visibility,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}
}
