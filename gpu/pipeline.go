package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/embersky/shade"
)

// PipelineConfig holds configuration for building a variant's render
// pipeline.
type PipelineConfig struct {
	// Variant selects the shading program.
	Variant shade.Variant

	// ColorFormat is the render target format.
	// Default: BGRA8Unorm
	ColorFormat gputypes.TextureFormat

	// DepthFormat is the depth attachment format. Zero disables the
	// depth/stencil state entirely.
	// Default: Depth32Float
	DepthFormat gputypes.TextureFormat

	// SampleCount is the MSAA sample count.
	// Default: 1
	SampleCount uint32
}

// DefaultPipelineConfig returns the default configuration for a
// variant: BGRA8Unorm color, Depth32Float depth, no multisampling.
func DefaultPipelineConfig(v shade.Variant) PipelineConfig {
	return PipelineConfig{
		Variant:     v,
		ColorFormat: gputypes.TextureFormatBGRA8Unorm,
		DepthFormat: DepthFormat,
		SampleCount: 1,
	}
}

// Pipeline owns the GPU objects for one shading variant: the compiled
// shader module, the bind group layouts realizing the canonical
// contract, and the render pipeline itself.
type Pipeline struct {
	device  hal.Device
	variant shade.Variant

	shader       hal.ShaderModule
	groupLayouts []hal.BindGroupLayout
	pipeLayout   hal.PipelineLayout
	pipeline     hal.RenderPipeline
}

// NewPipeline compiles the variant's WGSL and creates the bind group
// layouts, pipeline layout, and render pipeline. State mirrors a
// standard forward pass: triangle list, back-face culling, opaque
// (REPLACE) blending, depth test Less with write when a depth format
// is configured.
func NewPipeline(device hal.Device, config PipelineConfig) (*Pipeline, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if config.ColorFormat == 0 {
		config.ColorFormat = gputypes.TextureFormatBGRA8Unorm
	}
	if config.SampleCount == 0 {
		config.SampleCount = 1
	}

	p := &Pipeline{device: device, variant: config.Variant}

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  config.Variant.String() + "_shader",
		Source: hal.ShaderSource{WGSL: shade.ShaderSource(config.Variant)},
	})
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", config.Variant, err)
	}
	p.shader = shader

	for _, gl := range shade.BindGroupLayouts(config.Variant) {
		layout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
			Label:   gl.Label,
			Entries: gl.Entries,
		})
		if err != nil {
			p.Destroy()
			return nil, fmt.Errorf("create %s group %d layout: %w", config.Variant, gl.Group, err)
		}
		p.groupLayouts = append(p.groupLayouts, layout)
	}

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            config.Variant.String() + "_pipe_layout",
		BindGroupLayouts: p.groupLayouts,
	})
	if err != nil {
		p.Destroy()
		return nil, fmt.Errorf("create %s pipeline layout: %w", config.Variant, err)
	}
	p.pipeLayout = pipeLayout

	var depthStencil *hal.DepthStencilState
	if config.DepthFormat != 0 {
		depthStencil = &hal.DepthStencilState{
			Format:            config.DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront:      keepStencil(),
			StencilBack:       keepStencil(),
			StencilReadMask:   0x00,
			StencilWriteMask:  0x00,
		}
	}

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  config.Variant.String() + "_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: shade.VertexEntryPoint,
			Buffers:    shade.VertexLayout(config.Variant),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: shade.FragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    config.ColorFormat,
					Blend:     nil, // opaque REPLACE
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: depthStencil,
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeBack,
		},
		Multisample: gputypes.MultisampleState{
			Count: config.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.Destroy()
		return nil, fmt.Errorf("create %s pipeline: %w", config.Variant, err)
	}
	p.pipeline = pipeline

	slogger().Debug("render pipeline created",
		"variant", config.Variant.String(),
		"groups", len(p.groupLayouts))
	return p, nil
}

// Variant returns the shading variant this pipeline was built for.
func (p *Pipeline) Variant() shade.Variant { return p.variant }

// Raw returns the underlying hal render pipeline for recording.
func (p *Pipeline) Raw() hal.RenderPipeline { return p.pipeline }

// GroupLayout returns the realized layout for one canonical group
// index, or nil if the variant does not declare it.
func (p *Pipeline) GroupLayout(group uint32) hal.BindGroupLayout {
	if int(group) >= len(p.groupLayouts) {
		return nil
	}
	return p.groupLayouts[group]
}

// Destroy releases all GPU resources in reverse creation order. Safe
// to call multiple times.
func (p *Pipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	for i := len(p.groupLayouts) - 1; i >= 0; i-- {
		p.device.DestroyBindGroupLayout(p.groupLayouts[i])
	}
	p.groupLayouts = nil
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// keepStencil is the inert stencil face state used when only the depth
// half of the depth/stencil attachment matters.
func keepStencil() hal.StencilFaceState {
	return hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}
}
