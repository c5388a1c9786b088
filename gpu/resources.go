package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Resource errors.
var (
	// ErrNilDevice is returned when a constructor receives a nil device.
	ErrNilDevice = errors.New("shade: device is nil")

	// ErrNilQueue is returned when an upload receives a nil queue.
	ErrNilQueue = errors.New("shade: queue is nil")

	// ErrNilTexture is returned when a bind group constructor receives
	// a nil texture.
	ErrNilTexture = errors.New("shade: texture is nil")

	// ErrNilBuffer is returned when a bind group constructor receives
	// a nil uniform buffer.
	ErrNilBuffer = errors.New("shade: uniform buffer is nil")

	// ErrSizeMismatch is returned when uploaded data does not match
	// the buffer size.
	ErrSizeMismatch = errors.New("shade: data size does not match buffer size")

	// ErrEmptyMesh is returned when a mesh is created without vertices
	// or indices.
	ErrEmptyMesh = errors.New("shade: mesh has no vertices or indices")

	// ErrCubeFaceSize is returned when cube faces are not square and
	// equal-sized.
	ErrCubeFaceSize = errors.New("shade: cube faces must be square and equal size")
)

// UniformBuffer is a fixed-size uniform-usage GPU buffer. The host
// writes it through the queue before a draw; the shading core never
// mutates it.
type UniformBuffer struct {
	device hal.Device
	buf    hal.Buffer
	size   uint64
}

// NewUniformBuffer allocates a uniform buffer of the given byte size.
func NewUniformBuffer(device hal.Device, label string, size uint64) (*UniformBuffer, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer %q: %w", label, err)
	}
	return &UniformBuffer{device: device, buf: buf, size: size}, nil
}

// Write uploads data to the buffer. The data length must match the
// buffer size exactly; the uniform Bytes packers produce exactly that.
func (u *UniformBuffer) Write(queue hal.Queue, data []byte) error {
	if queue == nil {
		return ErrNilQueue
	}
	if uint64(len(data)) != u.size {
		return fmt.Errorf("%w: got %d bytes, buffer is %d", ErrSizeMismatch, len(data), u.size)
	}
	queue.WriteBuffer(u.buf, 0, data)
	return nil
}

// Size returns the buffer byte size.
func (u *UniformBuffer) Size() uint64 { return u.size }

// Binding returns the buffer as a bind group resource.
func (u *UniformBuffer) Binding() gputypes.BufferBinding {
	return gputypes.BufferBinding{
		Buffer: u.buf.NativeHandle(),
		Offset: 0,
		Size:   u.size,
	}
}

// Destroy releases the buffer. Safe to call multiple times.
func (u *UniformBuffer) Destroy() {
	if u.buf != nil {
		u.device.DestroyBuffer(u.buf)
		u.buf = nil
	}
}

// NewMaterialBindGroup builds the GroupMaterial bind group. For lit
// variants pass both textures; for UnlitTextured pass normalMap nil
// and the group carries only the diffuse pair.
func NewMaterialBindGroup(device hal.Device, layout hal.BindGroupLayout, diffuse, normalMap *Texture) (hal.BindGroup, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if diffuse == nil {
		return nil, fmt.Errorf("%w: diffuse", ErrNilTexture)
	}
	entries := []gputypes.BindGroupEntry{
		{Binding: 0, Resource: diffuse.ViewBinding()},
		{Binding: 1, Resource: diffuse.SamplerBinding()},
	}
	if normalMap != nil {
		entries = append(entries,
			gputypes.BindGroupEntry{Binding: 2, Resource: normalMap.ViewBinding()},
			gputypes.BindGroupEntry{Binding: 3, Resource: normalMap.SamplerBinding()},
		)
	}
	bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   "material_bind",
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("create material bind group: %w", err)
	}
	return bg, nil
}

// NewFrameBindGroup builds the GroupFrame bind group holding the
// camera uniform.
func NewFrameBindGroup(device hal.Device, layout hal.BindGroupLayout, camera *UniformBuffer) (hal.BindGroup, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if camera == nil {
		return nil, fmt.Errorf("%w: camera", ErrNilBuffer)
	}
	bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "frame_bind",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: camera.Binding()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create frame bind group: %w", err)
	}
	return bg, nil
}

// NewObjectBindGroup builds the GroupObject bind group holding the
// model matrix and material parameters.
func NewObjectBindGroup(device hal.Device, layout hal.BindGroupLayout, model, material *UniformBuffer) (hal.BindGroup, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if model == nil || material == nil {
		return nil, fmt.Errorf("%w: model/material", ErrNilBuffer)
	}
	bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "object_bind",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: model.Binding()},
			{Binding: 1, Resource: material.Binding()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create object bind group: %w", err)
	}
	return bg, nil
}

// NewLightBindGroup builds the GroupLight bind group holding the light
// and eye-position uniforms. Both are bound for every lit variant even
// though LitSimple's shader reads only the light.
func NewLightBindGroup(device hal.Device, layout hal.BindGroupLayout, light, eye *UniformBuffer) (hal.BindGroup, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if light == nil || eye == nil {
		return nil, fmt.Errorf("%w: light/eye", ErrNilBuffer)
	}
	bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "light_bind",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: light.Binding()},
			{Binding: 1, Resource: eye.Binding()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create light bind group: %w", err)
	}
	return bg, nil
}

// NewEnvironmentBindGroup builds the GroupEnvironment bind group
// holding the environment cube map. LitReflective only.
func NewEnvironmentBindGroup(device hal.Device, layout hal.BindGroupLayout, environment *Texture) (hal.BindGroup, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if environment == nil {
		return nil, fmt.Errorf("%w: environment", ErrNilTexture)
	}
	bg, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "environment_bind",
		Layout: layout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: environment.ViewBinding()},
			{Binding: 1, Resource: environment.SamplerBinding()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create environment bind group: %w", err)
	}
	return bg, nil
}
