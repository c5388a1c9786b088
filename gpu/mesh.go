package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/embersky/shade"
)

// Mesh is an indexed triangle mesh on the GPU: one vertex buffer, one
// 32-bit index buffer.
type Mesh struct {
	device    hal.Device
	vertexBuf hal.Buffer
	indexBuf  hal.Buffer

	indexCount uint32
}

// NewMesh uploads lit vertices and indices. The vertex layout matches
// shade.VertexLayout for the lit variants.
func NewMesh(device hal.Device, queue hal.Queue, label string, verts []shade.Vertex, indices []uint32) (*Mesh, error) {
	if len(verts) == 0 || len(indices) == 0 {
		return nil, ErrEmptyMesh
	}
	return newMesh(device, queue, label, shade.VertexBytes(verts), indices)
}

// NewUnlitMesh uploads reduced position+texcoord vertices for the
// UnlitTextured variant.
func NewUnlitMesh(device hal.Device, queue hal.Queue, label string, verts []shade.UnlitVertex, indices []uint32) (*Mesh, error) {
	if len(verts) == 0 || len(indices) == 0 {
		return nil, ErrEmptyMesh
	}
	return newMesh(device, queue, label, shade.UnlitVertexBytes(verts), indices)
}

func newMesh(device hal.Device, queue hal.Queue, label string, vertexData []byte, indices []uint32) (*Mesh, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if queue == nil {
		return nil, ErrNilQueue
	}

	vertexBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label + "_vertices",
		Size:  uint64(len(vertexData)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer %q: %w", label, err)
	}
	queue.WriteBuffer(vertexBuf, 0, vertexData)

	indexData := shade.IndexBytes(indices)
	indexBuf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label + "_indices",
		Size:  uint64(len(indexData)),
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		device.DestroyBuffer(vertexBuf)
		return nil, fmt.Errorf("create index buffer %q: %w", label, err)
	}
	queue.WriteBuffer(indexBuf, 0, indexData)

	slogger().Debug("mesh uploaded",
		"label", label,
		"vertex_bytes", len(vertexData),
		"indices", len(indices))

	return &Mesh{
		device:     device,
		vertexBuf:  vertexBuf,
		indexBuf:   indexBuf,
		indexCount: uint32(len(indices)),
	}, nil
}

// IndexCount returns the number of indices drawn per RecordDraw.
func (m *Mesh) IndexCount() uint32 { return m.indexCount }

// Destroy releases both buffers. Safe to call multiple times.
func (m *Mesh) Destroy() {
	if m.indexBuf != nil {
		m.device.DestroyBuffer(m.indexBuf)
		m.indexBuf = nil
	}
	if m.vertexBuf != nil {
		m.device.DestroyBuffer(m.vertexBuf)
		m.vertexBuf = nil
	}
}

// RecordDraw records one indexed draw of the mesh into an existing
// render pass: pipeline, bind groups in canonical group order starting
// at 0, vertex and index buffers, then the draw. The render pass and
// its attachments are owned by the host.
func RecordDraw(rp hal.RenderPassEncoder, p *Pipeline, groups []hal.BindGroup, m *Mesh) {
	if m == nil || m.indexCount == 0 {
		return
	}
	rp.SetPipeline(p.Raw())
	for i, g := range groups {
		rp.SetBindGroup(uint32(i), g, nil)
	}
	rp.SetVertexBuffer(0, m.vertexBuf, 0)
	rp.SetIndexBuffer(m.indexBuf, gputypes.IndexFormatUint32, 0)
	rp.DrawIndexed(m.indexCount, 1, 0, 0, 0)
}
