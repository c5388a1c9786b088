package shade

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestVertexLayoutLit(t *testing.T) {
	for _, v := range []Variant{LitReflective, LitSimple} {
		layouts := VertexLayout(v)
		if len(layouts) != 1 {
			t.Fatalf("%s: got %d buffer layouts, want 1", v, len(layouts))
		}
		l := layouts[0]
		if l.ArrayStride != VertexStride {
			t.Errorf("%s: stride = %d, want %d", v, l.ArrayStride, VertexStride)
		}
		want := []struct {
			format   gputypes.VertexFormat
			offset   uint64
			location uint32
		}{
			{gputypes.VertexFormatFloat32x3, 0, 0},  // position
			{gputypes.VertexFormatFloat32x2, 12, 1}, // texcoord
			{gputypes.VertexFormatFloat32x3, 20, 2}, // normal
			{gputypes.VertexFormatFloat32x4, 32, 3}, // tangent
		}
		if len(l.Attributes) != len(want) {
			t.Fatalf("%s: got %d attributes, want %d", v, len(l.Attributes), len(want))
		}
		for i, w := range want {
			a := l.Attributes[i]
			if a.Format != w.format || uint64(a.Offset) != w.offset || a.ShaderLocation != w.location {
				t.Errorf("%s: attribute %d = {%v %d %d}, want {%v %d %d}",
					v, i, a.Format, a.Offset, a.ShaderLocation, w.format, w.offset, w.location)
			}
		}
	}
}

func TestVertexLayoutUnlit(t *testing.T) {
	layouts := VertexLayout(UnlitTextured)
	if len(layouts) != 1 {
		t.Fatalf("got %d buffer layouts, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != UnlitVertexStride {
		t.Errorf("stride = %d, want %d", l.ArrayStride, UnlitVertexStride)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(l.Attributes))
	}
	if l.Attributes[1].Format != gputypes.VertexFormatFloat32x2 || l.Attributes[1].Offset != 12 {
		t.Errorf("texcoord attribute = {%v %d}, want {Float32x2 12}",
			l.Attributes[1].Format, l.Attributes[1].Offset)
	}
}

func f32At(data []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
}

func TestVertexBytes(t *testing.T) {
	verts := []Vertex{
		{
			Position: [3]float32{1, 2, 3},
			Texcoord: [2]float32{0.5, 0.25},
			Normal:   [3]float32{0, 1, 0},
			Tangent:  [4]float32{1, 0, 0, -1},
		},
		{
			Position: [3]float32{4, 5, 6},
			Texcoord: [2]float32{0, 1},
			Normal:   [3]float32{0, 0, 1},
			Tangent:  [4]float32{0, 1, 0, 1},
		},
	}
	data := VertexBytes(verts)
	if len(data) != 2*VertexStride {
		t.Fatalf("len = %d, want %d", len(data), 2*VertexStride)
	}
	// Spot-check fields at their declared offsets.
	if got := f32At(data, 0); got != 1 {
		t.Errorf("position.x = %v, want 1", got)
	}
	if got := f32At(data, 12); got != 0.5 {
		t.Errorf("texcoord.u = %v, want 0.5", got)
	}
	if got := f32At(data, 24); got != 1 {
		t.Errorf("normal.y = %v, want 1", got)
	}
	if got := f32At(data, 44); got != -1 {
		t.Errorf("tangent.w = %v, want -1", got)
	}
	// Second vertex starts one stride in.
	if got := f32At(data, VertexStride); got != 4 {
		t.Errorf("vertex[1].position.x = %v, want 4", got)
	}
}

func TestUnlitVertexBytes(t *testing.T) {
	verts := []UnlitVertex{
		{Position: [3]float32{-1, -1, 0}, Texcoord: [2]float32{0, 1}},
		{Position: [3]float32{1, -1, 0}, Texcoord: [2]float32{1, 1}},
		{Position: [3]float32{0, 1, 0}, Texcoord: [2]float32{0.5, 0}},
	}
	data := UnlitVertexBytes(verts)
	if len(data) != 3*UnlitVertexStride {
		t.Fatalf("len = %d, want %d", len(data), 3*UnlitVertexStride)
	}
	if got := f32At(data, UnlitVertexStride+16); got != 1 {
		t.Errorf("vertex[1].texcoord.v = %v, want 1", got)
	}
}

func TestIndexBytes(t *testing.T) {
	data := IndexBytes([]uint32{0, 1, 2, 2, 3, 0})
	if len(data) != 24 {
		t.Fatalf("len = %d, want 24", len(data))
	}
	if got := binary.LittleEndian.Uint32(data[12:]); got != 2 {
		t.Errorf("index[3] = %d, want 2", got)
	}
}
