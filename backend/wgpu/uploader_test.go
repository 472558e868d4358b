package wgpu

import (
	"testing"

	"github.com/gogpu/sketch/colors"
	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/mesh"
	"github.com/gogpu/sketch/render"
)

func TestSpirvWords(t *testing.T) {
	// SPIR-V magic number 0x07230203 in little-endian bytes.
	words := spirvWords([]byte{0x03, 0x02, 0x23, 0x07})
	if len(words) != 1 {
		t.Fatalf("words = %d, want 1", len(words))
	}
	if words[0] != 0x07230203 {
		t.Errorf("word = %#x, want 0x07230203", words[0])
	}
}

func TestPackFrame(t *testing.T) {
	frame := &render.Frame{}
	frame.Mesh.PushVertex(mesh.Vertex{
		Point:     geom.Pt3(1, 2, 3),
		Color:     colors.Red,
		TexCoords: geom.Pt2(0.25, 0.75),
	})
	frame.Mesh.PushVertex(mesh.Vertex{Point: geom.Pt(4, 5)})
	frame.Mesh.PushIndex(0)
	frame.Mesh.PushIndex(1)
	frame.Commands = append(frame.Commands, render.DrawCommand{
		Transform: geom.Translate(geom.Pt(10, 20)),
		Indices:   mesh.Range{Start: 0, End: 2},
	})

	u := &Uploader{}
	u.packFrame(frame)

	if got := len(u.vertexData); got != 2*floatsPerVertex {
		t.Fatalf("vertex floats = %d, want %d", got, 2*floatsPerVertex)
	}
	// First vertex: position, then color, then tex coords.
	if u.vertexData[0] != 1 || u.vertexData[1] != 2 || u.vertexData[2] != 3 || u.vertexData[3] != 1 {
		t.Errorf("position = %v", u.vertexData[:4])
	}
	if u.vertexData[4] != 1 || u.vertexData[5] != 0 || u.vertexData[6] != 0 || u.vertexData[7] != 1 {
		t.Errorf("color = %v, want red", u.vertexData[4:8])
	}
	if u.vertexData[8] != 0.25 || u.vertexData[9] != 0.75 {
		t.Errorf("tex coords = %v", u.vertexData[8:10])
	}

	if len(u.indexData) != 2 || u.indexData[0] != 0 || u.indexData[1] != 1 {
		t.Errorf("indices = %v, want [0 1]", u.indexData)
	}

	if len(u.commandData) != 1 {
		t.Fatalf("commands = %d, want 1", len(u.commandData))
	}
	// Column-major mat4: translation lands in the last column.
	m := u.commandData[0]
	if m[12] != 10 || m[13] != 20 {
		t.Errorf("translation = (%v,%v), want (10,20)", m[12], m[13])
	}
}

func TestNewUploaderRequiresDevice(t *testing.T) {
	if _, err := NewUploader(nil, nil); err == nil {
		t.Error("NewUploader accepted nil device")
	}
}
