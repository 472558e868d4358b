// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/mesh"
)

func TestFrameEmpty(t *testing.T) {
	var f Frame
	if !f.Empty() {
		t.Error("zero frame not empty")
	}
	f.Commands = append(f.Commands, DrawCommand{
		Transform: geom.Identity(),
		Indices:   mesh.Range{Start: 0, End: 3},
	})
	if f.Empty() {
		t.Error("frame with a command reported empty")
	}
}

func TestDefaultAtlasDescriptor(t *testing.T) {
	d := DefaultAtlasDescriptor()
	if d.Width != 1024 || d.Height != 1024 {
		t.Errorf("atlas size = %dx%d, want 1024x1024", d.Width, d.Height)
	}
	if d.Format != gputypes.TextureFormatR8Unorm {
		t.Errorf("atlas format = %v, want R8Unorm", d.Format)
	}
}
