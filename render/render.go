// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the flattened frame output and the GPU upload
// boundary.
//
// A Frame is what a draw context produces at the end of a frame: one
// committed mesh of untransformed vertices plus an ordered list of draw
// commands, each carrying a composed node transform and the index sub-range
// it covers.
//
// The package RECEIVES a GPU device from the host application, it does NOT
// create its own. Hosts implement DeviceHandle (an alias for
// gpucontext.DeviceProvider) and hand it to an Uploader implementation.
package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/sketch/geom"
	"github.com/gogpu/sketch/mesh"
)

// DeviceHandle provides GPU device access from the host application.
//
// It is an alias for gpucontext.DeviceProvider, giving the upload boundary
// a local name while staying fully compatible with the gpucontext
// ecosystem.
type DeviceHandle = gpucontext.DeviceProvider

// DrawCommand renders one node's geometry: the node's composed transform
// applied to the sub-range of the frame's index buffer.
type DrawCommand struct {
	// Transform is the node's composed model transform, root to node.
	Transform geom.Mat4

	// Indices is the command's sub-range of the frame mesh's index buffer.
	Indices mesh.Range
}

// Frame is the flattened output of one drawn frame.
//
// Mesh vertices are untransformed; each command's transform positions its
// slice of the geometry. Commands appear in drawing order.
type Frame struct {
	Mesh     mesh.Mesh
	Commands []DrawCommand
}

// Empty reports whether the frame contains nothing to draw.
func (f *Frame) Empty() bool {
	return len(f.Commands) == 0
}

// AtlasDescriptor describes the glyph atlas texture an uploader should
// allocate for text rendering.
type AtlasDescriptor struct {
	Width  uint32
	Height uint32

	// Format is the atlas texel format. Glyph coverage needs one channel,
	// so TextureFormatR8Unorm is the usual choice.
	Format gputypes.TextureFormat
}

// DefaultAtlasDescriptor returns the atlas allocation used when the host
// does not specify one.
func DefaultAtlasDescriptor() AtlasDescriptor {
	return AtlasDescriptor{
		Width:  1024,
		Height: 1024,
		Format: gputypes.TextureFormatR8Unorm,
	}
}

// Uploader moves a flattened frame to the GPU.
//
// Implementations live under backend/; they receive the device from the
// host via DeviceHandle and own whatever pipeline and buffer state the
// upload needs. Uploaders are not safe for concurrent use.
type Uploader interface {
	// Upload transfers the frame's mesh and commands to GPU memory,
	// preparing everything short of encoding a render pass.
	Upload(frame *Frame) error

	// Release frees GPU resources held by the uploader.
	Release() error
}
