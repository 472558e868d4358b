// Package wgpu uploads flattened frames to the GPU using gogpu/wgpu.
//
// The uploader compiles its WGSL transform shader to SPIR-V with gogpu/naga,
// builds the compute pipeline through the wgpu HAL, and packs frame data into
// GPU-ready buffers. Buffer binding itself waits on HAL API extensions that
// expose buffer handles; until then the packed data stays staged on the CPU
// and Upload verifies the full data flow.
package wgpu

import (
	_ "embed"
	"fmt"
	"log"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/sketch/render"
)

//go:embed shaders/transform.wgsl
var transformShaderWGSL string

// floatsPerVertex is the packed vertex stride: position vec4, color vec4,
// tex coords vec4. Must match Vertex in transform.wgsl.
const floatsPerVertex = 12

// configSize is sizeof(Config) in transform.wgsl: four u32 plus a mat4x4.
const configSize = 16 + 64

// Uploader implements render.Uploader on top of the wgpu HAL.
type Uploader struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	shaderModule hal.ShaderModule
	spirvCode    []uint32

	inputBindLayout  hal.BindGroupLayout
	outputBindLayout hal.BindGroupLayout
	pipelineLayout   hal.PipelineLayout
	pipeline         hal.ComputePipeline

	// Staged frame data in GPU buffer layout.
	vertexData  []float32
	indexData   []uint32
	commandData [][16]float32

	initialized bool
	seamLogged  bool
}

// NewUploader creates an uploader on the given device and queue. The device
// comes from the host application; the uploader never creates its own.
func NewUploader(device hal.Device, queue hal.Queue) (*Uploader, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: device and queue are required")
	}

	u := &Uploader{device: device, queue: queue}
	if err := u.init(); err != nil {
		u.destroy()
		return nil, err
	}
	return u, nil
}

var _ render.Uploader = (*Uploader)(nil)

func (u *Uploader) init() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	spirvBytes, err := naga.Compile(transformShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile transform shader: %w", err)
	}
	u.spirvCode = spirvWords(spirvBytes)

	shaderModule, err := u.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "frame_transform_shader",
		Source: hal.ShaderSource{
			SPIRV: u.spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}
	u.shaderModule = shaderModule

	if err := u.createBindGroupLayouts(); err != nil {
		return err
	}
	if err := u.createPipeline(); err != nil {
		return err
	}

	u.initialized = true
	return nil
}

func (u *Uploader) createBindGroupLayouts() error {
	inputLayout, err := u.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "frame_input_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: configSize,
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeReadOnlyStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create input bind group layout: %w", err)
	}
	u.inputBindLayout = inputLayout

	outputLayout, err := u.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "frame_output_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create output bind group layout: %w", err)
	}
	u.outputBindLayout = outputLayout
	return nil
}

func (u *Uploader) createPipeline() error {
	layout, err := u.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "frame_transform_layout",
		BindGroupLayouts: []hal.BindGroupLayout{u.inputBindLayout, u.outputBindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pipeline layout: %w", err)
	}
	u.pipelineLayout = layout

	pipeline, err := u.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "frame_transform_pipeline",
		Layout: u.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     u.shaderModule,
			EntryPoint: "cs_transform",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create transform pipeline: %w", err)
	}
	u.pipeline = pipeline
	return nil
}

// Upload packs the frame into GPU buffer layout and stages it for dispatch.
//
// Buffer creation and binding require HAL API extensions that expose buffer
// handles; until those land the packed data stays staged on the CPU and the
// dispatch is skipped.
func (u *Uploader) Upload(frame *render.Frame) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.initialized {
		return fmt.Errorf("wgpu: uploader not initialized")
	}
	if frame == nil {
		return fmt.Errorf("wgpu: nil frame")
	}

	u.packFrame(frame)

	if !u.seamLogged {
		log.Printf("wgpu: staged %d vertices, %d indices, %d commands (buffer binding pending HAL extensions)",
			frame.Mesh.VertexCount(), len(u.indexData), len(u.commandData))
		u.seamLogged = true
	}
	return nil
}

// packFrame converts the frame into the shader's buffer layout.
func (u *Uploader) packFrame(frame *render.Frame) {
	u.vertexData = u.vertexData[:0]
	for i, p := range frame.Mesh.Points {
		c := frame.Mesh.Colors[i]
		t := frame.Mesh.TexCoords[i]
		u.vertexData = append(u.vertexData,
			float32(p.X), float32(p.Y), float32(p.Z), 1,
			float32(c.R), float32(c.G), float32(c.B), float32(c.A),
			float32(t.X), float32(t.Y), 0, 0,
		)
	}

	u.indexData = u.indexData[:0]
	u.indexData = append(u.indexData, frame.Mesh.Indices...)

	u.commandData = u.commandData[:0]
	for _, cmd := range frame.Commands {
		var m [16]float32
		// Column-major, as mat4x4<f32> expects.
		for col := 0; col < 4; col++ {
			for row := 0; row < 4; row++ {
				m[col*4+row] = float32(cmd.Transform[row][col])
			}
		}
		u.commandData = append(u.commandData, m)
	}
}

// VertexData returns the staged vertex buffer contents.
func (u *Uploader) VertexData() []float32 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.vertexData
}

// IndexData returns the staged index buffer contents.
func (u *Uploader) IndexData() []uint32 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.indexData
}

// CommandCount returns the number of staged draw commands.
func (u *Uploader) CommandCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.commandData)
}

// Release implements render.Uploader.
func (u *Uploader) Release() error {
	u.destroy()
	return nil
}

func (u *Uploader) destroy() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.device == nil {
		return
	}
	if u.pipeline != nil {
		u.device.DestroyComputePipeline(u.pipeline)
		u.pipeline = nil
	}
	if u.pipelineLayout != nil {
		u.device.DestroyPipelineLayout(u.pipelineLayout)
		u.pipelineLayout = nil
	}
	if u.inputBindLayout != nil {
		u.device.DestroyBindGroupLayout(u.inputBindLayout)
		u.inputBindLayout = nil
	}
	if u.outputBindLayout != nil {
		u.device.DestroyBindGroupLayout(u.outputBindLayout)
		u.outputBindLayout = nil
	}
	if u.shaderModule != nil {
		u.device.DestroyShaderModule(u.shaderModule)
		u.shaderModule = nil
	}
	u.initialized = false
}

// spirvWords converts naga's SPIR-V byte output to the word slice the HAL
// expects.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}
