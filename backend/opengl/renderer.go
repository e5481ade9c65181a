// Package opengl provides an OpenGL 4.1 backend for the GUI package.
package opengl

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gui/v2"
)

// ErrForeignTexture is returned when a texture created by another renderer
// is passed in.
var ErrForeignTexture = errors.New("opengl: texture not created by this renderer")

// Texture is a GL texture, optionally backed by a framebuffer.
type Texture struct {
	id     uint32
	fbo    uint32 // 0 unless the texture is a render target
	width  int
	height int
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// ID returns the GL texture name.
func (t *Texture) ID() uint32 { return t.id }

// Renderer implements gui.Renderer using OpenGL.
//
// Meshes and blits are batched into a gui.DrawList per render target. The
// batch is drawn when the target changes, before a Clear, and on Flush.
// Destroyed textures are kept alive until Flush because batched quads may
// still sample them.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	width     int
	height    int

	dl         *gui.DrawList
	target     *Texture // nil = default framebuffer
	clearColor uint32
	graveyard  []*Texture
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source. Output is premultiplied; textures are stored
// premultiplied (image.RGBA and render targets alike).
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;

void main() {
    vec4 c = vec4(Color.rgb * Color.a, Color.a);
    if (useTexture) {
        c *= texture(tex, TexCoord);
    }
    FragColor = c;
}
` + "\x00"

// NewRenderer creates a new OpenGL GUI renderer for a width x height
// default framebuffer. A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		dl:     gui.AcquireDrawList(),
	}

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Color (1 uint32)
	stride := int32(unsafe.Sizeof(gui.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	// Color attribute (normalized uint8x4)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return r, nil
}

// Resize updates the default framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// FillMesh queues an untextured triangle list.
func (r *Renderer) FillMesh(vertices []gui.Vertex, indices []uint16) error {
	r.dl.SetTexture(0)
	r.dl.AddMesh(vertices, indices)
	return nil
}

// Blit queues a textured quad. src is in texture pixels.
func (r *Renderer) Blit(tex gui.Texture, src *gui.Rect, dst gui.Rect) error {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.id == 0 {
		return ErrForeignTexture
	}
	w, h := float32(t.width), float32(t.height)
	u0, v0, u1, v1 := float32(0), float32(0), float32(1), float32(1)
	if src != nil && w > 0 && h > 0 {
		u0, v0 = src.X/w, src.Y/h
		u1, v1 = src.Right()/w, src.Bottom()/h
	}
	if t.fbo != 0 {
		// Render targets are stored bottom-up.
		v0, v1 = 1-v0, 1-v1
	}
	r.dl.SetTexture(t.id)
	r.dl.AddImage(dst, u0, v0, u1, v1, gui.ColorWhite)
	return nil
}

// CreateOffscreenTarget allocates an RGBA texture with its own framebuffer.
func (r *Renderer) CreateOffscreenTarget(w, h int) (gui.Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("opengl: invalid target size %dx%d", w, h)
	}
	t := &Texture{width: w, height: h}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	setTextureParams()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.id, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.targetFBO())

	if status != gl.FRAMEBUFFER_COMPLETE {
		deleteTexture(t)
		return nil, fmt.Errorf("opengl: framebuffer incomplete (status 0x%x)", status)
	}
	return t, nil
}

// SetRenderTarget draws what is batched so far and redirects drawing to tex,
// or to the default framebuffer when tex is nil.
func (r *Renderer) SetRenderTarget(tex gui.Texture) error {
	var next *Texture
	if tex != nil {
		t, ok := tex.(*Texture)
		if !ok || t == nil || t.fbo == 0 {
			return ErrForeignTexture
		}
		next = t
	}
	if next == r.target {
		return nil
	}
	if err := r.render(); err != nil {
		return err
	}
	r.target = next
	r.bindTarget()
	return nil
}

// SetDrawColor sets the clear color.
func (r *Renderer) SetDrawColor(color uint32) {
	r.clearColor = color
}

// Clear fills the current target with the draw color.
func (r *Renderer) Clear() error {
	if err := r.render(); err != nil {
		return err
	}
	r.bindTarget()
	cr, cg, cb, ca := gui.UnpackRGBA(r.clearColor)
	a := float32(ca) / 255
	gl.ClearColor(float32(cr)/255*a, float32(cg)/255*a, float32(cb)/255*a, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

// DestroyTexture schedules tex for deletion at the next Flush.
func (r *Renderer) DestroyTexture(tex gui.Texture) {
	if t, ok := tex.(*Texture); ok && t != nil && t.id != 0 {
		r.graveyard = append(r.graveyard, t)
	}
}

// UploadImage creates a texture from premultiplied RGBA pixels.
func (r *Renderer) UploadImage(img *image.RGBA) (gui.Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("opengl: empty image %dx%d", w, h)
	}
	pix := img.Pix
	if img.Stride != 4*w || b.Min != (image.Point{}) {
		tight := image.NewRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			copy(tight.Pix[y*tight.Stride:], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):][:4*w])
		}
		pix = tight.Pix
	}

	t := &Texture{width: w, height: h}
	gl.GenTextures(1, &t.id)
	if t.id == 0 {
		return nil, errors.New("opengl: glGenTextures failed")
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	setTextureParams()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Flush draws everything batched for the current target and deletes the
// textures destroyed during the frame.
func (r *Renderer) Flush() error {
	err := r.render()
	for i, t := range r.graveyard {
		deleteTexture(t)
		r.graveyard[i] = nil
	}
	r.graveyard = r.graveyard[:0]
	return err
}

// targetFBO returns the framebuffer name of the current target.
func (r *Renderer) targetFBO() uint32 {
	if r.target == nil {
		return 0
	}
	return r.target.fbo
}

// targetSize returns the size of the current target.
func (r *Renderer) targetSize() (int, int) {
	if r.target == nil {
		return r.width, r.height
	}
	return r.target.width, r.target.height
}

// bindTarget binds the current target and sets the viewport to cover it.
func (r *Renderer) bindTarget() {
	w, h := r.targetSize()
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.targetFBO())
	gl.Viewport(0, 0, int32(w), int32(h))
}

// render draws the batched DrawList onto the current target and clears it.
func (r *Renderer) render() error {
	dl := r.dl
	if dl.Empty() {
		dl.Clear()
		return nil
	}
	defer dl.Clear()
	dl.Finalize()

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)

	r.bindTarget()
	gl.UseProgram(r.shader)

	w, h := r.targetSize()
	proj := orthoMatrix(0, float32(w), float32(h), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))
	setEnabled(gl.BLEND, blendEnabled)
	setEnabled(gl.DEPTH_TEST, depthEnabled)
	setEnabled(gl.CULL_FACE, cullEnabled)
	setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	gl.BindVertexArray(0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("opengl: draw failed (error 0x%x)", e)
	}
	return nil
}

// Delete releases OpenGL resources, including textures still waiting for
// Flush.
func (r *Renderer) Delete() {
	for _, t := range r.graveyard {
		deleteTexture(t)
	}
	r.graveyard = nil
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
	gui.ReleaseDrawList(r.dl)
	r.dl = nil
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func setTextureParams() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func deleteTexture(t *Texture) {
	if t.fbo != 0 {
		gl.DeleteFramebuffers(1, &t.fbo)
		t.fbo = 0
	}
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Linked into the program now
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.New(string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

var (
	_ gui.Renderer        = (*Renderer)(nil)
	_ gui.Flusher         = (*Renderer)(nil)
	_ gui.TextureUploader = (*Renderer)(nil)
)
