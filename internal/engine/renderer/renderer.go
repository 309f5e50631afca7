// Package renderer draws scene frames with OpenGL: a point light shadow cube
// pass followed by lit and wireframe passes per object.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-editor/internal/engine/debug"
	"github.com/Faultbox/scene-editor/internal/engine/shader"
	"github.com/Faultbox/scene-editor/internal/engine/shadow"
	"github.com/Faultbox/scene-editor/internal/logger"
	"github.com/Faultbox/scene-editor/internal/scene"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width            int
	Height           int
	ShadowResolution int32
	ClearColor       math.Vec3
}

var (
	// wireColor is used for the wire overlay of flat+wire objects.
	wireColor = math.Vec3{}
	// selectionColor outlines the highlighted object.
	selectionColor = math.Vec3{X: 1, Y: 1}
)

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	lit      *shader.Program
	wire     *shader.Program
	depth    *shader.Program
	shadowFB *shadow.CubeMap
	box      *lineBuffer

	meshes map[scene.ObjectID]*gpuMesh
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[scene.ObjectID]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.ClearColor.X, cfg.ClearColor.Y, cfg.ClearColor.Z, 1.0)

	var err error
	if r.lit, err = shader.NewProgram(litVertexSrc, litFragmentSrc); err != nil {
		return nil, fmt.Errorf("lit program: %w", err)
	}
	if r.wire, err = shader.NewProgram(wireVertexSrc, wireFragmentSrc); err != nil {
		r.Close()
		return nil, fmt.Errorf("wire program: %w", err)
	}
	if r.depth, err = shader.NewProgram(shadowVertexSrc, shadowFragmentSrc); err != nil {
		r.Close()
		return nil, fmt.Errorf("shadow program: %w", err)
	}

	r.box = newLineBuffer(debug.BoxVertexCount)

	r.shadowFB = shadow.NewCubeMap(cfg.ShadowResolution)
	if !r.shadowFB.IsValid() {
		logger.Warn("shadow cube map unavailable, rendering without shadows")
		r.shadowFB = nil
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for id, m := range r.meshes {
		m.destroy()
		delete(r.meshes, id)
	}
	if r.shadowFB != nil {
		r.shadowFB.Destroy()
	}
	if r.box != nil {
		r.box.destroy()
	}
	for _, p := range []*shader.Program{r.lit, r.wire, r.depth} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame.
func (r *Renderer) Draw(f *scene.Frame) {
	r.sync(f)

	if r.shadowFB != nil {
		r.drawShadows(f)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	for i := range f.Objects {
		r.drawObject(f, &f.Objects[i])
	}
	r.drawSelection(f)
}

// ReadPixels returns the current color buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// sync uploads new meshes and frees buffers of objects no longer in the frame.
func (r *Renderer) sync(f *scene.Frame) {
	live := make(map[scene.ObjectID]struct{}, len(f.Objects))
	for _, obj := range f.Objects {
		live[obj.ID] = struct{}{}
		if m, ok := r.meshes[obj.ID]; ok && m.src == obj.Mesh {
			continue
		} else if ok {
			m.destroy()
		}
		r.meshes[obj.ID] = uploadMesh(obj.Mesh)
	}
	for id, m := range r.meshes {
		if _, ok := live[id]; !ok {
			m.destroy()
			delete(r.meshes, id)
		}
	}
}

func (r *Renderer) drawShadows(f *scene.Frame) {
	r.shadowFB.Begin()
	r.depth.Use()
	r.depth.SetVec3("uLight", f.Light)
	r.depth.SetFloat("uFar", f.Far)

	for face := shadow.Face(0); face < shadow.FaceCount; face++ {
		r.shadowFB.BindFace(face)
		r.depth.SetMat4("uShadow", f.Shadow[face])
		for _, obj := range f.Objects {
			r.depth.SetMat4("uModel", obj.Model)
			r.meshes[obj.ID].draw()
		}
	}
	r.shadowFB.End()
}

func (r *Renderer) drawObject(f *scene.Frame, obj *scene.FrameObject) {
	mesh := r.meshes[obj.ID]

	switch obj.Mode {
	case scene.ModeWire:
		r.drawWire(f, obj, mesh, obj.Color)
	case scene.ModeFlatWire:
		r.drawLit(f, obj, mesh, true, 0)
		// Pull the fill back so the overlay lines win the depth test.
		gl.Enable(gl.POLYGON_OFFSET_LINE)
		gl.PolygonOffset(-1, -1)
		r.drawWire(f, obj, mesh, wireColor)
		gl.Disable(gl.POLYGON_OFFSET_LINE)
	case scene.ModePhong:
		r.drawLit(f, obj, mesh, false, 0)
	case scene.ModePhongMirror, scene.ModePhongMirrorDynamic:
		r.drawLit(f, obj, mesh, false, 0.5)
	case scene.ModePhongRefract:
		r.drawLit(f, obj, mesh, false, 0.3)
	case scene.ModeFlatMirror:
		r.drawLit(f, obj, mesh, true, 0.5)
	case scene.ModeFlatRefract:
		r.drawLit(f, obj, mesh, true, 0.3)
	}
}

func (r *Renderer) drawLit(f *scene.Frame, obj *scene.FrameObject, mesh *gpuMesh, flat bool, reflect float32) {
	p := r.lit
	p.Use()
	p.SetMat4("uModel", obj.Model)
	p.SetMat3("uNormal", obj.Normal)
	p.SetMat4("uView", f.View)
	p.SetMat4("uProj", f.Proj)
	p.SetMat4("uAspect", f.AspectRatio)
	p.SetVec3("uColor", obj.Color)
	p.SetVec3("uEye", f.Eye)
	p.SetVec3("uLight", f.Light)
	p.SetBool("uFlat", flat)
	p.SetFloat("uReflect", reflect)
	p.SetFloat("uFar", f.Far)
	p.SetBool("uRedShadow", f.RedShadow)
	p.SetInt("uDepthMap", 0)
	if r.shadowFB != nil {
		r.shadowFB.BindTexture(gl.TEXTURE0)
	}
	mesh.draw()
}

func (r *Renderer) drawWire(f *scene.Frame, obj *scene.FrameObject, mesh *gpuMesh, color math.Vec3) {
	p := r.wire
	p.Use()
	p.SetMat4("uModel", obj.Model)
	p.SetMat4("uView", f.View)
	p.SetMat4("uProj", f.Proj)
	p.SetMat4("uAspect", f.AspectRatio)
	p.SetVec3("uColor", color)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	mesh.draw()
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// drawSelection outlines the highlighted object's world bounds.
func (r *Renderer) drawSelection(f *scene.Frame) {
	lines := debug.BoxLines(f.Selection, debug.SelectionPadding)
	if lines == nil {
		return
	}
	r.box.update(lines)

	p := r.wire
	p.Use()
	p.SetMat4("uModel", math.Identity())
	p.SetMat4("uView", f.View)
	p.SetMat4("uProj", f.Proj)
	p.SetMat4("uAspect", f.AspectRatio)
	p.SetVec3("uColor", selectionColor)
	r.box.draw()
}
