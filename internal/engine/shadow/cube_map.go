package shadow

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// CubeMap is a depth-only cube map framebuffer for point light shadows.
// Each face is rendered in its own pass; the fragment shader writes the
// linear distance to the light divided by the far plane.
type CubeMap struct {
	FBO          uint32   // Framebuffer object
	DepthTexture uint32   // Depth cube texture for shadow sampling
	Resolution   int32    // Face resolution (width = height)
	prevViewport [4]int32 // Saved viewport for restore
}

// DefaultResolution is the default per-face resolution.
const DefaultResolution = 1024

// NewCubeMap creates a depth cube map with the given per-face resolution.
// Returns nil if the framebuffer is incomplete.
func NewCubeMap(resolution int32) *CubeMap {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	cm := &CubeMap{
		Resolution: resolution,
	}

	gl.GenTextures(1, &cm.DepthTexture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cm.DepthTexture)
	for i := uint32(0); i < FaceCount; i++ {
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+i,
			0,
			gl.DEPTH_COMPONENT24,
			resolution,
			resolution,
			0,
			gl.DEPTH_COMPONENT,
			gl.FLOAT,
			nil,
		)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.GenFramebuffers(1, &cm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, cm.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_CUBE_MAP_POSITIVE_X, cm.DepthTexture, 0)

	// No color buffer for shadow pass
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.DeleteFramebuffers(1, &cm.FBO)
		gl.DeleteTextures(1, &cm.DepthTexture)
		return nil
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	return cm
}

// Begin binds the framebuffer and sets the viewport for the depth passes.
func (cm *CubeMap) Begin() {
	gl.GetIntegerv(gl.VIEWPORT, &cm.prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, cm.FBO)
	gl.Viewport(0, 0, cm.Resolution, cm.Resolution)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

// BindFace attaches face f as the depth target and clears it.
func (cm *CubeMap) BindFace(f Face) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(f), cm.DepthTexture, 0)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// End unbinds the framebuffer and restores the previous viewport.
func (cm *CubeMap) End() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(cm.prevViewport[0], cm.prevViewport[1], cm.prevViewport[2], cm.prevViewport[3])
}

// BindTexture binds the depth cube texture to the specified texture unit.
func (cm *CubeMap) BindTexture(textureUnit uint32) {
	gl.ActiveTexture(textureUnit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cm.DepthTexture)
}

// Destroy releases all GPU resources associated with this cube map.
func (cm *CubeMap) Destroy() {
	if cm.FBO != 0 {
		gl.DeleteFramebuffers(1, &cm.FBO)
		cm.FBO = 0
	}
	if cm.DepthTexture != 0 {
		gl.DeleteTextures(1, &cm.DepthTexture)
		cm.DepthTexture = 0
	}
}

// IsValid returns true if the cube map was created successfully.
func (cm *CubeMap) IsValid() bool {
	return cm != nil && cm.FBO != 0 && cm.DepthTexture != 0
}
