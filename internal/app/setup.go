package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-editor/internal/config"
	"github.com/Faultbox/scene-editor/internal/editor"
	"github.com/Faultbox/scene-editor/internal/engine/camera"
	"github.com/Faultbox/scene-editor/internal/scene"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// ViewConfig converts the camera section to a view configuration.
func ViewConfig(cfg *config.Config) camera.Config {
	c := cfg.Camera
	return camera.Config{
		Near:   c.Near,
		Far:    c.Far,
		FOV:    c.FOV,
		Orbit:  camera.NewTrackball(c.Radius, c.Beta, c.Phi),
		ViewUp: math.Vec3{Y: 1},
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	}
}

// Steps converts the editor section to per-keypress increments.
func Steps(cfg *config.Config) editor.Steps {
	e := cfg.Editor
	return editor.Steps{
		Translate: e.TranslateStep,
		Rotate:    e.RotateStep,
		Scale:     e.ScaleStep,
		Camera:    e.CameraStep,
		Light:     e.LightStep,
	}
}

// Library builds the mesh library from the data section.
func Library(cfg *config.Config) *scene.Library {
	d := cfg.Data
	return scene.NewLibrary(map[scene.Template]string{
		scene.Cube:      d.MeshPath(d.Cube),
		scene.BumpyCube: d.MeshPath(d.BumpyCube),
		scene.Bunny:     d.MeshPath(d.Bunny),
	})
}

// NewContext creates the scene and view described by cfg and inserts the
// startup templates. A startup template that fails to load is logged and
// skipped.
func NewContext(cfg *config.Config, source scene.MeshSource, log *zap.Logger) (*editor.Context, error) {
	p := cfg.Light.Position
	light, err := scene.NewLight(math.Vec3{X: p[0], Y: p[1], Z: p[2]})
	if err != nil {
		return nil, fmt.Errorf("placing light: %w", err)
	}

	s := scene.New(source, light)
	for _, name := range cfg.Data.Startup {
		tmpl, err := scene.ParseTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("startup template: %w", err)
		}
		if _, err := s.Add(tmpl); err != nil {
			log.Warn("startup mesh unavailable", zap.Stringer("template", tmpl), zap.Error(err))
		}
	}

	return &editor.Context{
		Scene: s,
		View:  camera.NewViewControl(ViewConfig(cfg)),
	}, nil
}

// Title is the window title shown while the editor is in mode.
func Title(base string, mode editor.Mode) string {
	return fmt.Sprintf("%s [%s]", base, mode)
}
