package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/scene-editor/internal/config"
	"github.com/Faultbox/scene-editor/internal/editor"
	"github.com/Faultbox/scene-editor/internal/engine/camera"
	"github.com/Faultbox/scene-editor/internal/scene"
)

func TestViewConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.FOV = 60
	cfg.Window.Width = 1024

	vc := ViewConfig(cfg)
	if vc.FOV != 60 || vc.Width != 1024 || vc.Height != 600 {
		t.Errorf("unexpected view config %+v", vc)
	}
	if vc.Orbit != camera.NewTrackball(5, 90, 0) {
		t.Errorf("orbit = %+v", vc.Orbit)
	}
}

func TestSteps(t *testing.T) {
	cfg := config.Default()
	cfg.Editor.RotateStep = 45

	s := Steps(cfg)
	if s.Rotate != 45 || s.Translate != 0.1 || s.Light != 0.1 {
		t.Errorf("unexpected steps %+v", s)
	}
}

func TestNewContextStartup(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Startup = []string{"plane", "cube"}

	ctx, err := NewContext(cfg, scene.Builtin{}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.Scene.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ctx.Scene.Len())
	}
	if ctx.Scene.At(0).DisplayMode() != scene.ModeFlatWire {
		t.Errorf("plane mode = %v", ctx.Scene.At(0).DisplayMode())
	}
	if ctx.View.ScreenWidth() != cfg.Window.Width {
		t.Errorf("screen width = %d", ctx.View.ScreenWidth())
	}
}

func TestNewContextSkipsMissingMesh(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Startup = []string{"bunny", "plane"}

	core, logs := observer.New(zapcore.WarnLevel)
	ctx, err := NewContext(cfg, scene.Builtin{}, zap.New(core))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if ctx.Scene.Len() != 1 {
		t.Errorf("Len = %d, want 1", ctx.Scene.Len())
	}
	if logs.Len() != 1 {
		t.Errorf("logged %d warnings, want 1", logs.Len())
	}
}

func TestNewContextErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Startup = []string{"teapot"}
	if _, err := NewContext(cfg, scene.Builtin{}, zap.NewNop()); !errors.Is(err, scene.ErrUnknownTemplate) {
		t.Errorf("unknown template err = %v", err)
	}

	cfg = config.Default()
	cfg.Light.Position = [3]float32{}
	if _, err := NewContext(cfg, scene.Builtin{}, zap.NewNop()); !errors.Is(err, camera.ErrDegenerate) {
		t.Errorf("light at origin err = %v", err)
	}
}

func TestLibraryReadsConfiguredMeshes(t *testing.T) {
	dir := t.TempDir()
	off := "OFF\n3 1 0\n0 0 0\n4 0 0\n0 4 0\n3 0 1 2\n"
	if err := os.WriteFile(filepath.Join(dir, "bunny.off"), []byte(off), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Data.MeshDir = dir
	cfg.Data.Startup = []string{"bunny"}

	ctx, err := NewContext(cfg, Library(cfg), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Scene.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ctx.Scene.Len())
	}
	// Unitized to a largest extent of 1.
	if got := ctx.Scene.At(0).Mesh().Bounds().Size().X; got != 1 {
		t.Errorf("bunny width = %v, want 1", got)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		mode editor.Mode
		want string
	}{
		{editor.ModeDefault, "Scene Editor [default]"},
		{editor.ModeMove, "Scene Editor [move]"},
		{editor.ModeLight, "Scene Editor [light]"},
	}
	for _, tt := range tests {
		if got := Title("Scene Editor", tt.mode); got != tt.want {
			t.Errorf("Title(%v) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
