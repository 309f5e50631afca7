// Package app implements the editor's main loop: poll input, dispatch it to
// the interaction state machine, and draw the scene.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/scene-editor/internal/config"
	"github.com/Faultbox/scene-editor/internal/editor"
	"github.com/Faultbox/scene-editor/internal/engine/debug"
	"github.com/Faultbox/scene-editor/internal/engine/input"
	"github.com/Faultbox/scene-editor/internal/engine/renderer"
	"github.com/Faultbox/scene-editor/internal/engine/window"
	"github.com/Faultbox/scene-editor/internal/logger"
	"github.com/Faultbox/scene-editor/pkg/math"
)

// App is the editor instance.
type App struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture

	machine *editor.Machine
	ctx     *editor.Context
	mode    editor.Mode
}

// New creates the window, renderer and editor state.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing editor",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{config: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbWidth, fbHeight := a.window.GetDrawableSize()
	bg := cfg.Render.ClearColor
	a.renderer, err = renderer.New(renderer.Config{
		Width:            fbWidth,
		Height:           fbHeight,
		ShadowResolution: cfg.Render.ShadowResolution,
		ClearColor:       math.Vec3{X: bg[0], Y: bg[1], Z: bg[2]},
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	log := logger.Named("editor")
	a.ctx, err = NewContext(cfg, Library(cfg), log)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.machine = editor.New(Steps(cfg), log)
	a.mode = a.machine.Mode()
	a.window.SetTitle(Title(cfg.Window.Title, a.mode))

	width, height := a.window.GetSize()
	a.input = input.New(width, height)
	a.shots = debug.NewScreenshotCapture(cfg.Data.ScreenshotDir, "scene")
	a.machine.Resize(a.ctx, width, height)

	logger.Info("editor initialized", zap.Int("objects", a.ctx.Scene.Len()))
	return a, nil
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true
	pace := newPacer(a.config.Window.FPSLimit, a.config.Logging.FPSInterval, time.Now())

	logger.Info("starting main loop")

	for a.running {
		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.input.Dispatch(a.machine, a.ctx)

		if mode := a.machine.Mode(); mode != a.mode {
			a.mode = mode
			a.window.SetTitle(Title(a.config.Window.Title, mode))
			logger.Debug("mode changed", zap.Stringer("mode", mode))
		}

		capture := false
		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.renderer.Resize(a.window.GetDrawableSize())
			case input.EventScreenshot:
				capture = true
			}
		}

		// 2. Render
		frame := a.ctx.Scene.Frame(a.ctx.View, a.machine.Highlight())
		a.renderer.Draw(&frame)
		if capture {
			a.screenshot()
		}

		// 3. Present (swap buffers)
		a.window.SwapBuffers()

		if fps, ms, ok := pace.frame(time.Now()); ok {
			logger.Debug("fps",
				zap.Float64("fps", fps),
				zap.Float64("ms_per_frame", ms),
				zap.Stringer("mode", a.machine.Mode()),
			)
		}
		if d := pace.wait(time.Now()); d > 0 {
			time.Sleep(d)
		}
	}

	return nil
}

func (a *App) screenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	name, err := a.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// Close cleans up editor resources.
func (a *App) Close() {
	logger.Info("closing editor")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
