// Package viewer implements the interactive mesh viewer loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/trimesh/internal/config"
	"github.com/Faultbox/trimesh/internal/engine/anim"
	"github.com/Faultbox/trimesh/internal/engine/camera"
	"github.com/Faultbox/trimesh/internal/engine/input"
	"github.com/Faultbox/trimesh/internal/engine/mesh"
	"github.com/Faultbox/trimesh/internal/engine/renderer"
	"github.com/Faultbox/trimesh/internal/engine/texture"
	"github.com/Faultbox/trimesh/internal/engine/window"
	"github.com/Faultbox/trimesh/internal/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// panSpeed is the camera movement rate in units per second.
const panSpeed float32 = 3

// Viewer owns the window, renderer, input handler, camera, and the scene
// being displayed.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.MeshCamera
	model    *mesh.Model
}

// New creates a viewer from the loaded configuration. The window and GL
// context are created here; the scene is built immediately after.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("camera_mode", cfg.Camera.Mode),
	)

	v := &Viewer{
		config: cfg,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "trimesh viewer",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window created
	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	v.camera = camera.New(
		cfg.Camera.FOV,
		cfg.Camera.X, cfg.Camera.Y, cfg.Camera.Z,
		cfg.Camera.Near, cfg.Camera.Far,
	)
	if cfg.Camera.Mode == "free" {
		v.camera.SetMode(camera.ModeFree)
	}

	if err := v.buildScene(); err != nil {
		v.renderer.Close()
		v.window.Close()
		return nil, err
	}

	logger.Info("viewer initialized")
	return v, nil
}

// buildScene creates the demo model: a vertex-colored cube, textured when
// the config names a TGA file, spinning at the configured rate.
func (v *Viewer) buildScene() error {
	var tex *texture.Texture
	if path := v.config.Scene.Texture; path != "" {
		t, err := texture.LoadTGA(path)
		if err != nil {
			return fmt.Errorf("failed to load texture %s: %w", path, err)
		}
		tex = t
		logger.Info("texture loaded",
			zap.String("path", path),
			zap.Int("width", t.Width),
			zap.Int("height", t.Height),
		)
	}

	m := mesh.New(tex, "", 0, 0, 0)

	// Cube corners with one color per corner
	positions := [8][3]float32{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	colors := [8]uint32{
		0xff4444, 0x44ff44, 0x4444ff, 0xffff44,
		0xff44ff, 0x44ffff, 0xffffff, 0x888888,
	}
	uvs := [8][2]float32{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{1, 0}, {0, 0}, {0, 1}, {1, 1},
	}

	var idx [8]int
	for i := range positions {
		p := positions[i]
		idx[i] = m.AddVertex(p[0], p[1], p[2], uvs[i][0], uvs[i][1], colors[i], 1)
	}

	quads := [6][4]int{
		{0, 1, 2, 3}, // back
		{5, 4, 7, 6}, // front
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}
	for _, q := range quads {
		m.AddFace(idx[q[0]], idx[q[1]], idx[q[2]])
		m.AddFace(idx[q[0]], idx[q[2]], idx[q[3]])
	}

	if rate := v.config.Scene.SpinRate; rate != 0 {
		m.SetAnimator(&anim.Spin{Rate: rate})
	}

	v.model = m
	logger.Debug("scene built",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("faces", m.FaceCount()),
	)
	return nil
}

// Run starts the main loop and blocks until quit.
func (v *Viewer) Run() error {
	v.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		elapsed := now.Sub(start).Seconds()

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()
		v.handleHeldKeys(float32(dt))

		v.model.PreUpdate(elapsed, dt)

		width, height := v.window.DrawableSize()
		v.camera.Update(float32(width), float32(height))

		v.renderer.Begin()
		v.renderer.Draw(v.model, v.camera)
		v.renderer.End()

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.config.Graphics.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("trimesh viewer (%d fps)", frameCount))
			}
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents processes the discrete events from the last poll.
func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.renderer.Resize(event.Width, event.Height)
		case input.EventMouseWheel:
			v.camera.PanZ(float32(-event.WheelY) * 0.5)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
			case sdl.SCANCODE_TAB:
				v.toggleCameraMode()
			}
		}
	}
}

// handleHeldKeys applies continuous camera movement.
func (v *Viewer) handleHeldKeys(dt float32) {
	step := panSpeed * dt

	if v.input.IsKeyHeld(sdl.SCANCODE_A) {
		v.camera.PanX(-step)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_D) {
		v.camera.PanX(step)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_Q) {
		v.camera.PanY(-step)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_E) {
		v.camera.PanY(step)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_W) {
		v.camera.PanZ(-step)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_S) {
		v.camera.PanZ(step)
	}

	if v.input.IsKeyHeld(sdl.SCANCODE_LEFT) {
		v.camera.SetRotationY(v.camera.RotationY() - dt)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_RIGHT) {
		v.camera.SetRotationY(v.camera.RotationY() + dt)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_UP) {
		v.camera.SetRotationX(v.camera.RotationX() - dt)
	}
	if v.input.IsKeyHeld(sdl.SCANCODE_DOWN) {
		v.camera.SetRotationX(v.camera.RotationX() + dt)
	}
}

func (v *Viewer) toggleCameraMode() {
	if v.camera.Mode() == camera.ModeOrbit {
		v.camera.SetMode(camera.ModeFree)
	} else {
		v.camera.SetMode(camera.ModeOrbit)
	}
	logger.Info("camera mode switched", zap.Stringer("mode", v.camera.Mode()))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.model != nil {
		v.renderer.Forget(v.model)
		v.model.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
