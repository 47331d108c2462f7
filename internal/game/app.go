package game

import (
	"errors"
	"log"
	"time"

	"planar-mirror/internal/config"
	"planar-mirror/internal/graphics"
	"planar-mirror/internal/graphics/renderables/crosshair"
	"planar-mirror/internal/graphics/renderables/objects"
	"planar-mirror/internal/graphics/renderables/surface"
	"planar-mirror/internal/graphics/renderables/wireframe"
	"planar-mirror/internal/graphics/renderer"
	standardInput "planar-mirror/internal/input"
	"planar-mirror/internal/mirror"
	"planar-mirror/internal/player"
	"planar-mirror/internal/profiling"
	"planar-mirror/internal/reflection"
	"planar-mirror/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// SlowFrame is the processing time above which a frame breakdown is logged
const SlowFrame = 16 * time.Millisecond

// App owns the window, the demo scene and the mirror, and runs the frame loop
type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager
	configPath   string

	renderer *renderer.Renderer
	surface  *surface.Surface
	scene    *scene.Scene
	player   *player.Player
	mirror   *mirror.Mirror
	capturer *graphics.Capturer

	focused bool
	// windowed geometry restored when leaving fullscreen
	windowedX, windowedY, windowedW, windowedH int

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp builds the scene, renderer and mirror. configPath is re-read on
// reload; empty means the settings only come from cfg.
func NewApp(window *glfw.Window, im *standardInput.InputManager, cfg config.Config, configPath string) (*App, error) {
	demo := scene.Demo()
	gamePlayer := player.NewPlayer(mgl32.Vec3{0, 2, 9})

	a := &App{
		window:       window,
		inputManager: im,
		configPath:   configPath,
		scene:        demo,
		player:       gamePlayer,
		capturer:     &graphics.Capturer{Dir: cfg.CaptureDir},
		focused:      true,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}

	a.surface = surface.NewSurface(demo, cfg.Mirror.TextureSlot)
	width, height := window.GetFramebufferSize()

	// Initialize renderer with all features
	r, err := renderer.NewRenderer(width, height,
		objects.NewObjects(demo, cfg.TextureDir),
		a.surface,
		wireframe.NewWireframe(a.virtualCamera),
		crosshair.NewCrosshair(),
	)
	if err != nil {
		return nil, err
	}
	a.renderer = r

	a.mirror = mirror.New(demo.Surface.Name, mirror.Host{
		Screen:    windowScreen{window: window},
		Camera:    mainCamera{player: gamePlayer, camera: r.GetCamera()},
		Surface:   demo,
		Renderer:  r,
		Culling:   graphics.Culling{},
		Material:  a.surface.Material(),
		Allocator: graphics.FramebufferAllocator{},
	})
	if err := a.mirror.Initialize(cfg.Mirror); err != nil {
		r.Dispose()
		return nil, err
	}

	a.windowedX, a.windowedY = window.GetPos()
	a.windowedW, a.windowedH = window.GetSize()
	return a, nil
}

func (a *App) virtualCamera() (reflection.VirtualCamera, bool) {
	return a.mirror.VirtualCamera()
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.handleInputActions()
	func() {
		defer profiling.Track("player.Update")()
		a.player.Update(a.inputManager, dt)
	}()
	a.scene.Update(dt)

	a.renderer.BeginFrame(dt)
	a.renderFrame()

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	// Check if frame took too long
	processingDuration := time.Since(startTick)
	if processingDuration > SlowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait(!a.focused)
}

// renderFrame runs the mirror after the camera moved, then the main view
// that samples its texture
func (a *App) renderFrame() {
	if err := a.mirror.LateUpdate(); err != nil {
		if errors.Is(err, reflection.ErrUnknownAxis) {
			log.Printf("mirror disabled: %v", err)
			a.mirror.SetEnabled(false)
		} else {
			log.Printf("mirror frame failed: %v", err)
		}
	}
	a.renderer.Render(a.player.GetViewMatrix(), a.player.GetEyePosition())
}

func (a *App) handleInputActions() {
	im := a.inputManager

	if im.JustPressed(standardInput.ActionToggleCursor) {
		a.setCursorLocked(!a.player.CursorLocked)
	}

	if im.JustPressed(standardInput.ActionToggleFullscreen) {
		a.toggleFullscreen()
	}

	if im.JustPressed(standardInput.ActionToggleHiddenCamera) {
		config.SetShowHiddenCamera(!config.GetShowHiddenCamera())
	}

	if im.JustPressed(standardInput.ActionToggleMirror) {
		a.mirror.SetEnabled(!a.mirror.Enabled())
		log.Printf("mirror enabled: %v", a.mirror.Enabled())
	}

	if im.JustPressed(standardInput.ActionCapture) {
		a.capture()
	}

	if im.JustPressed(standardInput.ActionToggleProfiling) {
		log.Printf("Frame: %s", profiling.TopN(8))
	}

	if im.JustPressed(standardInput.ActionReloadConfig) {
		a.reloadConfig()
	}
}

func (a *App) setCursorLocked(locked bool) {
	a.player.CursorLocked = locked
	if locked {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	a.inputManager.ResetCursor()
}

func (a *App) toggleFullscreen() {
	if a.window.GetMonitor() != nil {
		a.window.SetMonitor(nil, a.windowedX, a.windowedY, a.windowedW, a.windowedH, 0)
		return
	}
	a.windowedX, a.windowedY = a.window.GetPos()
	a.windowedW, a.windowedH = a.window.GetSize()

	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	a.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

func (a *App) capture() {
	fb, ok := a.mirror.Target().(*graphics.Framebuffer)
	if !ok {
		log.Printf("capture skipped: no reflection target")
		return
	}
	w, h := a.window.GetFramebufferSize()
	path, err := a.capturer.Capture(fb, w, h)
	if err != nil {
		log.Printf("capture failed: %v", err)
		return
	}
	log.Printf("captured %s", path)
}

// reloadConfig re-reads the config file and re-initializes the mirror. Without
// a file the mirror re-applies its current settings.
func (a *App) reloadConfig() {
	if a.configPath == "" {
		if err := a.mirror.OnSceneSave(); err != nil {
			log.Printf("mirror refresh failed: %v", err)
		}
		return
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		log.Printf("reload failed: %v", err)
		return
	}
	config.ApplyRuntime(cfg)
	a.capturer.Dir = cfg.CaptureDir
	if err := a.mirror.Initialize(cfg.Mirror); err != nil {
		log.Printf("mirror reinitialize failed: %v", err)
		return
	}
	a.mirror.SetEnabled(true)
	log.Printf("reloaded %s", a.configPath)
}

// Resize updates the viewport and the mirror's target for a new framebuffer size
func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.renderer.UpdateViewport(width, height)
	if err := a.mirror.OnResize(width, height); err != nil {
		log.Printf("mirror resize failed: %v", err)
	}
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.renderFrame()
	a.window.SwapBuffers()
}

// Dispose releases the mirror target and all renderables
func (a *App) Dispose() {
	a.mirror.Shutdown()
	a.renderer.Dispose()
}
