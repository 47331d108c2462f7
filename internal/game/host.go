package game

import (
	"planar-mirror/internal/graphics"
	"planar-mirror/internal/player"
	"planar-mirror/internal/reflection"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// windowScreen reports the framebuffer size, which differs from the window
// size on high-DPI displays
type windowScreen struct {
	window *glfw.Window
}

func (s windowScreen) Size() (int, int) {
	return s.window.GetFramebufferSize()
}

// mainCamera combines the fly camera pose with the projection settings
type mainCamera struct {
	player *player.Player
	camera *graphics.Camera
}

func (c mainCamera) MainCamera() (reflection.CameraParams, bool) {
	if c.player == nil || c.camera == nil {
		return reflection.CameraParams{}, false
	}
	return c.camera.Params(c.player.GetViewMatrix(), c.player.GetEyePosition()), true
}
