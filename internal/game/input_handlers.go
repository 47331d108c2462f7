package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	// Key, mouse button and cursor position feed the input manager
	im.SetCallbacks(window)

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		app.Resize(fbWidth, fbHeight)
		// NOTE: Do not render here. Rely on SetRefreshCallback for smooth resizing on macOS.
	})

	// Focus callback
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		app.focused = focused
		if !focused && app.player.CursorLocked {
			app.setCursorLocked(false)
		}
	})

	// Refresh callback
	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
