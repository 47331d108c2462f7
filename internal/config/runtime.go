package config

import "sync"

// RuntimeSettings holds values that can change while the app is running
type RuntimeSettings struct {
	mu               sync.RWMutex
	fpsLimit         int
	mouseSensitivity float32
	showHiddenCamera bool
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit:         DefaultFPSLimit,
	mouseSensitivity: DefaultMouseSensitivity,
}

// ApplyRuntime copies the live tunables out of a loaded config
func ApplyRuntime(c Config) {
	SetFPSLimit(c.FPSLimit)
	SetMouseSensitivity(c.MouseSensitivity)
	SetShowHiddenCamera(c.Mirror.ShowHiddenCamera)
}

// GetFPSLimit returns the frame cap, 0 means uncapped
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > MaxFPSLimit {
		limit = MaxFPSLimit
	}

	globalRuntimeSettings.fpsLimit = limit
}

// GetMouseSensitivity returns the fly camera sensitivity in [0,1]
func GetMouseSensitivity() float32 {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.mouseSensitivity
}

// SetMouseSensitivity sets the fly camera sensitivity
func SetMouseSensitivity(s float32) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.mouseSensitivity = clamp(s, 0, 1)
}

// GetShowHiddenCamera reports whether the virtual camera marker is drawn
func GetShowHiddenCamera() bool {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.showHiddenCamera
}

// SetShowHiddenCamera toggles the virtual camera marker
func SetShowHiddenCamera(show bool) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.showHiddenCamera = show
}
