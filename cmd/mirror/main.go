package main

import (
	"flag"
	"log"
	"runtime"

	"planar-mirror/internal/config"
	"planar-mirror/internal/game"
	"planar-mirror/internal/graphics"
	"planar-mirror/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	captureDir := flag.String("capture", "", "directory for reflection captures (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *captureDir != "" {
		cfg.CaptureDir = *captureDir
	}
	config.ApplyRuntime(cfg)

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	closer.Bind(glfw.Terminate)

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		closer.Fatalln(err)
	}

	im := input.NewInputManager()
	app, err := game.NewApp(window, im, cfg, *configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	// closer runs hooks in reverse order: GL resources go before the context
	closer.Bind(graphics.ReleaseTextures)
	closer.Bind(app.Dispose)

	game.SetupInputHandlers(app)
	app.Run()

	closer.Close()
}
