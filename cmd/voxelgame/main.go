package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"voxelgame/internal/config"
	"voxelgame/internal/gen"
	"voxelgame/internal/graphics"
	"voxelgame/internal/profiling"
	"voxelgame/internal/world"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	worldChunksX = 6
	worldChunksZ = 6
	worldSeed    = 12345

	shadowMapSize = 2048
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("window setup: %v", err)
	}

	if err := gl.Init(); err != nil {
		log.Fatalf("gl init: %v", err)
	}

	renderer, err := graphics.NewRenderer(shadowMapSize)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	defer renderer.Delete()

	w := buildWorld()
	rebuilt := renderer.RebuildDirty(w)
	log.Printf("meshed %d chunks (%d uploaded)", rebuilt, renderer.MeshCount())

	camera := graphics.NewCamera(70, float32(windowWidth)/float32(windowHeight), 0.1, 1000)
	camera.Position = mgl32.Vec3{32, 32, 32}
	camera.SetRotation(-45, -30)

	app := &app{
		window:   window,
		world:    w,
		renderer: renderer,
		camera:   camera,
	}
	app.setupInput()
	app.run()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "voxelgame", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	glfw.SwapInterval(1)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func buildWorld() *world.World {
	start := time.Now()

	w := world.New()
	g := gen.NewGenerator(worldSeed)
	g.Generate(w, worldChunksX, worldChunksZ)

	// Link after generation so border faces against neighbor chunks cull
	// correctly, then remesh everything with the links in place.
	w.LinkNeighbors()
	w.MarkAllDirty()

	log.Printf("generated %d chunks in %v", w.Len(), time.Since(start))
	return w
}

type app struct {
	window   *glfw.Window
	world    *world.World
	renderer *graphics.Renderer
	camera   *graphics.Camera

	firstMouse   bool
	lastMouseX   float64
	lastMouseY   float64
	wireframe    bool
	dayTime      float64
	takeShotNext bool
	shotCounter  int
}

func (a *app) setupInput() {
	a.firstMouse = true

	a.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if a.firstMouse {
			a.lastMouseX, a.lastMouseY = x, y
			a.firstMouse = false
			return
		}
		const sensitivity = 0.1
		dx := float32(x-a.lastMouseX) * sensitivity
		dy := float32(a.lastMouseY-y) * sensitivity
		a.lastMouseX, a.lastMouseY = x, y
		a.camera.Rotate(dx, dy)
	})

	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyF1:
			a.wireframe = !a.wireframe
			if a.wireframe {
				gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
			} else {
				gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
			}
		case glfw.KeyF2:
			a.takeShotNext = true
		case glfw.KeyF3:
			config.SetShadowsEnabled(!config.ShadowsEnabled())
			log.Printf("shadows: %v", config.ShadowsEnabled())
		case glfw.KeyF4:
			config.SetDayNightEnabled(!config.DayNightEnabled())
			log.Printf("day-night cycle: %v", config.DayNightEnabled())
		}
	})
}

func (a *app) run() {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.5, 0.7, 1.0, 1.0)

	frames := 0
	lastFPSCheck := time.Now()
	lastTime := time.Now()

	for !a.window.ShouldClose() {
		profiling.ResetFrame()

		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		a.handleMovement(float32(dt))
		a.updateLight(dt)

		if n := a.renderer.RebuildDirty(a.world); n > 0 {
			log.Printf("remeshed %d dirty chunks", n)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		a.renderer.Render(a.camera)

		if a.takeShotNext {
			a.takeShotNext = false
			if err := a.saveScreenshot(); err != nil {
				log.Printf("screenshot: %v", err)
			}
		}

		a.window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if time.Since(lastFPSCheck) >= time.Second {
			fmt.Println("FPS: ", frames)
			frames = 0
			lastFPSCheck = time.Now()
		}
	}
}

func (a *app) handleMovement(dt float32) {
	speed := config.MovementSpeed() * dt

	if a.window.GetKey(glfw.KeyW) == glfw.Press {
		a.camera.MoveForward(speed)
	}
	if a.window.GetKey(glfw.KeyS) == glfw.Press {
		a.camera.MoveForward(-speed)
	}
	if a.window.GetKey(glfw.KeyA) == glfw.Press {
		a.camera.MoveRight(-speed)
	}
	if a.window.GetKey(glfw.KeyD) == glfw.Press {
		a.camera.MoveRight(speed)
	}
	if a.window.GetKey(glfw.KeySpace) == glfw.Press {
		a.camera.MoveUp(speed)
	}
	if a.window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		a.camera.MoveUp(-speed)
	}
}

// updateLight swings the sun across the sky when the day-night cycle is on.
// The sun never drops fully below the horizon so the scene stays readable.
func (a *app) updateLight(dt float64) {
	if !config.DayNightEnabled() {
		return
	}
	a.dayTime += dt * float64(config.DayNightSpeed())

	angle := a.dayTime * 2 * math.Pi
	y := float32(math.Abs(math.Sin(angle)))*0.8 + 0.2
	a.renderer.SetLightDirection(mgl32.Vec3{
		float32(math.Cos(angle)),
		y,
		0.3,
	})
}

func (a *app) saveScreenshot() error {
	width, height := a.window.GetFramebufferSize()

	pixels := make([]uint8, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom-up; flip while copying.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(img.Pix[y*img.Stride:], src)
	}

	if err := os.MkdirAll("screenshots", 0o755); err != nil {
		return err
	}
	name := filepath.Join("screenshots",
		fmt.Sprintf("screenshot_%s_%d.png", time.Now().Format("20060102_150405"), a.shotCounter))
	a.shotCounter++

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	log.Printf("screenshot saved to %s", name)
	return nil
}
