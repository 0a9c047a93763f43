package main

import (
	"flag"
	"log"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/puppet/config"
	"github.com/plus3/puppet/control"
	"github.com/plus3/puppet/debugui"
	imguiebiten "github.com/plus3/puppet/debugui/ebiten"
	"github.com/plus3/puppet/ecs"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// ebitenKeys maps control keys to their platform key codes. Keys missing
// from this table can never reach the event queue.
var ebitenKeys = map[control.Key]ebiten.Key{
	control.KeyW:         ebiten.KeyW,
	control.KeyA:         ebiten.KeyA,
	control.KeyS:         ebiten.KeyS,
	control.KeyD:         ebiten.KeyD,
	control.KeyUp:        ebiten.KeyArrowUp,
	control.KeyDown:      ebiten.KeyArrowDown,
	control.KeyLeft:      ebiten.KeyArrowLeft,
	control.KeyRight:     ebiten.KeyArrowRight,
	control.KeyG:         ebiten.KeyG,
	control.KeySpace:     ebiten.KeySpace,
	control.KeyShiftLeft: ebiten.KeyShiftLeft,
}

type watchedKey struct {
	key      control.Key
	platform ebiten.Key
}

// Game hosts the control loop: it captures platform input into the event
// queue, ticks the scheduler at the fixed step, applies deferred window
// changes, and renders the debug overlay.
type Game struct {
	controller *control.Controller
	backend    imguiebiten.ImguiBackend
	imguiInput *ecs.Singleton[debugui.ImguiInputState]

	watched           []watchedKey
	lastX, lastY      int
	cursorInitialized bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.backend.BeginFrame()

	capture := g.imguiInput.Get()
	if !capture.WantCaptureKeyboard {
		g.pushKeyEvents()
	}
	if !capture.WantCaptureMouse {
		g.pushMouseMotion()
	}

	g.controller.Tick()

	g.backend.EndFrame()

	g.applyWindowChanges()
	return nil
}

// pushKeyEvents emits press and release edges for every bound key. The
// aggregator is level-triggered for movement, so edges are sufficient: a
// held key simply keeps its boolean set.
func (g *Game) pushKeyEvents() {
	for _, w := range g.watched {
		if inpututil.IsKeyJustPressed(w.platform) {
			g.controller.Push(control.KeyEvent(w.key, true))
		}
		if inpututil.IsKeyJustReleased(w.platform) {
			g.controller.Push(control.KeyEvent(w.key, false))
		}
	}
}

func (g *Game) pushMouseMotion() {
	x, y := ebiten.CursorPosition()
	if g.cursorInitialized {
		dx := x - g.lastX
		dy := y - g.lastY
		if dx != 0 || dy != 0 {
			g.controller.Push(control.MouseMotionEvent(float64(dx), float64(dy)))
		}
	}
	g.lastX, g.lastY = x, y
	g.cursorInitialized = true
}

func (g *Game) applyWindowChanges() {
	// The aggregator always requests visibility as the negation of the
	// grab, so the grab alone selects the cursor mode.
	window := g.controller.WindowChanges()
	if window.CursorGrab != nil {
		if *window.CursorGrab {
			ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
	window.Clear()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	overlay := flag.Bool("overlay", true, "show the debug overlay")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("resolve config: %v", err)
	}

	controller := control.NewController(opts)
	controller.SpawnSpinning(mgl32.Vec3{2, 1, -3}, 0.5)

	backend := imguiebiten.New("Puppet", screenWidth, screenHeight)
	imgui.CurrentIO().SetIniFilename("")

	ecs.RegisterComponent[debugui.ImguiItem](controller.Registry)
	imguiInput := ecs.NewSingleton[debugui.ImguiInputState](controller.Storage)
	controller.Scheduler.Register(&debugui.ImguiSystem{})

	if *overlay {
		debugui.SpawnControllerWindow(controller)
		debugui.SpawnSchedulerWindow(controller.Storage, controller.Scheduler)
	}

	watched := make([]watchedKey, 0, len(opts.Bindings.Keys()))
	for _, key := range opts.Bindings.Keys() {
		platform, ok := ebitenKeys[key]
		if !ok {
			log.Fatalf("no platform key code for %q", key)
		}
		watched = append(watched, watchedKey{key: key, platform: platform})
	}

	game := &Game{
		controller: controller,
		backend:    backend,
		imguiInput: imguiInput,
		watched:    watched,
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
