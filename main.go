package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/animrule/anim"
	"github.com/automoto/animrule/config"
	"github.com/automoto/animrule/scenes"
	"github.com/automoto/animrule/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Game owns the scene and the animation stack. The stack is the explicit
// per-process registry context: scenes push on entry and pop on exit,
// there is no global animation state.
type Game struct {
	bounds image.Rectangle
	scene  Scene
	stack  *anim.Stack
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(clipsPath string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		stack:  anim.NewStack(),
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, g.stack, clipsPath)
	} else {
		g.scene = scenes.NewMenuScene(g, g.stack, clipsPath)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", false, "skip the menu and go directly to the demo level")
	overlay := flag.Bool("overlay", false, "start with the rule-debug overlay enabled")
	clipsPath := flag.String("clips", "", "clips YAML to hot-reload while the demo runs")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowOverlay = *overlay

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Load persisted settings; flags win over saved state.
	if err := systems.InitPersistence(); err == nil && !*overlay {
		if saved, err := systems.LoadSettings(); err == nil {
			systems.ApplySavedSettings(saved)
		}
	}

	if err := ebiten.RunGame(NewGame(*clipsPath)); err != nil {
		log.Fatal(err)
	}
}
