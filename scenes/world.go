package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/anim"
	"github.com/automoto/animrule/assets"
	cfg "github.com/automoto/animrule/config"
	"github.com/automoto/animrule/systems"
	"github.com/automoto/animrule/systems/factory"
)

// PlatformerScene runs the demo level. Entering it pushes a fresh
// animation registry on the stack; leaving pops it, discarding every
// controller with the scene.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	stack        *anim.Stack
	clipsPath    string
	watcher      *systems.ClipWatcher
	once         sync.Once
}

// NewPlatformerScene creates the demo scene. clipsPath optionally points
// at a clips YAML to hot-reload; empty disables watching.
func NewPlatformerScene(sc SceneChanger, stack *anim.Stack, clipsPath string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, stack: stack, clipsPath: clipsPath}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ps.exit()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) exit() {
	ps.stack.Pop()
	if ps.watcher != nil {
		ps.watcher.Close()
		ps.watcher = nil
	}
	ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.stack, ps.clipsPath))
}

func (ps *PlatformerScene) configure() {
	ps.stack.Push()

	level, err := assets.LoadLevel()
	if err != nil {
		panic("failed to load level: " + err.Error())
	}
	space := factory.CreateSpace(level.Width, level.Height)

	if ps.clipsPath != "" {
		w, err := systems.NewClipWatcher(ps.clipsPath)
		if err != nil {
			log.Printf("clips watch disabled: %v", err)
		} else {
			ps.watcher = w
		}
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePatrol)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	// Animation runs last so it sees this tick's settled velocity and
	// wall contacts.
	ecs.AddSystem(systems.NewUpdateAnimations(ps.stack))
	ecs.AddSystem(systems.NewUpdateClipReload(ps.stack, ps.watcher))
	ecs.AddSystem(systems.UpdateDebugToggle)

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.NewDrawHUD(ps.stack))

	ps.ecs = ecs

	factory.CreateLevel(ecs, space, level)
	factory.CreatePlayer(ecs, space, ps.stack, 48, 280)
	factory.CreateWalker(ecs, space, ps.stack, 200, 320, 1)
	factory.CreateWalker(ecs, space, ps.stack, 380, 144, -1)
	factory.CreateFloatingPlatform(ecs, space, 480, 300, 64, 8)
}
