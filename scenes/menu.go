package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/animrule/anim"
	"github.com/automoto/animrule/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ui           *ui.MenuUI
	sceneChanger SceneChanger
	stack        *anim.Stack
	clipsPath    string
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, stack *anim.Stack, clipsPath string) *MenuScene {
	return &MenuScene{sceneChanger: sc, stack: stack, clipsPath: clipsPath}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ui = ui.NewMenuUI(
		func() {
			ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.stack, ms.clipsPath))
		},
		func() {
			os.Exit(0)
		},
	)
}
