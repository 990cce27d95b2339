package willowui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background fills the screen before the scene is drawn. The zero value
	// leaves the screen cleared to transparent black.
	Background Color
	// ShowFPS prints the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// Debug enables debug checks and debug logging.
	Debug bool
}

// Run opens a window and drives scene with an ebiten game loop until the
// window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	scene.SetDebugMode(cfg.Debug)
	return ebiten.RunGame(&gameShell{scene: scene, cfg: cfg})
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
}

func (g *gameShell) Update() error {
	g.scene.Update()
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	if g.cfg.Background.A > 0 {
		screen.Fill(g.cfg.Background.RGBA())
	}
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *gameShell) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
