package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jumpking/common"
	"github.com/milk9111/jumpking/levels"
	"github.com/milk9111/jumpking/prefabs"
	"github.com/milk9111/jumpking/sim"
)

const (
	baseWidth  = common.BaseWidth
	baseHeight = common.BaseHeight
)

type Game struct {
	levelName string
	debug     bool

	session     *sim.Session
	playerColor color.Color
	input       *keyboardSource
	camera      *camera
	watcher     *prefabs.Watcher
	pauseUI     *ebitenui.UI

	paused  bool
	restart bool
	quit    bool
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		input:     newKeyboardSource(),
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "levels")
		if err != nil {
			return nil, fmt.Errorf("watch: %w", err)
		}
		slog.Info("watching for changes", "dirs", w.WatchedDirs())
		g.watcher = w
	}
	return g, nil
}

// load builds a fresh session from the level and player spec on disk (or
// embedded). Colliders never change inside a session; edits start a new one.
func (g *Game) load() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	session, err := sim.FromSpecs(lvl, spec)
	if err != nil {
		return err
	}

	g.session = session
	g.playerColor = spec.Color.Or(color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff})
	g.camera = newCamera(lowestTop(session))
	g.input.Reset()
	return nil
}

// lowestTop is the lowest collider top, used to keep the ground in view.
func lowestTop(s *sim.Session) float64 {
	lowest := 0.0
	for i, b := range s.Bodies() {
		top := b.Position.Y + b.HalfExtent.Y
		if i == 0 || top < lowest {
			lowest = top
		}
	}
	return lowest + baseHeight/3
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) resume() {
	g.paused = false
	g.input.Reset()
}

func (g *Game) requestRestart() {
	g.restart = true
	g.paused = false
}

func (g *Game) Update() error {
	if g.quit || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.paused {
			g.resume()
		} else {
			g.paused = true
		}
	}
	g.pollWatcher()

	if g.restart {
		g.restart = false
		if err := g.load(); err != nil {
			slog.Error("restart failed, keeping current session", "err", err)
		}
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.input.Poll()
	g.session.Frame(g.input)
	g.camera.Follow(g.session.PlayerState().Position)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			slog.Info("file changed, restarting session", "path", path)
			g.restart = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				slog.Warn("watcher error", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	player := g.session.PlayerState()
	drawBodies(screen, g.camera, g.session.Bodies(), player, g.session.Alpha(), g.playerColor)
	drawCharge(screen, g.camera, player, g.session.Tuning().Jump.MaxCharge)

	if g.debug {
		drawDebug(screen, g.session)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
