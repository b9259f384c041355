package game

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/piverse/internal/audio"
	"github.com/iburimskiy/piverse/internal/render"
	"github.com/iburimskiy/piverse/internal/view"
)

var viewKeys = map[ebiten.Key]string{
	ebiten.Key1: view.NameRadial,
	ebiten.Key2: view.NameCloud,
	ebiten.Key3: view.NamePattern,
	ebiten.Key4: view.NameArt,
}

func (g *Game) handleInput() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for k, name := range viewKeys {
		if justPressed(k) && name != g.view.Name() {
			if err := g.activate(name); err != nil {
				g.lastErr = err
			}
		}
	}

	switch v := g.view.(type) {
	case *view.Pattern:
		g.driver.Do(func() {
			p := &v.Params
			if justPressed(ebiten.KeyArrowUp) {
				p.GrowRadius()
			}
			if justPressed(ebiten.KeyArrowDown) {
				p.ShrinkRadius()
			}
			if justPressed(ebiten.KeyArrowRight) {
				p.MoreDetail()
			}
			if justPressed(ebiten.KeyArrowLeft) {
				p.LessDetail()
			}
			if justPressed(ebiten.KeyBracketRight) {
				p.Faster()
			}
			if justPressed(ebiten.KeyBracketLeft) {
				p.Slower()
			}
			if justPressed(ebiten.KeyR) {
				p.ToggleAutoRotate()
			}
			if justPressed(ebiten.KeyD) {
				p.ToggleDigits()
			}
			if justPressed(ebiten.KeyL) {
				p.ToggleLines()
			}
		})
	case *view.Art:
		g.driver.Do(func() { g.handleArt(v, justPressed) })
	}

	if justPressed(ebiten.KeyE) {
		g.lastErr = g.exportPNG()
	}
	if justPressed(ebiten.KeyV) {
		g.lastErr = g.exportSVG()
	}
	if justPressed(ebiten.KeyP) {
		g.toggleTones()
	}
	if justPressed(ebiten.KeyO) {
		g.lastErr = g.openSoundtrack()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if frac, ok := progressAt(ebiten.CursorPosition()); ok {
			if err := g.player.Seek(frac); err != nil && !errors.Is(err, audio.ErrNothingPlaying) {
				g.lastErr = err
			}
		}
	}
	return nil
}

func (g *Game) handleArt(a *view.Art, justPressed func(ebiten.Key) bool) {
	if justPressed(ebiten.KeyM) {
		a.ToggleMode()
	}
	if a.Mode() != view.Custom {
		a.SetHover(false)
		return
	}
	if justPressed(ebiten.KeyT) {
		a.SetTool(a.Tool().Next())
	}
	if justPressed(ebiten.KeyArrowUp) {
		a.GrowTool()
	}
	if justPressed(ebiten.KeyArrowDown) {
		a.ShrinkTool()
	}
	if justPressed(ebiten.KeyBackspace) {
		a.Layer().Clear()
	}

	at := g.canvasPoint(ebiten.CursorPosition())
	g.hover = a.Layer().Contains(at)
	a.SetHover(g.hover)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if s, ok := a.Click(at, g.rng.Uint64()); ok {
			g.logger.Debug("shape placed",
				zap.Stringer("kind", s.Kind),
				zap.Float64("x", s.Center.X),
				zap.Float64("y", s.Center.Y),
				zap.Float64("radius", s.Radius),
				zap.Int("shapes", a.Layer().Len()))
		}
	}
}

func (g *Game) toggleTones() {
	st := g.player.Status(0)
	if st.Playing {
		g.player.TogglePause()
		return
	}
	note, err := g.cfg.NoteDuration()
	if err != nil {
		g.lastErr = err
		return
	}
	m := audio.Tones(g.opts.Sequence, audioRate(g.cfg.Audio.SampleRate), note)
	if err := g.player.Play(m); err != nil {
		g.lastErr = err
	}
}

// openSoundtrack asks for an audio file and plays it under the views.
func (g *Game) openSoundtrack() error {
	patterns := make([]string, len(audio.Extensions))
	for i, ext := range audio.Extensions {
		patterns[i] = "*" + ext
	}
	path, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.logger.Info("soundtrack selected", zap.String("path", path))
	return g.player.PlayFile(path)
}

// askSavePath asks where to save name. An empty path means the user
// cancelled.
func askSavePath(name, filter string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export "+name),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     strings.ToUpper(filter) + " image",
			Patterns: []string{"*." + filter},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}

// exportPNG renders the export frame on a scratch surface so the live one
// is left alone.
func (g *Game) exportPNG() error {
	path, err := askSavePath(g.view.ExportName(), "png")
	if err != nil || path == "" {
		return err
	}
	w, h := g.view.Size()
	s, err := render.NewSurface(w, h)
	if err != nil {
		return err
	}
	defer s.Close()

	g.driver.Do(func() { render.Execute(s, view.ExportFrame(g.view)) })
	if err := s.SavePNG(path); err != nil {
		return err
	}
	g.logger.Info("image exported", zap.String("path", path))
	return nil
}

func (g *Game) exportSVG() error {
	name := strings.TrimSuffix(g.view.ExportName(), filepath.Ext(g.view.ExportName())) + ".svg"
	path, err := askSavePath(name, "svg")
	if err != nil || path == "" {
		return err
	}
	w, h := g.view.Size()
	var cmds []render.Command
	g.driver.Do(func() { cmds = view.ExportFrame(g.view) })
	if err := render.SaveSVG(path, w, h, cmds); err != nil {
		return err
	}
	g.logger.Info("vector exported", zap.String("path", path))
	return nil
}
