package loop

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomz197/roadrush/internal/draw"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/object"
)

// Draw paints the world and the overlay for the current game state.
// board lines (best runs) are appended to the title and game over panels.
func (s *State) Draw(p draw.Painter, board []string) error {
	if err := s.drawWorld(p); err != nil {
		return err
	}
	switch s.GameState {
	case GameStatePlaying:
		s.drawHUD(p)
	case GameStateStart:
		p.Panel("ROAD RUSH", append(startLines(), board...), draw.Boost)
	case GameStateSettings:
		p.Panel("SETTINGS", s.settingsLines(), draw.Shield)
	case GameStateGameOver:
		p.Panel("GAME OVER", append(s.gameOverLines(), board...), draw.Rumble)
	}
	return nil
}

// shakeOffset jitters the world while a shake is running.
func (s *State) shakeOffset() draw.Point {
	if s.Shake <= 0 {
		return draw.Point{}
	}
	t := float64(s.Ticks)
	return draw.Point{X: math.Round(math.Sin(t*2.1) * 2), Y: math.Round(math.Cos(t*1.7))}
}

func (s *State) drawWorld(p draw.Painter) error {
	ctx := object.DrawContext{Painter: p, View: s.View, Shake: s.shakeOffset()}
	if err := s.Road.Draw(ctx); err != nil {
		return err
	}
	// Newest first: they are the farthest away.
	for i := len(s.Powerups) - 1; i >= 0; i-- {
		if err := s.Powerups[i].Draw(ctx); err != nil {
			return err
		}
	}
	for i := len(s.Obstacles) - 1; i >= 0; i-- {
		if err := s.Obstacles[i].Draw(ctx); err != nil {
			return err
		}
	}
	if s.GameState != GameStateGameOver || s.Explosion > 0 {
		if err := s.Car.Draw(ctx); err != nil {
			return err
		}
	}
	if s.Explosion > 0 {
		car := object.Project(s.Car.X, 0, s.View)
		r := s.View.Width * 0.08 * (s.Explosion.Seconds() / lc.ExplosionDuration.Seconds())
		ctx.Fill(car.X-r, car.Y-r, 2*r, 2*r*0.6, draw.Explosion)
	}
	for _, e := range s.Effects {
		if err := e.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ComboColor returns the combo readout colour tier.
func ComboColor(combo float64) draw.Color {
	switch {
	case combo > 15:
		return draw.ComboMax
	case combo > 10:
		return draw.ComboHot
	case combo > 5:
		return draw.ComboWarm
	}
	return draw.Text
}

// drawHUD draws the readouts, power-up badges, mini-map and achievement banner.
// Fields are padded so shrinking values don't leave residual characters.
func (s *State) drawHUD(p draw.Painter) {
	h := s.HUD()
	p.Text(2, 1, fmt.Sprintf("SCORE %-7d", h.Score), draw.Text)
	p.Text(2, 3, fmt.Sprintf("SPEED %3d km/h", h.Speed), draw.Text)
	p.Text(2, 5, fmt.Sprintf("DIST  %-6d m", h.Distance), draw.Text)
	p.Text(2, 7, fmt.Sprintf("COMBO x%-4d", int(h.Combo)), ComboColor(h.Combo))
	p.Text(2, 9, fmt.Sprintf("COINS %-5d", h.Coins), draw.Coin)

	y := 11.0
	for _, pu := range h.Powerups {
		label := strings.ToUpper(pu.Kind.String())
		if pu.Kind == object.PowerupMultiplier {
			label = fmt.Sprintf("x%d", h.Multiplier)
		}
		p.Text(2, y, fmt.Sprintf("%-10s %3.1fs", label, pu.Seconds), pu.Kind.Color())
		y += 2
	}

	s.drawMiniMap(p)

	if s.Popup != nil {
		a := s.Popup.Achievement
		msg := fmt.Sprintf("ACHIEVEMENT  %s: %s", a.Name, a.Desc)
		p.Text(s.View.Width/2-float64(len(msg))/2, 3, msg, draw.Achievement)
	}
}

// Mini-map placement, top right.
const (
	miniMapWidth  = 14.0
	miniMapHeight = 28.0
	miniMapMargin = 2.0
)

func (s *State) drawMiniMap(p draw.Painter) {
	m := s.MiniMap()
	x0 := s.View.Width - miniMapWidth - miniMapMargin
	y0 := miniMapMargin
	p.Fill(x0, y0, miniMapWidth, miniMapHeight, draw.RoadDark)
	laneW := miniMapWidth / 5
	for _, d := range m.Dots {
		x := x0 + laneW*(1+float64(d.Lane)) - 1
		p.Fill(x, y0+d.Row*miniMapHeight, 2, 1, draw.Rumble)
	}
	p.Fill(x0+m.CarX*miniMapWidth-1, y0+miniMapHeight-3, 2, 2, draw.CarBody)
}

func startLines() []string {
	return []string{
		"Dodge traffic, grab power-ups, chain combos.",
		"",
		"A D / < >  change lane",
		"W / Up     accelerate",
		"S / Down   brake",
		"O          settings",
		"Q          quit",
		"",
		"Press SPACE to start",
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s *State) settingsLines() []string {
	unlocked := s.UnlockedCount()
	return []string{
		fmt.Sprintf("1  Sound      %s", onOff(s.Settings.SoundEnabled)),
		fmt.Sprintf("2  Music      %s", onOff(s.Settings.MusicEnabled)),
		fmt.Sprintf("3  Particles  %s", s.Settings.ParticleQuality),
		"",
		fmt.Sprintf("Achievements %d/%d", unlocked, len(s.Achievements)),
		"",
		"ESC or ENTER to go back",
	}
}

func (s *State) gameOverLines() []string {
	f := s.FinalSummary()
	return []string{
		fmt.Sprintf("Score      %d", f.Score),
		fmt.Sprintf("Distance   %d m", f.Distance),
		fmt.Sprintf("Best combo %d", f.BestCombo),
		fmt.Sprintf("Coins      %d", f.Coins),
		"",
		"Press SPACE to drive again",
	}
}
