package zombies

import (
	"fmt"

	"github.com/vovakirdan/word-zombies/internal/core"
)

// HUD layout in world units.
const (
	hudHeartX  = 15
	hudHeartY  = 15
	hudBarX    = 50
	hudBarY    = 20
	hudBarW    = 210
	hudBarH    = 20
	hudScoreX  = 630
	hudScoreY  = 20
	hudStatusY = 45
	labelGap   = 20 // word label height above a zombie
	sparkOrbit = 1.6
)

// Draw renders the whole scene back to front.
func (s *Session) Draw(dst core.Surface) {
	s.drawGround(dst)
	dst.DrawQuad(playerSprite, s.player.X, s.player.Y, s.player.W, s.player.H)
	s.drawHUD(dst)
	s.drawTrails(dst)
	s.drawProjectiles(dst)
	s.drawTargets(dst)
	s.drawPowerUps(dst)
	s.drawEffects(dst)
	if s.state.Terminal() {
		s.drawBanner(dst)
	}
}

func (s *Session) drawGround(dst core.Surface) {
	g := s.cfg.Field.Ground
	dst.DrawShape(core.ShapeRect, core.Params{
		X: s.field.X, Y: g, W: s.field.W, H: s.field.Bottom() - g, Glyph: '░',
	}, core.ColorDarkGray, true)
}

func (s *Session) drawHUD(dst core.Surface) {
	heart := core.ColorBrightRed
	if !s.health.Alive() {
		heart = core.ColorGray
	}
	dst.DrawText(hudHeartX, hudHeartY, "♥", heart, core.AlignLeft)

	dst.DrawShape(core.ShapeRect, core.Params{
		X: hudBarX, Y: hudBarY, W: hudBarW, H: hudBarH, Glyph: '░',
	}, core.ColorDarkGray, true)
	frac := s.health.Fraction()
	if frac > 0 {
		dst.DrawShape(core.ShapeRect, core.Params{
			X: hudBarX, Y: hudBarY, W: hudBarW * frac, H: hudBarH, Glyph: '█',
		}, HealthColor(frac), true)
	}

	score := fmt.Sprintf("Score: %d/%d", s.score.Value(), s.score.Target())
	dst.DrawText(hudScoreX, hudScoreY, score, core.ColorBrightWhite, core.AlignRight)

	status := []core.Span{s.abilitySpan()}
	for _, b := range s.buffs.Items() {
		status = append(status, core.Span{
			Text:  fmt.Sprintf("  %s %.0fs", b.Kind, b.TimeLeft),
			Color: buffColor(b.Kind),
		})
	}
	dst.DrawSpans(hudBarX, hudStatusY, status, core.AlignLeft)
}

func (s *Session) abilitySpan() core.Span {
	switch {
	case s.ability.Active():
		return core.Span{Text: "ATTRACT!", Color: core.ColorBrightMagenta}
	case s.ability.Ready():
		return core.Span{Text: "[TAB] attract", Color: core.ColorMagenta}
	default:
		return core.Span{Text: fmt.Sprintf("attract %.0fs", s.ability.Cooldown()), Color: core.ColorGray}
	}
}

func buffColor(k BuffKind) core.Color {
	if k == BuffShield {
		return PowerUpShield.Color()
	}
	return PowerUpSpeed.Color()
}

func (s *Session) drawTrails(dst core.Surface) {
	for _, e := range s.effects.Effects() {
		if e.Kind != EffectTrail {
			continue
		}
		r := e.Radius()
		dst.DrawShape(core.ShapeRect, core.Params{
			X: e.Pos.X - r, Y: e.Pos.Y - r, W: 2 * r, H: 2 * r, Glyph: core.ShadeGlyph(e.Alpha()),
		}, e.Color, true)
	}
}

func (s *Session) drawProjectiles(dst core.Surface) {
	for _, b := range s.projectiles.Items() {
		tail := b.Pos.Sub(b.Vel.Normalize().Scale(12))
		dst.DrawPrimitive(core.PrimitiveLine, core.Params{
			X: tail.X, Y: tail.Y, X2: b.Pos.X, Y2: b.Pos.Y, Glyph: '-',
		}, core.ColorBrightYellow)
	}
}

func (s *Session) drawTargets(dst core.Surface) {
	selected := s.targets.SelectedID()
	for _, t := range s.targets.Targets() {
		if !t.Alive() {
			continue
		}
		sprite, word := zombieSprite, core.ColorBrightWhite
		if t.ID == selected {
			sprite, word = selectedZombieSprite, core.ColorBrightYellow
		}
		dst.DrawQuad(sprite, t.Pos.X, t.Pos.Y, t.Size.X, t.Size.Y)

		label := core.Translate(t.Pos, t.Size.X/2, -labelGap)
		dst.DrawSpans(label.X, label.Y, []core.Span{
			{Text: t.Typed(), Color: core.ColorDarkGray},
			{Text: t.Remaining(), Color: word},
		}, core.AlignCenter)
	}
}

func (s *Session) drawPowerUps(dst core.Surface) {
	for _, p := range s.powerups.Items() {
		c := p.Kind.Color()
		r := p.Radius * p.Pulse()
		dst.DrawShape(core.ShapeCircle, core.Params{X: p.Pos.X, Y: p.Pos.Y, W: r}, c.Dim(), false)
		dst.DrawText(p.Pos.X, p.Pos.Y, string(p.Kind.Glyph()), c, core.AlignCenter)

		spark := core.Rotate(core.Translate(p.Pos, r*sparkOrbit, 0), p.Pos, p.Rotation)
		dst.DrawText(spark.X, spark.Y, "·", c, core.AlignCenter)
	}
}

func (s *Session) drawEffects(dst core.Surface) {
	for _, e := range s.effects.Effects() {
		switch e.Kind {
		case EffectTrail:
			continue
		case EffectExplosion:
			s.drawExplosion(dst, e)
		default:
			dst.DrawPrimitive(core.PrimitiveCircle, core.Params{
				X: e.Pos.X, Y: e.Pos.Y, W: e.Radius(), Glyph: core.ShadeGlyph(e.Alpha()),
			}, e.Color)
		}
	}
}

// drawExplosion plays the frame sequence at the center and throws four
// debris glyphs outward as the blast grows.
func (s *Session) drawExplosion(dst core.Surface, e *Effect) {
	frame := string(explosionFrames[e.Frame(len(explosionFrames))])
	dst.DrawText(e.Pos.X, e.Pos.Y, frame, e.Color, core.AlignCenter)

	spread := e.Radius() / 10
	for i := range 4 {
		seed := core.Rotate(core.Translate(e.Pos, 10, 0), e.Pos, float64(45+90*i))
		d := core.ScaleAbout(seed, e.Pos, spread, spread)
		dst.DrawText(d.X, d.Y, "*", e.Color.Dim(), core.AlignCenter)
	}
}

func (s *Session) drawBanner(dst core.Surface) {
	cx, cy := s.field.Center().X, s.field.Center().Y

	title, c := "GAME OVER!", core.ColorBrightRed
	if s.state == StateWon {
		title, c = "YOU WIN!", core.ColorBrightGreen
	}
	dst.DrawShape(core.ShapeRect, core.Params{X: cx - 140, Y: cy - 70, W: 280, H: 140}, c, false)
	dst.DrawText(cx, cy-40, title, c, core.AlignCenter)
	dst.DrawText(cx, cy-10, fmt.Sprintf("Final Score: %d", s.score.Value()), core.ColorBrightWhite, core.AlignCenter)
	dst.DrawText(cx, cy+10, fmt.Sprintf("Accuracy: %.0f%%", s.stats.Accuracy()*100), core.ColorWhite, core.AlignCenter)
	dst.DrawText(cx, cy+40, "Press SPACE to restart", core.ColorGray, core.AlignCenter)
}
