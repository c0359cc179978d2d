package climb

import (
	"fmt"
	"math"
	"strings"

	"github.com/pallasting/ICE-Climber/internal/core"
	"github.com/pallasting/ICE-Climber/internal/games/climb/sim"
)

// Glyphs for world elements.
const (
	GlyphIce         = '▓'
	GlyphRock        = '█'
	GlyphCloud       = '░'
	GlyphSpike       = '^'
	GlyphPlayer1     = '@'
	GlyphPlayer2     = '&'
	GlyphGhost       = 'o'
	GlyphDying       = 'x'
	GlyphYeti        = 'Y'
	GlyphBird        = 'v'
	GlyphBoss        = 'M'
	GlyphShot        = '*'
	GlyphSwing       = '~'
	GlyphItemLow     = '·'
	GlyphItemMid     = '◆'
	GlyphItemHigh    = '★'
	GlyphWall        = '│'
	GlyphBuildMarker = '!'
)

// hudRows is the number of screen rows used outside the playfield.
const hudRows = 2

// viewport maps world pixels to screen cells. Cells are about twice as tall
// as they are wide, so the horizontal scale is half the vertical one.
type viewport struct {
	left, top  int
	cols, rows int
	sx, sy     float64
	cameraY    float64
}

func newViewport(screenW, screenH int, fieldW, fieldH, cameraY float64) viewport {
	rows := max(1, screenH-hudRows)
	sy := fieldH / float64(rows)
	sx := sy / 2
	cols := int(fieldW / sx)
	if limit := screenW - 2; cols > limit {
		cols = max(1, limit)
		sx = fieldW / float64(cols)
	}
	return viewport{
		left:    (screenW - cols) / 2,
		top:     1,
		cols:    cols,
		rows:    rows,
		sx:      sx,
		sy:      sy,
		cameraY: cameraY,
	}
}

// rect converts a world box to screen cells, clipped to the playfield.
// A box that is visible always covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X / v.sx))
	x1 := int(math.Ceil(b.Right() / v.sx))
	y0 := int(math.Floor((b.Y - v.cameraY) / v.sy))
	y1 := int(math.Ceil((b.Bottom() - v.cameraY) / v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Clamp(x0, 0, v.cols)
	x1 = core.Clamp(x1, 0, v.cols)
	y0 = core.Clamp(y0, 0, v.rows)
	y1 = core.Clamp(y1, 0, v.rows)
	return core.NewRect(v.left+x0, v.top+y0, x1-x0, y1-y0)
}

// point converts a world point to a screen cell. ok is false off the field.
func (v viewport) point(x, y float64) (int, int, bool) {
	cx := int(math.Floor(x / v.sx))
	cy := int(math.Floor((y - v.cameraY) / v.sy))
	if cx < 0 || cx >= v.cols || cy < 0 || cy >= v.rows {
		return 0, 0, false
	}
	return v.left + cx, v.top + cy, true
}

// Render draws the current snapshot to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || g.state == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	field := g.cfg.Field
	v := newViewport(dst.Width(), dst.Height(), field.Width, field.Height, g.snap.CameraY)

	g.renderFrame(dst, v)
	g.renderBlocks(dst, v)
	g.renderItems(dst, v)
	g.renderEnemies(dst, v)
	g.renderBoss(dst, v)
	g.renderProjectiles(dst, v)
	g.renderPlayers(dst, v)
	g.renderHUD(dst)
	g.renderFooter(dst)
	g.renderOverlay(dst)
}

// renderFrame draws the side rails around the playfield.
func (g *Game) renderFrame(dst *core.Screen, v viewport) {
	for y := v.top; y < v.top+v.rows; y++ {
		dst.SetColor(v.left-1, y, GlyphWall, core.ColorGray)
		dst.SetColor(v.left+v.cols, y, GlyphWall, core.ColorGray)
	}
}

func biomeColor(b sim.Biome) core.Color {
	switch b {
	case sim.BiomeBlizzard:
		return core.ColorWhite
	case sim.BiomeAurora:
		return core.ColorAurora
	default:
		return core.ColorIce
	}
}

func biomeTitle(b sim.Biome) string {
	switch b {
	case sim.BiomeBlizzard:
		return "Entering the Blizzard"
	case sim.BiomeAurora:
		return "Entering the Aurora Peaks"
	default:
		return "Entering the Ice Cave"
	}
}

func (g *Game) renderBlocks(dst *core.Screen, v viewport) {
	for _, b := range g.snap.Blocks {
		r := v.rect(b.Box())
		switch b.Kind {
		case sim.BlockUnbreakable:
			dst.DrawRect(r, GlyphRock, core.ColorBlue)
		case sim.BlockCloud:
			dst.DrawRect(r, GlyphCloud, core.ColorBrightWhite)
		case sim.BlockSpike:
			dst.DrawRect(r, GlyphSpike, core.ColorRed)
		default:
			dst.DrawRect(r, GlyphIce, biomeColor(b.Biome))
		}
	}
}

func (g *Game) renderItems(dst *core.Screen, v viewport) {
	for _, it := range g.snap.Items {
		box := it.Box()
		x, y, ok := v.point(box.CenterX(), box.CenterY())
		if !ok {
			continue
		}
		switch it.Kind {
		case sim.ItemHigh:
			dst.SetColor(x, y, GlyphItemHigh, core.ColorBrightYellow)
		case sim.ItemMid:
			dst.SetColor(x, y, GlyphItemMid, core.ColorCyan)
		default:
			dst.SetColor(x, y, GlyphItemLow, core.ColorYellow)
		}
	}
}

func (g *Game) renderEnemies(dst *core.Screen, v viewport) {
	for i := range g.snap.Enemies {
		e := &g.snap.Enemies[i]
		switch e.Kind {
		case sim.EnemyBird:
			c := core.ColorMagenta
			if e.State == sim.EnemyDive {
				c = core.ColorBrightMagenta
			}
			dst.DrawRect(v.rect(e.Box()), GlyphBird, c)
		default:
			c := core.ColorWhite
			if e.Aggro {
				c = core.ColorBrightRed
			}
			dst.DrawRect(v.rect(e.Box()), GlyphYeti, c)
			if e.State == sim.EnemyBuild {
				if x, y, ok := v.point(e.CenterX()+e.Facing*e.W, e.Y); ok {
					dst.SetColor(x, y, GlyphBuildMarker, core.ColorOrange)
				}
			}
		}
	}
}

func bossColor(phase int) core.Color {
	switch phase {
	case 0:
		return core.ColorWhite
	case 1:
		return core.ColorOrange
	default:
		return core.ColorBrightRed
	}
}

func (g *Game) renderBoss(dst *core.Screen, v viewport) {
	boss := g.snap.Boss
	if !boss.Active || boss.Defeated {
		return
	}
	dst.DrawRect(v.rect(boss.Box), GlyphBoss, bossColor(boss.Phase))
}

func (g *Game) renderProjectiles(dst *core.Screen, v viewport) {
	for i := range g.snap.Projectiles {
		pr := &g.snap.Projectiles[i]
		x, y, ok := v.point(pr.CenterX(), pr.CenterY())
		if !ok {
			continue
		}
		c := core.ColorRed
		if pr.Reflected {
			c = core.ColorBrightGreen
		}
		dst.SetColor(x, y, GlyphShot, c)
	}
}

func playerLook(p *sim.Player) (rune, core.Color) {
	switch p.Life {
	case sim.LifeGhost:
		return GlyphGhost, core.ColorGray
	case sim.LifeDying, sim.LifeDead:
		return GlyphDying, core.ColorRed
	}
	if p.ID == core.Player2 {
		return GlyphPlayer2, core.ColorPink
	}
	return GlyphPlayer1, core.ColorBrightYellow
}

func (g *Game) renderPlayers(dst *core.Screen, v viewport) {
	for i := range g.snap.Players {
		p := &g.snap.Players[i]
		if p.Life == sim.LifeDead {
			continue
		}
		if p.Attacking && p.Alive() {
			dst.DrawRect(v.rect(g.state.AttackBox(p)), GlyphSwing, core.ColorBrightCyan)
		}
		glyph, c := playerLook(p)
		dst.DrawRect(v.rect(p.Box()), glyph, c)
	}
}

// renderHUD draws altitude, score and currency on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := &g.snap

	left := fmt.Sprintf("ALT %d", snap.Altitude)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	var scores []string
	for i := range snap.Players {
		p := &snap.Players[i]
		entry := fmt.Sprintf("%s %d", p.ID, p.Score)
		if p.Combo.Multiplier > 1 {
			entry += fmt.Sprintf(" x%.1f", p.Combo.Multiplier)
		}
		scores = append(scores, entry)
	}
	dst.DrawTextCentered(0, strings.Join(scores, "  "), core.ColorBrightYellow)

	right := fmt.Sprintf("%c %d", GlyphItemMid, snap.Currency)
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorCyan)
}

// renderFooter draws the boss bar or the record line on the bottom row.
func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	boss := g.snap.Boss
	if boss.Active && !boss.Defeated {
		dst.DrawTextCentered(y, bossBar(boss.HP, boss.MaxHP, 20), bossColor(boss.Phase))
		return
	}

	line := fmt.Sprintf("BEST %d  TOP %d  NEXT CHECKPOINT %d", g.bestScore, g.bestAltitude, g.snap.NextCheckpoint)
	dst.DrawTextCentered(y, line, core.ColorGray)
}

// bossBar renders a fixed-width health bar.
func bossBar(hp, maxHP, width int) string {
	filled := 0
	if maxHP > 0 {
		filled = core.Clamp(hp*width/maxHP, 0, width)
	}
	return fmt.Sprintf("YETI KING [%s%s] %d/%d",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), hp, maxHP)
}

func upgradeLabel(u sim.Upgrade) string {
	switch u {
	case sim.UpgradeGrip:
		return "Grip"
	case sim.UpgradeLowGravity:
		return "Low Gravity"
	case sim.UpgradePower:
		return "Power"
	case sim.UpgradeJumpBoost:
		return "Jump Boost"
	default:
		return u.String()
	}
}

// renderOverlay draws the shop, pause and game over panels.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.snap.Phase == sim.PhaseGameOver:
		g.renderGameOver(dst)
	case g.snap.Phase == sim.PhaseShop:
		g.renderShop(dst)
	case g.paused:
		g.renderPanel(dst, []string{"PAUSED", "", "P to resume"}, core.ColorBrightWhite)
	case g.bannerTicks > 0 && g.banner != "":
		dst.DrawTextCentered(3, g.banner, core.ColorBrightCyan)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score: %d", g.snap.Score),
		fmt.Sprintf("Altitude: %d", g.snap.Altitude),
	}
	if g.snap.Score > g.bestScore && g.bestScore > 0 {
		lines = append(lines, "New best!")
	}
	lines = append(lines, "", "R to restart  Q to quit")
	g.renderPanel(dst, lines, core.ColorBrightRed)
}

func (g *Game) renderShop(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("CHECKPOINT - ALT %d", g.snap.Altitude),
		fmt.Sprintf("Shared %c %d", GlyphItemMid, g.snap.Currency),
		"",
	}

	for i, u := range g.state.Upgrades() {
		var marks strings.Builder
		for _, id := range g.players() {
			cursor := " "
			if g.cursors[id] == i {
				cursor = ">"
			}
			owned := " "
			if g.state.Owns(id, u) {
				owned = "+"
			}
			fmt.Fprintf(&marks, " %s%s%s", cursor, id, owned)
		}
		lines = append(lines, fmt.Sprintf("%-12s %3d %s", upgradeLabel(u), g.state.Cost(u), marks.String()))
	}

	lines = append(lines, "")
	if g.shopMsg != "" {
		lines = append(lines, g.shopMsg)
	}
	lines = append(lines, "left/right choose  attack buy  enter climb")
	g.renderPanel(dst, lines, core.ColorBrightCyan)
}

// renderPanel draws lines inside a centered box.
func (g *Game) renderPanel(dst *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w := min(width+4, dst.Width())
	h := min(len(lines)+2, dst.Height())
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+1+i, l, c)
	}
}
