package game

import (
	"fmt"

	"github.com/CuriAlexity/snake-arcade/internal/core"
)

const hudHeight = 2 // Top HUD lines

// StartButton returns the screen rectangle of the menu's clickable Start
// region.
func (g *Game) StartButton() core.Rect {
	w, h := 16, 3
	return core.NewRect((g.screenW-w)/2, g.screenH/2-1, w, h)
}

// Render draws the current state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	if g.phase == PhaseMenu {
		g.renderMenu(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBorder(dst)

	for obstacle := range g.obstacles {
		g.setGrid(dst, obstacle, '▒', core.ColorObstacle)
	}
	if g.food != core.CellNone {
		g.setGrid(dst, g.food, '●', core.ColorFood)
	}
	for i, seg := range g.snake {
		if i == 0 {
			g.setGrid(dst, seg, 'O', core.ColorSnake)
		} else {
			g.setGrid(dst, seg, 'o', core.ColorSnake)
		}
	}

	switch g.phase {
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Space to continue")
	case PhaseGameOver:
		g.renderOverlay(dst,
			fmt.Sprintf("Game Over (%s)", g.deathReason),
			fmt.Sprintf("Score: %d - R to restart", g.score))
	case PhaseWin:
		g.renderOverlay(dst, "You Win!",
			fmt.Sprintf("Score: %d - R to restart", g.score))
	}
}

// setGrid draws a rune at a grid cell, translated into screen coordinates.
func (g *Game) setGrid(dst *core.Screen, c core.Cell, r rune, col core.Color) {
	dst.SetColored(g.gridOffsetX+c.X, g.gridOffsetY+c.Y, r, col)
}

func (g *Game) renderMenu(dst *core.Screen) {
	dst.DrawTextCenteredColored(g.screenH/2-5, "S N A K E", core.ColorSnake)

	btn := g.StartButton()
	dst.DrawBox(btn, core.ColorAccent)
	cx, cy := btn.Center()
	dst.DrawTextColored(cx-len("Start")/2, cy, "Start", core.ColorText)

	dst.DrawTextCenteredColored(btn.Bottom()+1, "Space/Enter to start, or click Start", core.ColorDim)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d   Speed: %d   Keys: arrows/WASD, +/- speed, Space pause, R restart, Q quit",
		g.score, g.speed)
	dst.DrawTextColored(0, 0, hud, core.ColorText)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDim)
}

// renderBorder draws the frame around the playable area.
func (g *Game) renderBorder(dst *core.Screen) {
	frame := core.NewRect(g.gridOffsetX-1, g.gridOffsetY-1, g.cfg.Grid.Width+2, g.cfg.Grid.Height+2)
	dst.DrawBox(frame, core.ColorBorder)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorAccent)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorText)
	dst.DrawTextCenteredColored(box.Y+3, line2, core.ColorDim)
}
