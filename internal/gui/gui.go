// Package gui draws the scene machine with ebiten: a title screen and a 6x5
// grid of coloured cells with a message line underneath.
package gui

import (
	"image/color"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/scene"
)

const (
	ScreenWidth  = 425
	ScreenHeight = 550
	WindowTitle  = "Wordle"

	cellSize  = 70
	cellPitch = 80
	gridLeft  = 15
	gridTop   = 15
	messageY  = 520

	// ebitenutil's debug font
	glyphW = 6
	glyphH = 16
)

var (
	colorBackground = color.Black
	colorEmpty      = color.RGBA{0x3A, 0x3A, 0x3C, 0xFF}
	colorText       = color.White
	cellColors      = map[game.LetterResult]color.Color{
		game.Correct: color.RGBA{0x53, 0x8D, 0x4E, 0xFF},
		game.Present: color.RGBA{0xB5, 0x9F, 0x3B, 0xFF},
		game.Absent:  color.RGBA{0x78, 0x7C, 0x7E, 0xFF},
	}
)

// Game implements ebiten.Game on top of a scene.Machine.
type Game struct {
	m     *scene.Machine
	chars []rune
	glyph map[string]*ebiten.Image // rendered text, reused across frames
}

func New(m *scene.Machine) *Game {
	return &Game{m: m, glyph: make(map[string]*ebiten.Image)}
}

// Update polls the keyboard, forwards inputs and advances message fades.
func (g *Game) Update() error {
	for _, in := range g.inputs() {
		if err := g.m.Handle(in); err != nil {
			return err
		}
	}
	g.m.Tick()
	return nil
}

func (g *Game) inputs() []scene.Input {
	var out []scene.Input
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		out = append(out, scene.Input{Key: scene.KeyEscape})
	}
	if g.m.Scene() == scene.Title {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			out = append(out, scene.Input{Key: scene.KeyStart})
		}
		return out
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		out = append(out, scene.Input{Key: scene.KeyBackspace})
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if unicode.IsLetter(r) {
			out = append(out, scene.Input{Key: scene.KeyLetter, Letter: r})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		out = append(out, scene.Input{Key: scene.KeyEnter})
	}
	return out
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if g.m.Scene() == scene.Title {
		g.drawTitle(screen)
		return
	}
	g.drawGrid(screen)
	if msg, ok := g.m.Message(); ok {
		g.drawText(screen, msg.Text, ScreenWidth/2, messageY, 2, float32(msg.Alpha)/255)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	g.drawText(screen, "Wordle", ScreenWidth/2, 215, 7, 1)
	g.drawText(screen, "Press SPACE to play", ScreenWidth/2, 285, 2, 1)
	g.drawText(screen, "Press ESCAPE to restart", ScreenWidth/2, 320, 2, 1)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	grid := g.m.Grid()
	for r, row := range grid {
		for c, cell := range row {
			x := float32(gridLeft + c*cellPitch)
			y := float32(gridTop + r*cellPitch)
			if fill, ok := cellColors[cell.Mark]; ok {
				vector.DrawFilledRect(screen, x, y, cellSize, cellSize, fill, false)
			} else {
				vector.StrokeRect(screen, x+1, y+1, cellSize-2, cellSize-2, 2, colorEmpty, false)
			}
			if cell.Letter != 0 {
				g.drawText(screen, string(cell.Letter), int(x)+cellSize/2, int(y)+cellSize/2+4, 4, 1)
			}
		}
	}
}

// drawText draws s centred on (cx, cy), scaled up from the debug font.
func (g *Game) drawText(screen *ebiten.Image, s string, cx, cy int, scale float64, alpha float32) {
	img, ok := g.glyph[s]
	if !ok {
		img = ebiten.NewImage(len(s)*glyphW, glyphH)
		ebitenutil.DebugPrint(img, s)
		g.glyph[s] = img
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cx)-float64(w)*scale/2, float64(cy)-float64(h)*scale/2)
	op.ColorScale.ScaleWithColor(colorText)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, op)
}
