package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/reverb/constant"
	"github.com/lixenwraith/reverb/core"
	"github.com/lixenwraith/reverb/vmath"
)

var (
	testFill   = core.RGB{R: 200, G: 100, B: 50}
	testStroke = core.RGB{R: 10, G: 20, B: 30}
)

// TestLineEndpoints verifies Bresenham covers both endpoints and stays connected
func TestLineEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          int
	}{
		{"horizontal", 2, 3, 8, 3, 7},
		{"vertical", 4, 1, 4, 6, 6},
		{"diagonal", 0, 0, 5, 5, 6},
		{"reversed", 9, 7, 1, 2, 9},
		{"point", 5, 5, 5, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(12, 10)
			b.Fill(core.RGBCanvas)
			b.Line(tt.x0, tt.y0, tt.x1, tt.y1, constant.LinkGlyph, core.RGBBlack)

			if b.Get(tt.x0, tt.y0).Rune != constant.LinkGlyph || b.Get(tt.x1, tt.y1).Rune != constant.LinkGlyph {
				t.Fatal("Line endpoints not drawn")
			}
			count := 0
			for y := 0; y < 10; y++ {
				for x := 0; x < 12; x++ {
					if b.Get(x, y).Rune == constant.LinkGlyph {
						count++
					}
				}
			}
			if count != tt.cells {
				t.Errorf("Expected %d cells, got %d", tt.cells, count)
			}
		})
	}
}

// TestLineClipsOffscreen verifies out-of-bounds segments don't panic
func TestLineClipsOffscreen(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Fill(core.RGBCanvas)
	b.Line(-5, -5, 10, 10, constant.LinkGlyph, core.RGBBlack)

	if b.Get(2, 2).Rune != constant.LinkGlyph {
		t.Error("Expected visible part of the line to be drawn")
	}
}

// TestDiscFillAndStroke verifies interior cells take the fill and the rim the stroke
func TestDiscFillAndStroke(t *testing.T) {
	vp := NewViewport(testCanvas, 60, 60)
	b := NewBuffer(60, 60)
	b.Fill(core.RGBCanvas)

	b.Disc(vp, vmath.Pt(300, 300), 50, testFill, testStroke)

	if got := b.Get(30, 30).Bg; got != testFill {
		t.Errorf("Center: expected fill %v, got %v", testFill, got)
	}
	if got := b.Get(34, 30).Bg; got != testStroke {
		t.Errorf("Rim: expected stroke %v, got %v", testStroke, got)
	}
	if got := b.Get(36, 30).Bg; got != core.RGBCanvas {
		t.Errorf("Outside: expected canvas %v, got %v", core.RGBCanvas, got)
	}
}

// TestDiscSubCell verifies a circle smaller than a cell becomes a glyph
func TestDiscSubCell(t *testing.T) {
	vp := NewViewport(testCanvas, 60, 20)
	b := NewBuffer(60, 20)
	b.Fill(core.RGBCanvas)

	b.Disc(vp, vmath.Pt(300, 300), 2, testFill, testStroke)

	c := b.Get(30, 10)
	if c.Rune != constant.NodeGlyph || c.Fg != testFill {
		t.Errorf("Expected fill glyph, got %q fg=%v", c.Rune, c.Fg)
	}
	if c.Bg != core.RGBCanvas {
		t.Errorf("Expected canvas background preserved, got %v", c.Bg)
	}

	b.Fill(core.RGBCanvas)
	b.Disc(vp, vmath.Pt(300, 300), 0, testFill, testStroke)
	if b.Get(30, 10).Rune != ' ' {
		t.Error("Zero radius should draw nothing")
	}
}

// TestBufferFlush verifies cells reach the tcell screen with their colors
func TestBufferFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(8, 2)

	b := NewBuffer(8, 2)
	b.Fill(core.RGBCanvas)
	b.Text(1, 1, "ok", core.RGBWhite, core.RGBBlack)
	b.Flush(screen)

	r, _, style, _ := screen.GetContent(2, 1)
	if r != 'k' {
		t.Errorf("Expected 'k', got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if got, _ := FromTcell(fg); got != core.RGBWhite {
		t.Errorf("Expected white foreground, got %v", got)
	}
	if got, _ := FromTcell(bg); got != core.RGBBlack {
		t.Errorf("Expected black background, got %v", got)
	}
}

// TestFromTcell verifies named and default colors
func TestFromTcell(t *testing.T) {
	if got, ok := FromTcell(tcell.NewRGBColor(1, 2, 3)); !ok || got != (core.RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("Expected {1 2 3}, got %v ok=%v", got, ok)
	}
	if _, ok := FromTcell(tcell.ColorDefault); ok {
		t.Error("Expected ColorDefault to have no RGB value")
	}
}
