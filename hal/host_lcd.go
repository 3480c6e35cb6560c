//go:build !tinygo

package hal

import (
	"image/color"
	"strings"
	"sync"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Simulated panel metrics. FreeMono 12pt advances 14px per glyph with a
// 24px line height, which reads close enough to an HD44780 cell.
const (
	lcdCellW  = 14
	lcdCellH  = 24
	lcdMargin = 12

	lcdPanelW = DisplayCols*lcdCellW + 2*lcdMargin
	lcdPanelH = DisplayRows*lcdCellH + 2*lcdMargin
)

// hostLCD simulates the 2x16 character display. It keeps the character
// matrix and a write cursor; the window renders it into a framebuffer.
type hostLCD struct {
	mu       sync.Mutex
	cells    [DisplayRows][DisplayCols]byte
	row, col int
}

func newHostLCD() *hostLCD {
	l := &hostLCD{}
	l.clearLocked()
	return l
}

func (l *hostLCD) Command(cmd DisplayCommand) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch cmd {
	case CmdClearDisplay:
		l.clearLocked()
	case CmdCursorLine2:
		l.row, l.col = 1, 0
	}
}

func (l *hostLCD) WriteString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(s) && l.col < DisplayCols; i++ {
		l.cells[l.row][l.col] = s[i]
		l.col++
	}
}

func (l *hostLCD) clearLocked() {
	for r := 0; r < DisplayRows; r++ {
		for c := 0; c < DisplayCols; c++ {
			l.cells[r][c] = ' '
		}
	}
	l.row, l.col = 0, 0
}

// Lines returns the two displayed lines with trailing blanks trimmed.
func (l *hostLCD) Lines() (string, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	line := func(r int) string {
		return strings.TrimRight(string(l.cells[r][:]), " ")
	}
	return line(0), line(1)
}

// renderRGB565 draws the panel into an RGB565 framebuffer of lcdPanelW x
// lcdPanelH pixels.
func (l *hostLCD) renderRGB565(buf []byte, stride int) {
	l.mu.Lock()
	var rows [DisplayRows]string
	for r := 0; r < DisplayRows; r++ {
		rows[r] = string(l.cells[r][:])
	}
	l.mu.Unlock()

	bg := rgb565(0x7B, 0xA0, 0x33)
	fill565(buf, bg)

	glyph := color.RGBA{R: 0x13, G: 0x22, B: 0x07, A: 0xFF}
	d := &fb565{buf: buf, stride: stride, w: lcdPanelW, h: lcdPanelH}
	for r := 0; r < DisplayRows; r++ {
		baseline := int16(lcdMargin + r*lcdCellH + lcdCellH - 6)
		tinyfont.WriteLine(d, &freemono.Regular12pt7b, lcdMargin, baseline, rows[r], glyph)
	}
}

// fb565 exposes an RGB565 byte buffer as a tinyfont drawing target.
type fb565 struct {
	buf    []byte
	stride int
	w, h   int
}

func (d *fb565) Size() (x, y int16) { return int16(d.w), int16(d.h) }

func (d *fb565) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.w || iy < 0 || iy >= d.h {
		return
	}
	off := iy*d.stride + ix*2
	if off < 0 || off+1 >= len(d.buf) {
		return
	}
	pixel := rgb565(c.R, c.G, c.B)
	d.buf[off] = byte(pixel)
	d.buf[off+1] = byte(pixel >> 8)
}

func (d *fb565) Display() error { return nil }

func fill565(buf []byte, pixel uint16) {
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}
