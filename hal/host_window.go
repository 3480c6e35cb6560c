//go:build !tinygo && cgo

package hal

import (
	"image"

	"abacus/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow opens a desktop window that shows the simulated LCD and forwards
// keyboard input to the keypad. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Abacus (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(lcdPanelW*2, lcdPanelH*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	fb    []byte
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.keypad.poll()
	if g.step != nil {
		return g.step()
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, lcdPanelW, lcdPanelH))
		g.fb = make([]byte, lcdPanelW*lcdPanelH*2)
		g.fbImg = ebiten.NewImage(lcdPanelW, lcdPanelH)
	}

	g.h.lcd.renderRGB565(g.fb, lcdPanelW*2)

	src := g.fb
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return lcdPanelW, lcdPanelH
}

// poll translates typed characters into keypad keys. Enter doubles as '='.
func (k *hostKeypad) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if key, ok := KeyForRune(r); ok {
			k.feed(key)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		k.feed(KeyEquals)
	}
}
