//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/hd44780"
)

// charLCD drives the HD44780 panel through the tinygo driver. A nil device
// (failed init) degrades to a no-op display so the session keeps running
// and faults stay observable over UART.
type charLCD struct {
	dev *hd44780.Device
}

func newCharLCD() (*charLCD, error) {
	data := []machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13}
	dev, err := hd44780.NewGPIO4Bit(data, machine.GP15, machine.GP14, machine.NoPin)
	if err != nil {
		return &charLCD{}, err
	}
	if err := dev.Configure(hd44780.Config{
		Width:  DisplayCols,
		Height: DisplayRows,
	}); err != nil {
		return &charLCD{}, err
	}
	return &charLCD{dev: &dev}, nil
}

func (l *charLCD) Command(cmd DisplayCommand) {
	if l.dev == nil {
		return
	}
	switch cmd {
	case CmdClearDisplay:
		l.dev.ClearDisplay()
	case CmdCursorLine2:
		l.dev.SetCursor(0, 1)
	}
}

func (l *charLCD) WriteString(s string) {
	if l.dev == nil {
		return
	}
	l.dev.Write([]byte(s))
	l.dev.Display()
}
