//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoHAL struct {
	logger *uartLogger
	keypad *matrixKeypad
	lcd    *charLCD
	t      tinyGoTime
}

// New returns the Pico (RP2040) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Keypad: rows GP2..GP5 (outputs), columns GP6..GP9 (pull-up inputs).
// LCD: HD44780 4-bit bus D4..D7 on GP10..GP13, RS GP14, EN GP15.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	keypad := newMatrixKeypad(
		[4]machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5},
		[4]machine.Pin{machine.GP6, machine.GP7, machine.GP8, machine.GP9},
	)

	lcd, err := newCharLCD()
	if err != nil {
		logger.WriteLineString("hal: lcd init: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		keypad: keypad,
		lcd:    lcd,
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Keypad() Keypad   { return h.keypad }
func (h *tinyGoHAL) Display() Display { return h.lcd }
func (h *tinyGoHAL) Time() Time       { return h.t }

type tinyGoTime struct{}

func (tinyGoTime) Sleep(ms int) { time.Sleep(time.Duration(ms) * time.Millisecond) }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
