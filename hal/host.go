//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	keypad *hostKeypad
	lcd    *hostLCD
	t      hostTime
}

// New returns a host HAL implementation backed by the simulator.
func New() HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		keypad: newHostKeypad(),
		lcd:    newHostLCD(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Keypad() Keypad   { return h.keypad }
func (h *hostHAL) Display() Display { return h.lcd }
func (h *hostHAL) Time() Time       { return h.t }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostTime struct{}

func (hostTime) Sleep(ms int) { time.Sleep(time.Duration(ms) * time.Millisecond) }

type hostKeypad struct {
	ch chan Key
}

func newHostKeypad() *hostKeypad {
	return &hostKeypad{ch: make(chan Key, 64)}
}

func (k *hostKeypad) ReadKey() Key {
	select {
	case key := <-k.ch:
		return key
	default:
		return KeyNone
	}
}

func (k *hostKeypad) feed(key Key) {
	select {
	case k.ch <- key:
	default:
	}
}
