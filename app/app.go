// Package app wires the HAL into the calculator session. It is the only
// package both entrypoints (host simulator and TinyGo firmware) share.
package app

import (
	"abacus/calc"
	"abacus/hal"
	"abacus/internal/buildinfo"
)

// New builds the calculator on top of h and starts its input loop in a
// goroutine. The returned func is the per-frame step hook for hosts that
// drive their own loop; the session itself is self-running, so it is a
// no-op.
func New(h hal.HAL) func() error {
	if lg := h.Logger(); lg != nil {
		lg.WriteLineString("abacus " + buildinfo.Short())
	}
	s := calc.NewSession(h.Keypad(), h.Display(), h.Logger(), h.Time())
	go s.Run()
	return func() error { return nil }
}

// Run starts the calculator and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}
