//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Keys    string
}

// scriptKeyTicks spaces scripted key presses far enough apart that the
// session loop observes each one separately.
const scriptKeyTicks = 10

// RunHeadless runs the calculator without opening a window. A key script
// (one keypad character per rune, e.g. "12+34=") is replayed against the
// keypad and every display update is logged.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := New().(*hostHAL)
	step := newApp(h)

	script := make([]Key, 0, len(cfg.Keys))
	for _, r := range cfg.Keys {
		k, ok := KeyForRune(r)
		if !ok {
			return fmt.Errorf("invalid key script rune: %q", r)
		}
		script = append(script, k)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	var line1, line2 string
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if len(script) > 0 && tick%scriptKeyTicks == 0 {
				h.keypad.feed(script[0])
				script = script[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if l1, l2 := h.lcd.Lines(); l1 != line1 || l2 != line2 {
				line1, line2 = l1, l2
				h.logger.WriteLineString("lcd: [" + l1 + "] [" + l2 + "]")
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
