//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// keyCodes maps matrix position to key, matching the printed keypad legend.
var keyCodes = [4][4]Key{
	{Key1, Key2, Key3, Key4},
	{Key5, Key6, Key7, Key8},
	{Key9, Key0, KeyAdd, KeySub},
	{KeyMul, KeyDiv, KeyEquals, KeyDecimal},
}

// matrixKeypad scans a 4x4 switch matrix. Rows are driven low one at a
// time; a pressed key pulls its column low through the switch.
type matrixKeypad struct {
	rows [4]machine.Pin
	cols [4]machine.Pin

	lastKey  Key
	stable   int
	reported bool
}

func newMatrixKeypad(rows, cols [4]machine.Pin) *matrixKeypad {
	k := &matrixKeypad{rows: rows, cols: cols, lastKey: KeyNone}
	for _, p := range k.rows {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.High()
	}
	for _, p := range k.cols {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return k
}

// scan returns the key currently held down, or KeyNone.
func (k *matrixKeypad) scan() Key {
	hit := KeyNone
	for r := 0; r < 4 && hit == KeyNone; r++ {
		k.rows[r].Low()
		time.Sleep(time.Millisecond) // signal stabilization
		for c := 0; c < 4; c++ {
			if !k.cols[c].Get() {
				hit = keyCodes[r][c]
				break
			}
		}
		k.rows[r].High()
	}
	return hit
}

// stableScans is how many consecutive identical reads debounce a press.
const stableScans = 5

// ReadKey reports each press exactly once, after it has been stable for
// stableScans consecutive scans. Holding a key does not repeat it.
func (k *matrixKeypad) ReadKey() Key {
	cur := k.scan()
	if cur == KeyNone {
		k.lastKey = KeyNone
		k.stable = 0
		k.reported = false
		return KeyNone
	}
	if cur != k.lastKey {
		k.lastKey = cur
		k.stable = 1
		k.reported = false
		return KeyNone
	}
	k.stable++
	if k.stable >= stableScans && !k.reported {
		k.reported = true
		return cur
	}
	return KeyNone
}
