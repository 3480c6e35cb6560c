// Package hal is the only contact point between the calculator core and the
// outside world: keypad, character display, logging and timing.
package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Keypad delivers one debounced key per physical press.
//
// ReadKey never blocks; it returns KeyNone when no new press is pending.
type Keypad interface {
	ReadKey() Key
}

// DisplayCommand is an HD44780-style display command byte.
type DisplayCommand uint8

const (
	CmdClearDisplay DisplayCommand = 0x01
	CmdCursorLine2  DisplayCommand = 0xC0
)

// Character panel geometry.
const (
	DisplayCols = 16
	DisplayRows = 2
)

// Display is a 2x16 character display with a write cursor.
//
// WriteString emits characters at the cursor; characters past the end of a
// line are dropped.
type Display interface {
	Command(cmd DisplayCommand)
	WriteString(s string)
}

// Time provides the pacing delay used by polling loops.
type Time interface {
	Sleep(ms int)
}

// HAL bundles the hardware collaborators of the calculator.
type HAL interface {
	Logger() Logger
	Keypad() Keypad
	Display() Display
	Time() Time
}
