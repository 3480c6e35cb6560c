package hal

import "testing"

func TestKeyForRune(t *testing.T) {
	cases := []struct {
		r    rune
		want Key
		ok   bool
	}{
		{'0', Key0, true},
		{'5', Key5, true},
		{'9', Key9, true},
		{'+', KeyAdd, true},
		{'-', KeySub, true},
		{'*', KeyMul, true},
		{'/', KeyDiv, true},
		{'.', KeyDecimal, true},
		{'=', KeyEquals, true},
		{'x', KeyNone, false},
		{' ', KeyNone, false},
	}
	for _, c := range cases {
		got, ok := KeyForRune(c.r)
		if got != c.want || ok != c.ok {
			t.Fatalf("KeyForRune(%q) = %v, %v; want %v, %v", c.r, got, ok, c.want, c.ok)
		}
	}
}

func TestKeyDigit(t *testing.T) {
	for d := 0; d <= 9; d++ {
		k := Key0 + Key(d)
		got, ok := k.Digit()
		if !ok || got != d {
			t.Fatalf("Key%d.Digit() = %d, %v", d, got, ok)
		}
	}
	for _, k := range []Key{KeyAdd, KeySub, KeyMul, KeyDiv, KeyEquals, KeyDecimal, KeyNone} {
		if _, ok := k.Digit(); ok {
			t.Fatalf("%v.Digit() reported a digit", k)
		}
	}
}

func TestKeyString(t *testing.T) {
	cases := []struct {
		k    Key
		want string
	}{
		{Key7, "7"},
		{KeyAdd, "+"},
		{KeyDecimal, "."},
		{KeyEquals, "="},
		{KeyNone, "none"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Fatalf("%d.String() = %q, want %q", c.k, got, c.want)
		}
	}
}
