package input

import (
	"fmt"
	"strings"
)

// Chord is a key together with the modifiers held while it is pressed.
type Chord struct {
	Key  Key
	Mods ModifierKey
}

var modNames = map[string]ModifierKey{
	"shift": ModShift,
	"ctrl":  ModControl,
	"alt":   ModAlt,
	"super": ModSuper,
}

// ParseChord parses forms like "r", "ctrl+g" or "ctrl+shift+b". Case is ignored.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	var c Chord
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Chord{}, fmt.Errorf("empty key in chord %q", s)
		}
		if i < len(parts)-1 {
			mod, ok := modNames[p]
			if !ok {
				return Chord{}, fmt.Errorf("unknown modifier %q in chord %q", p, s)
			}
			c.Mods |= mod
			continue
		}
		c.Key = KeyUnknown
		for k, name := range keyNames {
			if name == p {
				c.Key = k
				break
			}
		}
		if c.Key == KeyUnknown {
			return Chord{}, fmt.Errorf("unknown key %q in chord %q", p, s)
		}
	}
	return c, nil
}

// ParseScript parses a comma separated list of chords.
func ParseScript(s string) ([]Chord, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var chords []Chord
	for _, field := range strings.Split(s, ",") {
		c, err := ParseChord(field)
		if err != nil {
			return nil, err
		}
		chords = append(chords, c)
	}
	return chords, nil
}

func (c Chord) String() string {
	var b strings.Builder
	for _, name := range []string{"ctrl", "shift", "alt", "super"} {
		if c.Mods&modNames[name] != 0 {
			b.WriteString(name)
			b.WriteByte('+')
		}
	}
	b.WriteString(c.Key.String())
	return b.String()
}

// ChordAt returns the chord scheduled for frame. Chord n is pressed on the first
// frame of second n, so at most one chord fires per fps frames.
func ChordAt(script []Chord, frame, fps int) (Chord, bool) {
	if fps <= 0 || frame < 0 || frame%fps != 0 {
		return Chord{}, false
	}
	n := frame / fps
	if n >= len(script) {
		return Chord{}, false
	}
	return script[n], true
}
