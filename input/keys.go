package input

// Key, ModifierKey and Action use GLFW's numeric values so a glfw.Key converts directly.
type Key int

type ModifierKey int

type Action int

const (
	KeyUnknown Key = -1
	KeyB       Key = 66
	KeyC       Key = 67
	KeyG       Key = 71
	KeyK       Key = 75
	KeyM       Key = 77
	KeyR       Key = 82
	KeyY       Key = 89
	KeyEscape  Key = 256
)

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

var keyNames = map[Key]string{
	KeyB:      "b",
	KeyC:      "c",
	KeyG:      "g",
	KeyK:      "k",
	KeyM:      "m",
	KeyR:      "r",
	KeyY:      "y",
	KeyEscape: "escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Listener receives window events routed from the windowing layer.
type Listener interface {
	OnKey(key Key, action Action, mods ModifierKey)
	OnFramebufferSize(width, height int)
}
