package control

import "fmt"

// Key identifies a keyboard key in input events. Only the keys the control
// loop reacts to are named; everything else arrives as KeyUnknown and is
// ignored.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyG
	KeySpace
	KeyShiftLeft
)

var keyNames = map[Key]string{
	KeyW:         "w",
	KeyA:         "a",
	KeyS:         "s",
	KeyD:         "d",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyG:         "g",
	KeySpace:     "space",
	KeyShiftLeft: "lshift",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey resolves a key name as used in binding configuration.
func ParseKey(name string) (Key, error) {
	for key, keyName := range keyNames {
		if keyName == name {
			return key, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key name %q", name)
}

// Bindings maps control actions to the keys that trigger them. Movement
// actions accept multiple aliases; each alias is level-triggered. The
// remaining actions fire on press edges only.
type Bindings struct {
	Forward    []Key
	Back       []Key
	Left       []Key
	Right      []Key
	ToggleGrab []Key
	Jump       []Key
	Run        []Key
}

// DefaultBindings returns the standard WASD-plus-arrows layout with G for
// cursor grab, Space for jump and left shift for run.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:    []Key{KeyW, KeyUp},
		Back:       []Key{KeyS, KeyDown},
		Left:       []Key{KeyA, KeyLeft},
		Right:      []Key{KeyD, KeyRight},
		ToggleGrab: []Key{KeyG},
		Jump:       []Key{KeySpace},
		Run:        []Key{KeyShiftLeft},
	}
}

// Keys returns every key referenced by any binding, without duplicates.
func (b Bindings) Keys() []Key {
	seen := make(map[Key]bool)
	var keys []Key
	for _, group := range [][]Key{b.Forward, b.Back, b.Left, b.Right, b.ToggleGrab, b.Jump, b.Run} {
		for _, key := range group {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}

func bound(group []Key, key Key) bool {
	for _, k := range group {
		if k == key {
			return true
		}
	}
	return false
}
