package core

import "strings"

// Action is a key-independent intent. The platform maps keys to actions,
// games only ever see actions.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionPause
	ActionRestart
	ActionInspector
	ActionBack
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Up", "Down",
	"Pause", "Restart", "Inspector", "Back", "Quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered since the previous frame.
// The zero value is an empty frame and frames copy by value.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (f *InputFrame) Set(a Action) {
	if a != ActionNone && a < actionCount {
		f.bits |= 1 << a
	}
}

func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

func (f InputFrame) Empty() bool {
	return f.bits == 0
}

func (f *InputFrame) Clear() {
	f.bits = 0
}

// Actions lists the triggered actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// String returns the triggered actions joined with "+", e.g. "Left+Pause".
func (f InputFrame) String() string {
	if f.Empty() {
		return "-"
	}
	names := make([]string, 0, 4)
	for _, a := range f.Actions() {
		names = append(names, a.String())
	}
	return strings.Join(names, "+")
}
