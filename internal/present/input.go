package present

import "strings"

// Action is what an input event asks the controller to do.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionFirst
	ActionLast
	ActionGoTo
	ActionTogglePresentation
	ActionToggleTheme
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	case ActionGoTo:
		return "goto"
	case ActionTogglePresentation:
		return "toggle-presentation"
	case ActionToggleTheme:
		return "toggle-theme"
	}
	return "none"
}

// SwipeThreshold is the minimum horizontal displacement, in pixels.
const SwipeThreshold = 50.0

// VisibilityThreshold is the fraction of a slide that must be in view before
// its enter animation replays.
const VisibilityThreshold = 0.3

// Event is one raw input delivered to Controller.Dispatch.
type Event interface{ isEvent() }

// KeyEvent is a key press. Key uses DOM KeyboardEvent.key names; terminal
// key names are accepted too. Target is the tag name of the focused element.
type KeyEvent struct {
	Key    string `json:"key"`
	Target string `json:"target,omitempty"`
}

// Control identifies one of the clickable chrome controls.
type Control string

const (
	ControlPrev    Control = "prev"
	ControlNext    Control = "next"
	ControlPresent Control = "present"
	ControlTheme   Control = "theme"
	ControlDot     Control = "dot"
)

// ClickEvent is a pointer click on a control. Index is used by ControlDot.
type ClickEvent struct {
	Control Control `json:"control"`
	Index   int     `json:"index"`
}

// SwipeEvent is a completed horizontal touch gesture.
type SwipeEvent struct {
	StartX float64 `json:"startX"`
	EndX   float64 `json:"endX"`
}

// VisibleEvent reports how much of a slide surface is in view.
type VisibleEvent struct {
	Index int     `json:"index"`
	Ratio float64 `json:"ratio"`
}

func (KeyEvent) isEvent()     {}
func (ClickEvent) isEvent()   {}
func (SwipeEvent) isEvent()   {}
func (VisibleEvent) isEvent() {}

// KeyAction maps a key to an action. Escape only acts while presenting, and
// keys typed into editable fields are ignored.
func KeyAction(ev KeyEvent, presenting bool) Action {
	switch strings.ToUpper(ev.Target) {
	case "INPUT", "TEXTAREA":
		return ActionNone
	}
	switch ev.Key {
	case "ArrowRight", "PageDown", " ", "right", "pgdown", "space", "l":
		return ActionNext
	case "ArrowLeft", "PageUp", "left", "pgup", "h":
		return ActionPrev
	case "Home", "home":
		return ActionFirst
	case "End", "end":
		return ActionLast
	case "f", "F":
		return ActionTogglePresentation
	case "Escape", "esc":
		if presenting {
			return ActionTogglePresentation
		}
	}
	return ActionNone
}

// SwipeAction maps a gesture to next (leftward) or prev (rightward).
func SwipeAction(ev SwipeEvent) Action {
	diff := ev.StartX - ev.EndX
	if diff >= SwipeThreshold {
		return ActionNext
	}
	if diff <= -SwipeThreshold {
		return ActionPrev
	}
	return ActionNone
}

// ClickAction maps a control click to an action.
func ClickAction(ev ClickEvent) Action {
	switch ev.Control {
	case ControlPrev:
		return ActionPrev
	case ControlNext:
		return ActionNext
	case ControlPresent:
		return ActionTogglePresentation
	case ControlTheme:
		return ActionToggleTheme
	case ControlDot:
		return ActionGoTo
	}
	return ActionNone
}
