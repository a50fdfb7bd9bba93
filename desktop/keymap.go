package desktop

import "github.com/hajimehoshi/ebiten/v2"

// keysyms maps Ebitengine keys to the X11 keysym names key handlers
// receive. Letters and digits are added by init.
var keysyms = map[ebiten.Key]string{
	ebiten.KeySpace:        "space",
	ebiten.KeyEnter:        "Return",
	ebiten.KeyNumpadEnter:  "KP_Enter",
	ebiten.KeyBackspace:    "BackSpace",
	ebiten.KeyTab:          "Tab",
	ebiten.KeyEscape:       "Escape",
	ebiten.KeyDelete:       "Delete",
	ebiten.KeyInsert:       "Insert",
	ebiten.KeyHome:         "Home",
	ebiten.KeyEnd:          "End",
	ebiten.KeyPageUp:       "Prior",
	ebiten.KeyPageDown:     "Next",
	ebiten.KeyArrowLeft:    "Left",
	ebiten.KeyArrowRight:   "Right",
	ebiten.KeyArrowUp:      "Up",
	ebiten.KeyArrowDown:    "Down",
	ebiten.KeyShiftLeft:    "Shift_L",
	ebiten.KeyShiftRight:   "Shift_R",
	ebiten.KeyControlLeft:  "Control_L",
	ebiten.KeyControlRight: "Control_R",
	ebiten.KeyAltLeft:      "Alt_L",
	ebiten.KeyAltRight:     "Alt_R",
	ebiten.KeyMetaLeft:     "Super_L",
	ebiten.KeyMetaRight:    "Super_R",
	ebiten.KeyCapsLock:     "Caps_Lock",
	ebiten.KeyF1:           "F1",
	ebiten.KeyF2:           "F2",
	ebiten.KeyF3:           "F3",
	ebiten.KeyF4:           "F4",
	ebiten.KeyF5:           "F5",
	ebiten.KeyF6:           "F6",
	ebiten.KeyF7:           "F7",
	ebiten.KeyF8:           "F8",
	ebiten.KeyF9:           "F9",
	ebiten.KeyF10:          "F10",
	ebiten.KeyF11:          "F11",
	ebiten.KeyF12:          "F12",
}

func init() {
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		keysyms[k] = string(rune('a' + (k - ebiten.KeyA)))
	}
	for k := ebiten.KeyDigit0; k <= ebiten.KeyDigit9; k++ {
		keysyms[k] = string(rune('0' + (k - ebiten.KeyDigit0)))
	}
}

// keysym returns the keysym name of k.
func keysym(k ebiten.Key) (string, bool) {
	s, ok := keysyms[k]
	return s, ok
}

// printable reports whether k types a character, in which case it is
// delivered through the input character stream.
func printable(k ebiten.Key) bool {
	return k == ebiten.KeySpace ||
		(k >= ebiten.KeyA && k <= ebiten.KeyZ) ||
		(k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9)
}

// keysymOfChar names the key that typed r.
func keysymOfChar(r rune) string {
	if r == ' ' {
		return "space"
	}
	return string(r)
}
