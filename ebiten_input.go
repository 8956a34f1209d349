package areas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput polls ebiten's mouse, touch and keyboard state. It must be
// used from within ebiten's Update.
type EbitenInput struct {
	cursorX, cursorY int
	haveCursor       bool

	touchIDs  []ebiten.TouchID
	touchLast map[ebiten.TouchID][2]int
}

// NewEbitenInput creates an EbitenInput.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{touchLast: make(map[ebiten.TouchID][2]int)}
}

// IsKeyJustPressed reports whether key went down on this tick.
func (in *EbitenInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Poll forwards mouse moves, mouse presses, touch starts and touch moves.
func (in *EbitenInput) Poll(target PointerTarget) {
	in.pollMouse(target)
	in.pollTouches(target)
}

// pollMouse handles the mouse pointer.
func (in *EbitenInput) pollMouse(target PointerTarget) {
	mx, my := ebiten.CursorPosition()
	if in.trackCursor(mx, my) {
		target.PointerMove(float64(mx), float64(my))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		target.PointerDown(float64(mx), float64(my))
	}
}

// trackCursor records the cursor position and reports whether it should be
// forwarded as a move. Touch-only devices report a cursor parked at (0, 0),
// so that first position is held back until the cursor actually moves.
func (in *EbitenInput) trackCursor(mx, my int) bool {
	if !in.haveCursor {
		in.cursorX, in.cursorY = mx, my
		in.haveCursor = true
		return mx != 0 || my != 0
	}
	if mx == in.cursorX && my == in.cursorY {
		return false
	}
	in.cursorX, in.cursorY = mx, my
	return true
}

// pollTouches reports new touches as presses and moved touches as moves.
func (in *EbitenInput) pollTouches(target PointerTarget) {
	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		in.touchLast[id] = [2]int{tx, ty}
		target.PointerDown(float64(tx), float64(ty))
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		last, ok := in.touchLast[id]
		if ok && last == [2]int{tx, ty} {
			continue
		}
		in.touchLast[id] = [2]int{tx, ty}
		target.PointerMove(float64(tx), float64(ty))
	}

	// Forget touches that ended.
	for id := range in.touchLast {
		if inpututil.IsTouchJustReleased(id) {
			delete(in.touchLast, id)
		}
	}
}
