package core

// Key identifies a physical key the games can poll.
type Key int

const (
	KeyNone Key = iota
	KeyA
	KeyD
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyS
	KeyW
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyNum2
	KeyNum4
	KeyNum6
	KeyNum8
	KeySpace
	KeyEnter
	KeyEscape
)

var keyNames = map[Key]string{
	KeyNone:   "None",
	KeyA:      "A",
	KeyD:      "D",
	KeyI:      "I",
	KeyJ:      "J",
	KeyK:      "K",
	KeyL:      "L",
	KeyS:      "S",
	KeyW:      "W",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyNum2:   "Num2",
	KeyNum4:   "Num4",
	KeyNum6:   "Num6",
	KeyNum8:   "Num8",
	KeySpace:  "Space",
	KeyEnter:  "Enter",
	KeyEscape: "Escape",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Keyboard is polled once per frame for the keys currently held.
// A press the hardware or terminal dropped simply reads as not pressed.
type Keyboard interface {
	IsKeyPressed(k Key) bool
}

// Timer reports the monotonic time elapsed since the previous frame.
type Timer interface {
	SecondsSinceLastTick() float64
}

// Screen receives the draw calls of one frame.
type Screen interface {
	Clear(c Color)
	DrawCircle(c Circle)
	DrawText(t Text)
}

// KeyState is a set of pressed keys. It satisfies Keyboard and is what hosts
// and tests fill in before each frame.
type KeyState struct {
	pressed map[Key]bool
}

// NewKeyState creates a state with the given keys pressed.
func NewKeyState(keys ...Key) KeyState {
	s := KeyState{pressed: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.pressed[k] = true
	}
	return s
}

// IsKeyPressed implements Keyboard.
func (s KeyState) IsKeyPressed(k Key) bool {
	return s.pressed[k]
}

// FixedTimer is a Timer that always reports the same step. Useful for
// deterministic simulation.
type FixedTimer float64

// SecondsSinceLastTick implements Timer.
func (t FixedTimer) SecondsSinceLastTick() float64 {
	return float64(t)
}
