package input

import "fmt"

// Key is a logical button. Physical bindings live with each Source.
type Key uint8

const (
	Left Key = iota
	Right
	Jump

	numKeys
)

func (k Key) String() string {
	switch k {
	case Left:
		return "left"
	case Right:
		return "right"
	case Jump:
		return "jump"
	default:
		return fmt.Sprintf("key(%d)", uint8(k))
	}
}

// Source is a read-only view of one frame of input.
type Source interface {
	IsDown(k Key) bool
	WasPressed(k Key) bool
	WasReleased(k Key) bool
	// Delta is the length of the frame in seconds.
	Delta() float64
}
