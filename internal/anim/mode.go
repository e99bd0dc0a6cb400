// Package anim is the demo's state machine: a start menu, a ring of spinning
// orbs, their collapse, a spark burst and the final image. It has no window
// dependency; drawing goes through Renderer and input arrives as Input.
package anim

import "fmt"

// Mode is the single state variable of the sequence. Transitions only move
// forward: Menu → Spin → Implode → Explode → Show.
type Mode int

const (
	ModeMenu Mode = iota
	ModeSpin
	ModeImplode
	ModeExplode
	ModeShow
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeSpin:
		return "spin"
	case ModeImplode:
		return "implode"
	case ModeExplode:
		return "explode"
	case ModeShow:
		return "show"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
