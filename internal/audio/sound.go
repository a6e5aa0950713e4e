// Package audio plays the game's sound effects.
package audio

// Sound names a sound effect.
type Sound string

// Sounds triggered by the game loop.
const (
	Startup Sound = "startup"
	Shoot   Sound = "shoot"
	Move    Sound = "move"
	Explode Sound = "explode"
	Win     Sound = "win"
	Lose    Sound = "lose"
)

// Nop is an audio collaborator that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Sound) {}
