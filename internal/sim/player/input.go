package player

// Input is a single abstract action the controller reacts to. Keybinding
// lives with the front end; the simulation only ever sees these.
type Input int

const (
	MoveForward Input = iota
	MoveBackward
	MoveLeft
	MoveRight
	Jump
	Place
	Break
	SwitchBlock1
	SwitchBlock2
	SwitchBlock3
	SwitchBlock4
)

// Inputs is the set of actions held down during a tick.
type Inputs map[Input]bool

func (in Inputs) Has(i Input) bool { return in[i] }
