package game

import "fmt"

// Variant names one observable look of a cell: a shape plus a material.
type Variant int

// Phase is the game-phase signal shared with the Field. Spawning happens on
// entering Starting.
type Phase int

type Button int

const (
	Concealed Variant = iota
	Marked
	// Revealed empty cell with no adjacent mines: nothing is drawn
	Empty
	Number1
	Number2
	Number3
	Number4
	// Five or more adjacent mines
	Number5
	Mine
)

var Variants = []Variant{
	Concealed,
	Marked,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Mine,
}

var variantNames = map[Variant]string{
	Concealed: "concealed",
	Marked:    "marked",
	Empty:     "empty",
	Number1:   "number1",
	Number2:   "number2",
	Number3:   "number3",
	Number4:   "number4",
	Number5:   "number5",
	Mine:      "mine",
}

func (variant Variant) String() string {
	if name, ok := variantNames[variant]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(variant))
}

func ParseVariant(name string) (Variant, error) {
	for variant, variantName := range variantNames {
		if variantName == name {
			return variant, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", name)
}

const (
	Starting Phase = iota
	Ongoing
	Won
	Lost
)

func (phase Phase) String() string {
	switch phase {
	case Starting:
		return "starting"
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Phase(%d)", int(phase))
	}
}

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

func (button Button) String() string {
	switch button {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("Button(%d)", int(button))
	}
}

const (
	// Edge length of every cell's cube, in world units
	cellSize = 1.0

	DefaultMaxPickDistance = 100.0
)
