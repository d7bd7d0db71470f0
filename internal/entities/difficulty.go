package entities

// Difficulty is chosen at character creation and never changes afterwards.
type Difficulty string

// Difficulty labels.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DifficultyLabels lists the selectable difficulties in menu order.
func DifficultyLabels() []string {
	return []string{string(DifficultyEasy), string(DifficultyMedium), string(DifficultyHard)}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}
