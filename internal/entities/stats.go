package entities

// StatBlock is both the aggregate output of equipment resolution and the
// bonus delta an equipment item contributes.
type StatBlock struct {
	Attack    int `json:"attack" yaml:"attack"`
	Defence   int `json:"defence" yaml:"defence"`
	Strength  int `json:"strength" yaml:"strength"`
	Agility   int `json:"agility" yaml:"agility"`
	Stamina   int `json:"stamina" yaml:"stamina"`
	Intellect int `json:"intellect" yaml:"intellect"`
	Spirit    int `json:"spirit" yaml:"spirit"`
}

// Add returns the field-wise sum of b and o.
func (b StatBlock) Add(o StatBlock) StatBlock {
	return StatBlock{
		Attack:    b.Attack + o.Attack,
		Defence:   b.Defence + o.Defence,
		Strength:  b.Strength + o.Strength,
		Agility:   b.Agility + o.Agility,
		Stamina:   b.Stamina + o.Stamina,
		Intellect: b.Intellect + o.Intellect,
		Spirit:    b.Spirit + o.Spirit,
	}
}
