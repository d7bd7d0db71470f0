package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Attribute is one of the six base character traits.
type Attribute int

// Attributes in display order.
const (
	Strength Attribute = iota
	Agility
	Stamina
	Intellect
	Spirit
	Defence

	attributeCount
)

var attributeLabels = [attributeCount]string{
	Strength:  "Strength",
	Agility:   "Agility",
	Stamina:   "Stamina",
	Intellect: "Intellect",
	Spirit:    "Spirit",
	Defence:   "Defence",
}

// AllAttributes returns every attribute in display order.
func AllAttributes() []Attribute {
	all := make([]Attribute, attributeCount)
	for i := range all {
		all[i] = Attribute(i)
	}
	return all
}

// Valid reports whether a is a known attribute.
func (a Attribute) Valid() bool {
	return a >= 0 && a < attributeCount
}

// String returns the display label, e.g. "Stamina".
func (a Attribute) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
	return attributeLabels[a]
}

// Key returns the lower-case name used in stored documents.
func (a Attribute) Key() string {
	return strings.ToLower(a.String())
}

// ParseAttribute resolves a label case-insensitively.
func ParseAttribute(label string) (Attribute, bool) {
	for i, l := range attributeLabels {
		if strings.EqualFold(l, strings.TrimSpace(label)) {
			return Attribute(i), true
		}
	}
	return 0, false
}

// Attributes holds one value per Attribute.
type Attributes [attributeCount]int

// NewAttributes returns attributes with every value set to v.
func NewAttributes(v int) Attributes {
	var a Attributes
	for i := range a {
		a[i] = v
	}
	return a
}

// Get returns the value of attr.
func (a Attributes) Get(attr Attribute) int {
	return a[attr]
}

// MarshalJSON writes the attributes as an object keyed by lower-case name.
func (a Attributes) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, attributeCount)
	for i, v := range a {
		m[Attribute(i).Key()] = v
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the object form written by MarshalJSON.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out Attributes
	for key, v := range m {
		attr, ok := ParseAttribute(key)
		if !ok {
			return fmt.Errorf("unknown attribute %q", key)
		}
		out[attr] = v
	}
	*a = out
	return nil
}
