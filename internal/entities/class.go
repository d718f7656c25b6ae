package entities

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Class is the closed set of character archetypes
type Class int

// Classes
const (
	ClassUnset Class = iota
	ClassWarrior
	ClassArcher
	ClassMage
)

// ClassBonus is added to base stats once, at class selection
type ClassBonus struct {
	HP      int
	Attack  int
	Defense int
}

var classBonuses = map[Class]ClassBonus{
	ClassWarrior: {HP: 20, Attack: 5, Defense: 10},
	ClassArcher:  {HP: 10, Attack: 10, Defense: 5},
	ClassMage:    {HP: 5, Attack: 15, Defense: 5},
}

var classNames = map[Class]string{
	ClassUnset:   "unset",
	ClassWarrior: "warrior",
	ClassArcher:  "archer",
	ClassMage:    "mage",
}

// russian names used by the original bot's buttons
var classAliases = map[string]Class{
	"warrior": ClassWarrior,
	"воин":    ClassWarrior,
	"archer":  ClassArcher,
	"лучник":  ClassArcher,
	"mage":    ClassMage,
	"маг":     ClassMage,
}

// Classes lists the selectable classes in menu order
func Classes() []Class {
	return []Class{ClassWarrior, ClassArcher, ClassMage}
}

// Bonus returns the stat bonus of the class. ClassUnset has none.
func (c Class) Bonus() ClassBonus {
	return classBonuses[c]
}

// Valid reports whether c is a selectable class
func (c Class) Valid() bool {
	_, ok := classBonuses[c]
	return ok
}

// String returns the class name
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// ParseClass resolves a class name, english or russian, case-insensitive
func ParseClass(name string) (Class, error) {
	if c, ok := classAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c, nil
	}
	return ClassUnset, errors.InvalidArgumentf("unknown class %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Class) UnmarshalText(b []byte) error {
	if len(b) == 0 || string(b) == classNames[ClassUnset] {
		*c = ClassUnset
		return nil
	}
	parsed, err := ParseClass(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
