package entity

import (
	"fmt"
	"math/rand"
)

// Wealth is the family wealth tier the actor is born into
type Wealth int

const (
	WealthPoor Wealth = iota
	WealthMiddleClass
	WealthRich
)

func (w Wealth) String() string {
	switch w {
	case WealthPoor:
		return "poor"
	case WealthMiddleClass:
		return "middle-class"
	default:
		return "rich"
	}
}

// SkinTone is the actor's skin tone tier
type SkinTone int

const (
	SkinLight SkinTone = iota
	SkinMedium
	SkinDark
)

// Strength tier
type Strength int

const (
	StrengthWeak Strength = iota
	StrengthStrong
)

// Intelligence tier
type Intelligence int

const (
	IntelligenceDumb Intelligence = iota
	IntelligenceSmart
)

// Attributes are assigned outside the simulation (character roll) and read by
// knock-back zones, spawn selection and the debuff trigger.
type Attributes struct {
	Wealth           Wealth       `json:"wealth"`
	Skin             SkinTone     `json:"skin"`
	Strength         Strength     `json:"strength"`
	Intelligence     Intelligence `json:"intelligence"`
	Depressive       bool         `json:"depressive"`
	SupportiveFamily bool         `json:"supportiveFamily"`
	Male             bool         `json:"male"`
}

// RollAttributes draws a random character
func RollAttributes(rng *rand.Rand) Attributes {
	return Attributes{
		Wealth:           Wealth(rng.Intn(3)),
		Skin:             SkinTone(rng.Intn(3)),
		Strength:         Strength(rng.Intn(2)),
		Intelligence:     Intelligence(rng.Intn(2)),
		Depressive:       rng.Intn(2) == 0,
		SupportiveFamily: rng.Intn(2) == 0,
		Male:             rng.Intn(2) == 0,
	}
}

// Describe returns the one-paragraph character introduction
func (a Attributes) Describe() string {
	family := "unstructured"
	if a.SupportiveFamily {
		family = "supportive"
	}

	gender := "woman"
	if a.Male {
		gender = "man"
	}

	mental := "mentally healthy, "
	if a.Depressive {
		mental = ""
	}

	strength := "not very strong"
	if a.Strength == StrengthStrong {
		strength = "physically strong"
	}

	intelligence := "not very smart"
	if a.Intelligence == IntelligenceSmart {
		intelligence = "fairly smart"
	}

	// "and" when both traits point the same way
	joiner := "but you're"
	if (a.Strength == StrengthStrong) == (a.Intelligence == IntelligenceSmart) {
		joiner = "and"
	}

	return fmt.Sprintf("You're a %s born to a %s %s family. You're %s%s %s %s.",
		gender, a.Wealth, family, mental, strength, joiner, intelligence)
}
