package domain

import "strings"

// PersonalityType is a four-letter MBTI code such as "INTJ".
type PersonalityType string

const (
	INTJ PersonalityType = "INTJ"
	INTP PersonalityType = "INTP"
	ENTJ PersonalityType = "ENTJ"
	ENTP PersonalityType = "ENTP"
	INFJ PersonalityType = "INFJ"
	INFP PersonalityType = "INFP"
	ENFJ PersonalityType = "ENFJ"
	ENFP PersonalityType = "ENFP"
	ISTJ PersonalityType = "ISTJ"
	ISFJ PersonalityType = "ISFJ"
	ESTJ PersonalityType = "ESTJ"
	ESFJ PersonalityType = "ESFJ"
	ISTP PersonalityType = "ISTP"
	ISFP PersonalityType = "ISFP"
	ESTP PersonalityType = "ESTP"
	ESFP PersonalityType = "ESFP"
)

// PersonalityTypes lists all sixteen codes grouped by temperament.
var PersonalityTypes = []PersonalityType{
	INTJ, INTP, ENTJ, ENTP,
	INFJ, INFP, ENFJ, ENFP,
	ISTJ, ISFJ, ESTJ, ESFJ,
	ISTP, ISFP, ESTP, ESFP,
}

// Trait is a single MBTI pole letter.
type Trait string

const (
	TraitE Trait = "E"
	TraitI Trait = "I"
	TraitS Trait = "S"
	TraitN Trait = "N"
	TraitT Trait = "T"
	TraitF Trait = "F"
	TraitJ Trait = "J"
	TraitP Trait = "P"
)

// ValidTraits is the canonical set of accepted trait letters.
var ValidTraits = map[Trait]bool{
	TraitE: true, TraitI: true, TraitS: true, TraitN: true,
	TraitT: true, TraitF: true, TraitJ: true, TraitP: true,
}

// Temperament groups the sixteen types into four families.
type Temperament string

const (
	TemperamentAnalyst  Temperament = "NT"
	TemperamentDiplomat Temperament = "NF"
	TemperamentSentinel Temperament = "SJ"
	TemperamentExplorer Temperament = "SP"
)

// Valid reports whether p is one of the sixteen known codes.
func (p PersonalityType) Valid() bool {
	for _, t := range PersonalityTypes {
		if t == p {
			return true
		}
	}
	return false
}

// Traits splits the code into its four letters.
func (p PersonalityType) Traits() []Trait {
	traits := make([]Trait, 0, len(p))
	for _, r := range string(p) {
		traits = append(traits, Trait(r))
	}
	return traits
}

// Temperament returns the family of p, or "" for an unknown code.
func (p PersonalityType) Temperament() Temperament {
	if !p.Valid() {
		return ""
	}
	s := string(p)
	switch {
	case s[1] == 'N' && s[2] == 'T':
		return TemperamentAnalyst
	case s[1] == 'N' && s[2] == 'F':
		return TemperamentDiplomat
	case s[1] == 'S' && s[3] == 'J':
		return TemperamentSentinel
	default:
		return TemperamentExplorer
	}
}

// ParsePersonalityType normalizes user input and validates it.
func ParsePersonalityType(s string) (PersonalityType, error) {
	p := PersonalityType(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", &ValidationError{Field: "personality_type", Value: s, Err: ErrInvalidPersonality}
	}
	return p, nil
}
