package domain

import (
	"regexp"
	"unicode/utf8"
)

const maxNameLength = 100

// Alphanumerics plus hiragana, katakana and kanji.
var nameCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9ぁ-んァ-ヶー一-龠々]+$`)

// Name is a participant name.
type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	if !isValidName(raw) {
		return Name{}, newValidationError("name", raw, nil)
	}
	return Name{value: raw}, nil
}

func (n Name) String() string {
	return n.value
}

// TeamName is the display name of a team. It follows the same rule as Name.
type TeamName struct {
	value string
}

func NewTeamName(raw string) (TeamName, error) {
	if !isValidName(raw) {
		return TeamName{}, newValidationError("teamName", raw, nil)
	}
	return TeamName{value: raw}, nil
}

func (n TeamName) String() string {
	return n.value
}

func isValidName(raw string) bool {
	length := utf8.RuneCountInString(raw)
	if length < 1 || length > maxNameLength {
		return false
	}
	return nameCharsRegex.MatchString(raw)
}
