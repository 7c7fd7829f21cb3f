package domain

import "unicode/utf8"

const maxTitleLength = 100

// Title is a task title of 1 to 100 characters.
type Title struct {
	value string
}

func NewTitle(raw string) (Title, error) {
	length := utf8.RuneCountInString(raw)
	if length < 1 || length > maxTitleLength {
		return Title{}, newValidationError("title", raw, nil)
	}
	return Title{value: raw}, nil
}

func (t Title) String() string {
	return t.value
}

// Body is free text; every string is accepted.
type Body struct {
	value string
}

func NewBody(raw string) (Body, error) {
	return Body{value: raw}, nil
}

func (b Body) String() string {
	return b.value
}

// IsDone is the completion flag of a task.
type IsDone struct {
	value bool
}

func NewIsDone(v bool) IsDone {
	return IsDone{value: v}
}

func (d IsDone) Bool() bool {
	return d.value
}

// Toggle returns the negated flag.
func (d IsDone) Toggle() IsDone {
	return IsDone{value: !d.value}
}
