package domain

import "regexp"

var mobilePattern = regexp.MustCompile(`^\+[0-9]{1,3}-[0-9]{2}-[0-9]{4}-[0-9]{4}$`)

// Guest is a value object; replacing a reservation's guest always builds a
// new value through NewGuest, never edits fields in place.
type Guest struct {
	Mobile string
	Name   string
}

func NewGuest(mobile, name string) (Guest, error) {
	if !mobilePattern.MatchString(mobile) {
		return Guest{}, ErrInvalidMobile
	}
	return Guest{Mobile: mobile, Name: name}, nil
}
