package booking

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength  = 2
	MinPhoneLength = 10
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < MinNameLength {
		return Name{}, ErrNameTooShort
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string { return e.value }

// Phone is used for both the phone and the WhatsApp number.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinPhoneLength || !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }
