package booking

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidContact = errors.New("contact name and a valid email or phone are required")
	ErrNotesTooLong   = errors.New("notes exceed maximum length")
)

var (
	contactEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex        = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)
)

type Contact struct {
	name  string
	email string
	phone string
}

func NewContact(name, email, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return Contact{}, ErrInvalidContact
	}
	if email != "" && !contactEmailRegex.MatchString(email) {
		return Contact{}, ErrInvalidContact
	}
	if phone != "" && !phoneRegex.MatchString(phone) {
		return Contact{}, ErrInvalidContact
	}
	if email == "" && phone == "" {
		return Contact{}, ErrInvalidContact
	}
	return Contact{name: name, email: email, phone: phone}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Email() string { return c.email }
func (c Contact) Phone() string { return c.phone }

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func (n Notes) String() string { return n.value }
