package wordnet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by single-record lookups that match no row.
	ErrNotFound = errors.New("wordnet: not found")
	// ErrInvalidArgument is wrapped by errors for arguments rejected before
	// any cache or database access.
	ErrInvalidArgument = errors.New("wordnet: invalid argument")
)

func invalidArgument(name string, value any) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidArgument, name, fmt.Sprint(value))
}

func validateLang(lang Lang) error {
	if !lang.Valid() {
		return invalidArgument("lang", lang)
	}
	return nil
}

func validatePOS(pos POS) error {
	if !pos.Valid() {
		return invalidArgument("pos", pos)
	}
	return nil
}

func validateLink(link Link) error {
	if !link.Valid() {
		return invalidArgument("link", link)
	}
	return nil
}
