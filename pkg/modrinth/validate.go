package modrinth

import (
	"fmt"
)

// ValidateSlugOrID checks that every character of s is an ASCII letter,
// digit, or hyphen, which covers both opaque project ids and human-readable
// slugs. An empty string passes: it contains no disallowed character, and
// the remote service is the arbiter of whether the resulting path names a
// project. Validation is a pure predicate; no network access occurs.
func ValidateSlugOrID(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSlugByte(c) {
			continue
		}

		return fmt.Errorf("%w: %q contains %q", ErrInvalidSlugOrID, s, c)
	}

	return nil
}

// ValidateSlugsOrIDs validates each member of ss in order and returns the
// first failure.
func ValidateSlugsOrIDs(ss []string) error {
	for _, s := range ss {
		if err := ValidateSlugOrID(s); err != nil {
			return err
		}
	}

	return nil
}

// ValidateSHA1 checks that s is exactly 40 characters, each a lowercase hex
// digit. Uppercase hex is rejected.
func ValidateSHA1(s string) error {
	if len(s) != sha1HexLen {
		return fmt.Errorf("%w: got %d characters, want %d", ErrInvalidSHA1, len(s), sha1HexLen)
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isLowerHexByte(c) {
			continue
		}

		return fmt.Errorf("%w: %q contains %q", ErrInvalidSHA1, s, c)
	}

	return nil
}

const sha1HexLen = 40

func isSlugByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '-'
}

func isLowerHexByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f'
}
