package employee

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// nameRegex ensures the name contains only valid characters
var nameRegex = regexp.MustCompile(`^[\p{L}\s\-'\.]+$`)

// Name is a person's name value object, trimmed and validated at
// construction.
type Name struct {
	value string
}

// NewName creates a Name value object with validation.
func NewName(value string) (Name, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return Name{}, fmt.Errorf("name cannot be empty")
	}
	if len(normalized) > 100 {
		return Name{}, fmt.Errorf("name cannot exceed 100 characters")
	}
	if !nameRegex.MatchString(normalized) {
		return Name{}, fmt.Errorf("name contains invalid characters: %s", value)
	}
	if strings.Contains(normalized, "  ") {
		return Name{}, fmt.Errorf("name cannot contain consecutive spaces")
	}

	return Name{value: normalized}, nil
}

// String returns the raw stored name.
func (n Name) String() string {
	return n.value
}

// IsZero reports whether the name is unset.
func (n Name) IsZero() bool {
	return n.value == ""
}

// Equals compares two names case-insensitively.
func (n Name) Equals(other Name) bool {
	return strings.EqualFold(n.value, other.value)
}

// DisplayName returns the name with each part title-cased.
func (n Name) DisplayName() string {
	caser := cases.Title(language.English)
	parts := strings.Fields(n.value)
	formatted := make([]string, 0, len(parts))
	for _, part := range parts {
		formatted = append(formatted, caser.String(strings.ToLower(part)))
	}
	return strings.Join(formatted, " ")
}

// MarshalJSON implements json.Marshaler.
func (n Name) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Name) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	name, err := NewName(str)
	if err != nil {
		return err
	}

	*n = name
	return nil
}
