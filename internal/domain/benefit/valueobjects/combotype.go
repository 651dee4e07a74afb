package valueobjects

import "fmt"

// ComboType selects a lunch combo from the company's catalog. Prices per
// combo come from BusinessConfig, never from constants.
type ComboType string

const (
	ComboStandard   ComboType = "standard"
	ComboPremium    ComboType = "premium"
	ComboVegetarian ComboType = "vegetarian"
)

var ValidComboTypes = map[ComboType]bool{
	ComboStandard:   true,
	ComboPremium:    true,
	ComboVegetarian: true,
}

func ParseComboType(s string) (ComboType, error) {
	ct := ComboType(s)
	if !ValidComboTypes[ct] {
		return "", fmt.Errorf("invalid combo type: %s", s)
	}
	return ct, nil
}

func (c ComboType) IsValid() bool {
	return ValidComboTypes[c]
}

func (c ComboType) String() string {
	return string(c)
}
