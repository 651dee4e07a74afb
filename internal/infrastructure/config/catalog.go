package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	vo "github.com/tiffin-hq/tiffin/internal/domain/benefit/valueobjects"
)

// comboCatalogFile is the on-disk shape of the combo price catalog.
type comboCatalogFile struct {
	Combos []struct {
		Type       string `yaml:"type"`
		PriceCents int64  `yaml:"price_cents"`
	} `yaml:"combos"`
}

// LoadComboCatalog reads the combo price catalog from a YAML file and
// returns the price map used to seed the business_configs row. Unknown
// combo types and non-positive prices are rejected so a typo in the file
// cannot silently produce free lunches.
func LoadComboCatalog(path string) (map[vo.ComboType]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read combo catalog: %w", err)
	}

	var file comboCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse combo catalog: %w", err)
	}
	if len(file.Combos) == 0 {
		return nil, fmt.Errorf("combo catalog %s contains no combos", path)
	}

	prices := make(map[vo.ComboType]int64, len(file.Combos))
	for _, combo := range file.Combos {
		ct, err := vo.ParseComboType(combo.Type)
		if err != nil {
			return nil, fmt.Errorf("combo catalog %s: %w", path, err)
		}
		if combo.PriceCents <= 0 {
			return nil, fmt.Errorf("combo catalog %s: price for %s must be positive", path, combo.Type)
		}
		if _, exists := prices[ct]; exists {
			return nil, fmt.Errorf("combo catalog %s: duplicate combo type %s", path, combo.Type)
		}
		prices[ct] = combo.PriceCents
	}
	return prices, nil
}
