package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category key is not one of the seven categories.
var ErrUnknownCategory = errors.New("unknown reaction category")

// Category is a metabolic oxidation category. The set is closed.
type Category string

const (
	CategoryAromaticOxidation     Category = "aromatic_oxidation"
	CategoryAlkeneOxidation       Category = "alkene_oxidation"
	CategoryAlkylOxidation        Category = "alkyl_oxidation"
	CategoryAlcoholOxidation      Category = "alcohol_oxidation"
	CategorySulfurOxidation       Category = "sulfur_oxidation"
	CategorySp2NOxidation         Category = "sp2_n_oxidation"
	CategoryOxidativeDealkylation Category = "oxidative_dealkylation"
)

var categoryLabels = map[Category]string{
	CategoryAromaticOxidation:     "Aromatic Oxidation",
	CategoryAlkeneOxidation:       "Alkene Oxidation",
	CategoryAlkylOxidation:        "Alkyl Oxidation (α, ω, ω-1)",
	CategoryAlcoholOxidation:      "Alcohol Oxidation",
	CategorySulfurOxidation:       "Sulfur Oxidation",
	CategorySp2NOxidation:         "sp² N-Oxidation",
	CategoryOxidativeDealkylation: "Oxidative Dealkylation (N/O/S)",
}

// AllCategories lists the categories in teaching order.
var AllCategories = []Category{
	CategoryAromaticOxidation,
	CategoryAlkeneOxidation,
	CategoryAlkylOxidation,
	CategoryAlcoholOxidation,
	CategorySulfurOxidation,
	CategorySp2NOxidation,
	CategoryOxidativeDealkylation,
}

// ParseCategory parses a category key. Accepts keys such as "sulfur_oxidation" (case-insensitive).
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Valid reports whether c is one of the seven categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the badge text of the category. It does not depend on the display language.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Category) String() string {
	return c.Label()
}
