package models

import (
	"fmt"
	"strings"
)

type ItemType string

const (
	ItemTypeDrinks ItemType = "Drinks"
	ItemTypeSoup   ItemType = "Soup"
	ItemTypeSweets ItemType = "Sweets"
)

func ParseItemType(s string) (ItemType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drinks":
		return ItemTypeDrinks, nil
	case "soup":
		return ItemTypeSoup, nil
	case "sweets":
		return ItemTypeSweets, nil
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

// MenuItem is keyed by name; there is no surrogate id.
type MenuItem struct {
	Name        string
	Type        ItemType
	Price       string // decimal string, e.g. "4.50"
	Description string
	ImageURL    string
}
