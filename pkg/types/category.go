package types

import "strings"

// Category is the normalized sentiment class of a result
type Category string

const (
	CategoryPositive Category = "POSITIVE"
	CategoryNegative Category = "NEGATIVE"
	CategoryNeutral  Category = "NEUTRAL"
	CategoryUnknown  Category = "UNKNOWN"
)

// labelAliases maps upper-cased labels to categories
var labelAliases = map[string]Category{
	"POSITIVE": CategoryPositive,
	"POS":      CategoryPositive,
	"NEGATIVE": CategoryNegative,
	"NEG":      CategoryNegative,
	"NEUTRAL":  CategoryNeutral,
	"NEU":      CategoryNeutral,
}

// ParseCategory normalizes a model label, case-insensitively
func ParseCategory(label string) Category {
	if c, ok := labelAliases[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return c
	}
	return CategoryUnknown
}
