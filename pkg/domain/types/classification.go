package types

import "github.com/m-mizutani/goerr/v2"

// Classification represents the severity tier of a risk score
type Classification string

const (
	ClassificationLow      Classification = "Low"
	ClassificationMedium   Classification = "Medium"
	ClassificationHigh     Classification = "High"
	ClassificationCritical Classification = "Critical"
)

// AllClassifications returns all classifications from least to most severe
func AllClassifications() []Classification {
	return []Classification{
		ClassificationLow,
		ClassificationMedium,
		ClassificationHigh,
		ClassificationCritical,
	}
}

// IsValid checks if the classification is valid
func (c Classification) IsValid() bool {
	switch c {
	case ClassificationLow,
		ClassificationMedium,
		ClassificationHigh,
		ClassificationCritical:
		return true
	default:
		return false
	}
}

// Initial returns the single-letter marker used in the matrix grid
func (c Classification) Initial() string {
	if c == "" {
		return ""
	}
	return string(c)[:1]
}

// String returns the string representation of the classification
func (c Classification) String() string {
	return string(c)
}

// ParseClassification parses a string into a Classification
func ParseClassification(s string) (Classification, error) {
	c := Classification(s)
	if !c.IsValid() {
		return "", goerr.New("invalid classification", goerr.V("classification", s))
	}
	return c, nil
}
