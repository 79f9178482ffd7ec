package model

import "strings"

// NormalizeID canonicalizes a carpark identifier for matching: trimmed
// and upper-cased. The static dataset and the live feed disagree on
// case for a handful of carparks, so matching folds case while the
// stored Carpark.ID keeps the dataset's original spelling.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
