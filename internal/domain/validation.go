package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	idPattern       = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	imageURLPattern = regexp.MustCompile(`^(https?://[^\s\p{Z}]+)$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	amountPattern   = regexp.MustCompile(`^\d+$`)
)

// ValidateID checks a path identifier against the 24-hex scheme.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return invalid("id")
	}
	return nil
}

// CanonicalID validates id and returns it in the lowercase form the stores
// generate, so lookups do not depend on the caller's hex case.
func CanonicalID(id string) (string, error) {
	if err := ValidateID(id); err != nil {
		return "", err
	}
	return strings.ToLower(id), nil
}

// NormalizeCauseInput trims the fields and returns the first failing check.
func NormalizeCauseInput(in CauseInput) (CauseInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)

	switch {
	case in.Title == "":
		return in, missing("title")
	case in.Description == "":
		return in, missing("description")
	case in.ImageURL == "":
		return in, missing("imageURL")
	case !imageURLPattern.MatchString(in.ImageURL):
		return in, invalid("imageURL")
	}
	return in, nil
}

// ParseContributionInput validates the raw fields and returns the trimmed
// name and email plus the parsed amount.
func ParseContributionInput(in ContributionInput) (name, email string, amount int64, err error) {
	name = strings.TrimSpace(in.Name)
	email = strings.TrimSpace(in.Email)
	raw := strings.TrimSpace(in.Amount)

	switch {
	case name == "":
		return "", "", 0, missing("name")
	case email == "":
		return "", "", 0, missing("email")
	case !emailPattern.MatchString(email):
		return "", "", 0, invalid("email")
	case raw == "":
		return "", "", 0, missing("amount")
	case !amountPattern.MatchString(raw):
		return "", "", 0, invalid("amount")
	}

	amount, err = strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return "", "", 0, invalid("amount")
	}
	return name, email, amount, nil
}
