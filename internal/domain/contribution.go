package domain

import "time"

// Contribution is a pledge made towards a Cause. CauseDonatedTo holds the
// cause title as it was when the contribution was recorded.
type Contribution struct {
	ID             string    `json:"_id"`
	CauseID        string    `json:"causeId"`
	CauseDonatedTo string    `json:"causeDonatedTo"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Amount         int64     `json:"amount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ContributionInput carries the raw client fields. Amount stays textual until
// it passes validation.
type ContributionInput struct {
	Name   string
	Email  string
	Amount string
}
