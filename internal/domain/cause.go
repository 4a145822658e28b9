package domain

// Cause is a fundraising campaign record.
type Cause struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
}

// CauseInput carries the client-supplied fields for create and full replace.
type CauseInput struct {
	Title       string
	Description string
	ImageURL    string
}
