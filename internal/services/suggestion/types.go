package suggestion

import "time"

// DinnerRequest is one user submission: up to three ingredients and a
// cuisine genre. It is constructed fresh per submission and never persisted
// by the core pipeline.
type DinnerRequest struct {
	Ingredients [3]string `json:"ingredients"`
	Cuisine     string    `json:"cuisine"`
}

// Suggestion is the outcome of a successful generation.
type Suggestion struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Cuisine   string    `json:"cuisine"`
	Text      string    `json:"suggestion"`
	CreatedAt time.Time `json:"createdAt"`
}

// ModelAvailability describes what the catalog currently offers: the models
// capable of generation and the one the selector would pick.
type ModelAvailability struct {
	Capable  []string `json:"capable"`
	Selected string   `json:"selected"`
}
