package review

import "time"

type Review struct {
	ID        string    `json:"id"`
	PlaceName string    `json:"place_name"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitStatus tells the caller what happened to a submitted review.
// "queued" is a normal outcome, not an error.
type SubmitStatus string

const (
	StatusPersisted SubmitStatus = "persisted"
	StatusQueued    SubmitStatus = "queued"
)

// FlushResult summarizes one flush pass. Partial success is steady state:
// failed items stay queued in their original relative order.
type FlushResult struct {
	Flushed   int `json:"flushed"`
	Remaining int `json:"remaining"`
}
