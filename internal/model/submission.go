package model

import "time"

// Submission is a free-form end-of-hackathon submission record. It is an
// audit entry and deliberately not linked to a Project: teams submit under
// whatever name they like.
type Submission struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"project_name"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	SubmittedBy string    `json:"submitted_by"`
	SubmittedAt time.Time `json:"submitted_at"`
}
