package model

import "time"

// Project lifecycle statuses. A project is decided exactly once:
// pending → approved or pending → rejected, both terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Proposer identifies the user who submitted a project proposal.
type Proposer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is a proposed hackathon project and its team roster.
type Project struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Goals        string     `json:"goals"`
	SkillsNeeded string     `json:"skills_needed"`
	Proposer     Proposer   `json:"proposer"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	ApprovedBy   string     `json:"approved_by,omitempty"`
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
	RejectedBy   string     `json:"rejected_by,omitempty"`

	// TeamMembers is insertion-ordered and duplicate-free; the proposer is
	// always the first member.
	TeamMembers []string `json:"team_members"`
}

func (p *Project) IsMember(userID string) bool {
	for _, id := range p.TeamMembers {
		if id == userID {
			return true
		}
	}
	return false
}

func (p *Project) Decided() bool { return p.Status != StatusPending }
