package model

// Participant is a pre-registered hackathon attendee. Records are created by
// the import step, never by runtime commands, and never deleted.
type Participant struct {
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	Skills         []string `json:"skills"`
	LookingForTeam bool     `json:"lookingForTeam"`
}

func (p *Participant) HasSkills() bool { return len(p.Skills) > 0 }
