package notify

import "github.com/Scriptome-AI/hackathon-hackagent/internal/model"

// Interaction ids shared between the proposal review message and the action
// handlers that consume its button clicks.
const (
	ActionApproveProject = "approve_project"
	ActionRejectProject  = "reject_project"
)

// ProposalSubmittedEvent announces a new pending proposal to the approvals
// channel and confirms receipt to the proposer.
type ProposalSubmittedEvent struct {
	Project model.Project
}

// ProposalDecidedEvent carries an approval or rejection, plus the location
// of the original review message so it can be rewritten in place.
type ProposalDecidedEvent struct {
	Project   model.Project
	DeciderID string
	Channel   string
	MessageTS string
}

// MemberJoinedEvent tells a team leader someone joined their project.
type MemberJoinedEvent struct {
	Project  model.Project
	UserID   string
	UserName string
}

// SubmissionReceivedEvent announces a final submission to the judges'
// channel and thanks the submitter.
type SubmissionReceivedEvent struct {
	Submission model.Submission
}
