package notify

import "context"

// Notifier delivers lifecycle notifications. The caller has already
// persisted its state change before notifying; delivery failures are logged
// and never retried, so implementations must not be load-bearing.
type Notifier interface {
	ProposalSubmitted(ctx context.Context, e ProposalSubmittedEvent) error
	ProposalApproved(ctx context.Context, e ProposalDecidedEvent) error
	ProposalRejected(ctx context.Context, e ProposalDecidedEvent) error
	MemberJoined(ctx context.Context, e MemberJoinedEvent) error
	SubmissionReceived(ctx context.Context, e SubmissionReceivedEvent) error
}

// NoopNotifier is used when the bot token is not configured and in tests.
type NoopNotifier struct{}

func (NoopNotifier) ProposalSubmitted(context.Context, ProposalSubmittedEvent) error   { return nil }
func (NoopNotifier) ProposalApproved(context.Context, ProposalDecidedEvent) error      { return nil }
func (NoopNotifier) ProposalRejected(context.Context, ProposalDecidedEvent) error      { return nil }
func (NoopNotifier) MemberJoined(context.Context, MemberJoinedEvent) error             { return nil }
func (NoopNotifier) SubmissionReceived(context.Context, SubmissionReceivedEvent) error { return nil }

var _ Notifier = NoopNotifier{}
