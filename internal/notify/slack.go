package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/metrics"
)

// Sender is the message-delivery surface of the Slack client. A user id is a
// valid destination and opens a DM.
type Sender interface {
	PostMessage(ctx context.Context, channelID, text string, blocks ...slack.Block) (string, error)
	UpdateMessage(ctx context.Context, channelID, ts, text string, blocks ...slack.Block) error
}

// Channels holds the destination channel ids for each notification stream.
type Channels struct {
	Approvals     string
	Announcements string
	Submissions   string
}

// SlackNotifier renders lifecycle events as Block Kit messages and routes
// them to the configured channels and DMs.
type SlackNotifier struct {
	sender   Sender
	channels Channels
	log      *zap.Logger
}

func NewSlackNotifier(sender Sender, channels Channels, log *zap.Logger) *SlackNotifier {
	return &SlackNotifier{sender: sender, channels: channels, log: log}
}

var _ Notifier = (*SlackNotifier)(nil)

func (n *SlackNotifier) ProposalSubmitted(ctx context.Context, e ProposalSubmittedEvent) error {
	p := e.Project
	blocks := []slack.Block{
		section(fmt.Sprintf("*New Project Proposal*: %s", p.Title)),
		section(fmt.Sprintf("*Proposed by*: <@%s>\n\n*Description*:\n%s\n\n*Goals*:\n%s\n\n*Skills Needed*:\n%s",
			p.Proposer.ID, p.Description, p.Goals, p.SkillsNeeded)),
		slack.NewActionBlock(
			fmt.Sprintf("approve_project_%s", p.ID),
			slack.NewButtonBlockElement(ActionApproveProject, p.ID,
				slack.NewTextBlockObject(slack.PlainTextType, "Approve", false, false)).WithStyle(slack.StylePrimary),
			slack.NewButtonBlockElement(ActionRejectProject, p.ID,
				slack.NewTextBlockObject(slack.PlainTextType, "Reject", false, false)).WithStyle(slack.StyleDanger),
		),
	}

	err := n.send(ctx, "proposal_submitted", n.channels.Approvals,
		fmt.Sprintf("New Project Proposal: %s", p.Title), blocks...)

	n.send(ctx, "proposal_submitted", p.Proposer.ID,
		fmt.Sprintf("Your project proposal %q has been submitted for review. You'll be notified when it's approved or rejected.", p.Title))
	return err
}

func (n *SlackNotifier) ProposalApproved(ctx context.Context, e ProposalDecidedEvent) error {
	p := e.Project

	if e.Channel != "" && e.MessageTS != "" {
		updated := []slack.Block{
			section(fmt.Sprintf("✅ *Project Approved*: %s", p.Title)),
			section(fmt.Sprintf("*Proposed by*: <@%s>\n\n*Description*:\n%s\n\n*Approved by*: <@%s>",
				p.Proposer.ID, p.Description, e.DeciderID)),
		}
		if err := n.sender.UpdateMessage(ctx, e.Channel, e.MessageTS,
			fmt.Sprintf("Project Approved: %s", p.Title), updated...); err != nil {
			n.log.Warn("update approvals message failed", zap.String("project_id", p.ID), zap.Error(err))
		}
	}

	announcement := []slack.Block{
		section(fmt.Sprintf("🎉 *New Project Approved*: %s", p.Title)),
		section(fmt.Sprintf("*Proposed by*: <@%s>\n\n*Description*:\n%s\n\n*Goals*:\n%s\n\n*Skills Needed*:\n%s\n\nInterested? Use `/join-project %s` to join this team!",
			p.Proposer.ID, p.Description, p.Goals, p.SkillsNeeded, p.ID)),
	}
	err := n.send(ctx, "proposal_approved", n.channels.Announcements,
		fmt.Sprintf("New Project Approved: %s", p.Title), announcement...)

	n.send(ctx, "proposal_approved", p.Proposer.ID,
		fmt.Sprintf("🎉 Your project %q has been approved! It's now visible to all participants.", p.Title))
	return err
}

func (n *SlackNotifier) ProposalRejected(ctx context.Context, e ProposalDecidedEvent) error {
	p := e.Project

	if e.Channel != "" && e.MessageTS != "" {
		updated := []slack.Block{
			section(fmt.Sprintf("❌ *Project Rejected*: %s", p.Title)),
			section(fmt.Sprintf("*Proposed by*: <@%s>\n\n*Description*:\n%s\n\n*Rejected by*: <@%s>",
				p.Proposer.ID, p.Description, e.DeciderID)),
		}
		if err := n.sender.UpdateMessage(ctx, e.Channel, e.MessageTS,
			fmt.Sprintf("Project Rejected: %s", p.Title), updated...); err != nil {
			n.log.Warn("update approvals message failed", zap.String("project_id", p.ID), zap.Error(err))
		}
	}

	return n.send(ctx, "proposal_rejected", p.Proposer.ID,
		fmt.Sprintf("Your project %q was not approved for the hackathon. Please contact an organizer for more information or to revise your proposal.", p.Title))
}

func (n *SlackNotifier) MemberJoined(ctx context.Context, e MemberJoinedEvent) error {
	return n.send(ctx, "member_joined", e.Project.Proposer.ID,
		fmt.Sprintf("%s has joined your project %q!", e.UserName, e.Project.Title))
}

func (n *SlackNotifier) SubmissionReceived(ctx context.Context, e SubmissionReceivedEvent) error {
	sub := e.Submission
	blocks := []slack.Block{
		section("*New Project Submission!*"),
		section(fmt.Sprintf("*Project:* %s\n*By:* <@%s>\n*Description:* %s\n*Link:* %s",
			sub.ProjectName, sub.SubmittedBy, sub.Description, sub.Link)),
	}
	err := n.send(ctx, "submission_received", n.channels.Submissions, "New Project Submission!", blocks...)

	n.send(ctx, "submission_received", sub.SubmittedBy,
		fmt.Sprintf("Thanks for submitting your project %q! The judges will review it shortly.", sub.ProjectName))
	return err
}

func (n *SlackNotifier) send(ctx context.Context, event, destination, text string, blocks ...slack.Block) error {
	if destination == "" {
		return nil
	}
	if _, err := n.sender.PostMessage(ctx, destination, text, blocks...); err != nil {
		metrics.Notifications.WithLabelValues(event, "error").Inc()
		n.log.Warn("notification delivery failed",
			zap.String("event", event),
			zap.String("destination", destination),
			zap.Error(err))
		return err
	}
	metrics.Notifications.WithLabelValues(event, "ok").Inc()
	return nil
}

func section(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}
