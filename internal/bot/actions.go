package bot

import (
	"context"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/notify"
)

// HandleBlockAction processes button clicks from the approvals channel.
// Decision failures are logged and produce no user-visible reply; the review
// message simply stays as-is.
func (h *Handler) HandleBlockAction(ctx context.Context, cb slack.InteractionCallback) {
	for _, action := range cb.ActionCallback.BlockActions {
		switch action.ActionID {
		case notify.ActionApproveProject:
			h.decide(ctx, cb, action.Value, true)
		case notify.ActionRejectProject:
			h.decide(ctx, cb, action.Value, false)
		}
	}
}

func (h *Handler) decide(ctx context.Context, cb slack.InteractionCallback, projectID string, approve bool) {
	project, err := h.projects.Decide(projectID, approve, cb.User.ID)
	if err != nil {
		h.log.Warn("decision ignored",
			zap.String("project_id", projectID),
			zap.Bool("approve", approve),
			zap.String("decider", cb.User.ID),
			zap.Error(err))
		return
	}

	event := notify.ProposalDecidedEvent{
		Project:   project,
		DeciderID: cb.User.ID,
		Channel:   cb.Channel.ID,
		MessageTS: cb.Message.Timestamp,
	}
	if approve {
		err = h.notifier.ProposalApproved(ctx, event)
	} else {
		err = h.notifier.ProposalRejected(ctx, event)
	}
	if err != nil {
		h.log.Warn("decision notification failed", zap.String("project_id", projectID), zap.Error(err))
	}
}

// HandleViewSubmission processes modal results. The lifecycle mutation is
// persisted before any notification goes out.
func (h *Handler) HandleViewSubmission(ctx context.Context, cb slack.InteractionCallback) {
	switch cb.View.CallbackID {
	case CallbackProposal:
		h.handleProposalSubmit(ctx, cb)
	case CallbackSubmission:
		h.handleSubmissionSubmit(ctx, cb)
	}
}

func (h *Handler) handleProposalSubmit(ctx context.Context, cb slack.InteractionCallback) {
	values := cb.View.State.Values
	title := values["project_title"]["title"].Value
	description := values["project_description"]["description"].Value
	goals := values["project_goals"]["goals"].Value
	skillsNeeded := values["skills_needed"]["skills"].Value

	proposerName := cb.User.Name
	if user, err := h.slack.UserInfo(ctx, cb.User.ID); err == nil {
		proposerName = user.Name
	} else {
		h.log.Warn("user lookup failed, using handle", zap.String("user", cb.User.ID), zap.Error(err))
	}

	project := h.projects.Propose(title, description, goals, skillsNeeded, cb.User.ID, proposerName)

	if err := h.notifier.ProposalSubmitted(ctx, notify.ProposalSubmittedEvent{Project: project}); err != nil {
		h.log.Warn("proposal notification failed", zap.String("project_id", project.ID), zap.Error(err))
	}
}

func (h *Handler) handleSubmissionSubmit(ctx context.Context, cb slack.InteractionCallback) {
	values := cb.View.State.Values
	name := values["project_name"]["name"].Value
	description := values["project_desc"]["desc"].Value
	link := values["project_link"]["link"].Value

	sub := h.projects.Submit(name, description, link, cb.User.ID)

	if err := h.notifier.SubmissionReceived(ctx, notify.SubmissionReceivedEvent{Submission: sub}); err != nil {
		h.log.Warn("submission notification failed", zap.String("submission_id", sub.ID), zap.Error(err))
	}
}
