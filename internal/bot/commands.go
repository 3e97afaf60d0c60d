package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/metrics"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/notify"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/service"
	"github.com/Scriptome-AI/hackathon-hackagent/pkg/slackbot"
)

// participantModalThreshold switches /participants from a full listing to a
// search-hint modal.
const participantModalThreshold = 20

// Slack is the subset of the Web API the command layer needs. Satisfied by
// *slackbot.Client.
type Slack interface {
	UserInfo(ctx context.Context, userID string) (slackbot.UserIdentity, error)
	OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error
	PostMessage(ctx context.Context, channelID, text string, blocks ...slack.Block) (string, error)
}

// Handler dispatches slash commands and interaction callbacks to the
// participant and project services and renders the replies.
type Handler struct {
	slack    Slack
	notifier notify.Notifier
	parts    *service.ParticipantService
	projects *service.ProjectService
	log      *zap.Logger
}

func NewHandler(sl Slack, notifier notify.Notifier, parts *service.ParticipantService, projects *service.ProjectService, log *zap.Logger) *Handler {
	return &Handler{slack: sl, notifier: notifier, parts: parts, projects: projects, log: log}
}

// HandleCommand routes a slash command and returns the immediate response,
// or nil for an empty acknowledgement (commands that open a modal).
func (h *Handler) HandleCommand(ctx context.Context, cmd slack.SlashCommand) *slack.Msg {
	metrics.Commands.WithLabelValues(cmd.Command).Inc()

	switch cmd.Command {
	case "/schedule":
		return blockReply("Here's the schedule for our AI Agent Building Hackathon:", scheduleBlocks())
	case "/faq":
		return blockReply("Frequently Asked Questions", faqBlocks())
	case "/team-find":
		return h.teamFind(ctx, cmd)
	case "/update-skills":
		return h.updateSkills(ctx, cmd)
	case "/find-skills":
		return h.findSkills(cmd)
	case "/participants":
		return h.participants(ctx, cmd)
	case "/hackathon-stats":
		return h.stats()
	case "/propose-project":
		return h.proposeProject(ctx, cmd)
	case "/projects":
		return h.listProjects()
	case "/join-project":
		return h.joinProject(ctx, cmd)
	case "/my-project":
		return h.myProject(ctx, cmd)
	case "/submit":
		return h.submit(ctx, cmd)
	default:
		h.log.Warn("unknown command", zap.String("command", cmd.Command))
		return textReply(fmt.Sprintf("Unknown command %s. Try `/schedule`, `/faq`, `/team-find`, or `/submit`.", cmd.Command))
	}
}

// HandleMention replies to an @-mention with a usage hint.
func (h *Handler) HandleMention(ctx context.Context, channelID string) {
	_, err := h.slack.PostMessage(ctx, channelID,
		"Hello! How can I help with the hackathon? Try commands like `/schedule`, `/faq`, `/team-find`, or `/submit`.")
	if err != nil {
		h.log.Warn("mention reply failed", zap.String("channel", channelID), zap.Error(err))
	}
}

// teamFind posts a team request to the whole channel, flips the requester's
// looking-for-team flag, and suggests up to five matching participants.
func (h *Handler) teamFind(ctx context.Context, cmd slack.SlashCommand) *slack.Msg {
	skills := strings.TrimSpace(cmd.Text)
	if skills == "" {
		return textReply("Please specify what skills you're looking for. Example: `/team-find AI, Python, Biology`")
	}

	user, err := h.slack.UserInfo(ctx, cmd.UserID)
	if err != nil {
		h.log.Warn("user lookup failed", zap.String("user", cmd.UserID), zap.Error(err))
		return textReply("Sorry, there was an error processing your request.")
	}

	if user.Email != "" {
		h.parts.MarkTeamRequested(user.Email)
	}

	matches, err := h.parts.SuggestTeammates(skills)
	if err != nil {
		return textReply("Please specify what skills you're looking for. Example: `/team-find AI, Python, Biology`")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Blocks:       slack.Blocks{BlockSet: teamFindBlocks(user.Name, cmd.UserID, skills, matches)},
	}
}

func (h *Handler) updateSkills(ctx context.Context, cmd slack.SlashCommand) *slack.Msg {
	raw := strings.TrimSpace(cmd.Text)
	if raw == "" {
		return textReply("Please specify your skills. Example: `/update-skills AI, Python, Biology`")
	}

	user, err := h.slack.UserInfo(ctx, cmd.UserID)
	if err != nil {
		h.log.Warn("user lookup failed", zap.String("user", cmd.UserID), zap.Error(err))
		return textReply("Sorry, there was an error updating your skills.")
	}

	if _, err := h.parts.UpdateSkills(user.Email, raw); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return textReply(fmt.Sprintf("ℹ️ Your email (%s) isn't in our pre-registered list. Please see an organizer for help.", user.Email))
		}
		return textReply("Sorry, there was an error updating your skills.")
	}
	return textReply("✅ Skills updated! Others can now find you when they're looking for team members with these skills.")
}

func (h *Handler) findSkills(cmd slack.SlashCommand) *slack.Msg {
	query := strings.TrimSpace(cmd.Text)
	matches, err := h.parts.FindBySkills(query)
	if err != nil {
		return textReply("Please specify skills to search for. Example: `/find-skills Python, Biology`")
	}
	if len(matches) == 0 {
		return textReply(fmt.Sprintf("No participants found with skills in: %s. Try broadening your search or using more general terms.", query))
	}
	return blockReply("", skillMatchBlocks(query, matches))
}

func (h *Handler) participants(ctx context.Context, cmd slack.SlashCommand) *slack.Msg {
	ps := h.parts.List()
	if len(ps) > participantModalThreshold {
		if err := h.slack.OpenView(ctx, cmd.TriggerID, participantsSearchModal(len(ps))); err != nil {
			h.log.Warn("open participants modal failed", zap.Error(err))
			return textReply(fmt.Sprintf("There are %d registered participants. Use '/find-skills' to search by specific skills.", len(ps)))
		}
		return nil
	}
	return blockReply("", participantListBlocks(ps))
}

func (h *Handler) stats() *slack.Msg {
	st := h.parts.Stats()
	return blockReply("", []slack.Block{
		section(fmt.Sprintf("*Hackathon Stats:*\n• Total Participants: %d\n• Participants with Skills Listed: %d\n• Looking for Team: %d",
			st.Total, st.WithSkills, st.LookingForTeam)),
	})
}

func (h *Handler) proposeProject(ctx context.Context, cmd slack.SlashCommand) *slack.Msg {
	if err := h.slack.OpenView(ctx, cmd.TriggerID, proposalModal()); err != nil {
		h.log.Warn("open proposal modal failed", zap.Error(err))
		return textReply("Sorry, there was an error opening the project proposal form.")
	}
	return nil
}

func (h *Handler) listProjects() *slack.Msg {
	approved := h.projects.ListApproved()
	if len(approved) == 0 {
		return textReply("No approved projects yet. Use `/propose-project` to submit your idea!")
	}
	return blockReply("", approvedProjectBlocks(approved))
}

func (h *Handler) joinProject(ctx context.Context, cmd slack.SlashCommand) *slack.Msg {
	projectID := strings.TrimSpace(cmd.Text)
	if projectID == "" {
		return textReply("Please specify a project ID. Use `/projects` to view available projects.")
	}

	project, err := h.projects.Join(projectID, cmd.UserID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return textReply("Project not found or not approved. Use `/projects` to view available projects.")
	case errors.Is(err, service.ErrAlreadyMember):
		return textReply(fmt.Sprintf("You're already on the team for %q!", project.Title))
	case err != nil:
		h.log.Error("join project failed", zap.String("project_id", projectID), zap.Error(err))
		return textReply("An error occurred while joining the project. Please try again later.")
	}

	userName := h.displayName(ctx, cmd.UserID)
	if err := h.notifier.MemberJoined(ctx, notify.MemberJoinedEvent{
		Project:  project,
		UserID:   cmd.UserID,
		UserName: userName,
	}); err != nil {
		h.log.Warn("member joined notification failed", zap.String("project_id", projectID), zap.Error(err))
	}

	return textReply(fmt.Sprintf("You've successfully joined the project %q!", project.Title))
}

func (h *Handler) myProject(ctx context.Context, cmd slack.SlashCommand) *slack.Msg {
	mine := h.projects.MyProjects(cmd.UserID)
	if len(mine) == 0 {
		return textReply("You're not currently on any project teams. Use `/projects` to view available projects.")
	}

	var blocks []slack.Block
	for _, p := range mine {
		team := make([]teamMember, 0, len(p.TeamMembers))
		for _, memberID := range p.TeamMembers {
			team = append(team, teamMember{ID: memberID, Name: h.displayName(ctx, memberID)})
		}
		blocks = append(blocks, myProjectBlocks(p, team, cmd.UserID)...)
	}
	return blockReply("", blocks)
}

func (h *Handler) submit(ctx context.Context, cmd slack.SlashCommand) *slack.Msg {
	if err := h.slack.OpenView(ctx, cmd.TriggerID, submissionModal()); err != nil {
		h.log.Warn("open submission modal failed", zap.Error(err))
	}
	return nil
}

// displayName resolves a user id for display, substituting a placeholder on
// lookup failure so listings still render.
func (h *Handler) displayName(ctx context.Context, userID string) string {
	user, err := h.slack.UserInfo(ctx, userID)
	if err != nil {
		h.log.Warn("user lookup failed", zap.String("user", userID), zap.Error(err))
		return "Unknown User"
	}
	return user.Name
}

// textReply builds an ephemeral plain-text response visible only to the
// invoker.
func textReply(text string) *slack.Msg {
	return &slack.Msg{ResponseType: slack.ResponseTypeEphemeral, Text: text}
}

func blockReply(text string, blocks []slack.Block) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
		Blocks:       slack.Blocks{BlockSet: blocks},
	}
}
