package bot

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/model"
)

// Modal callback ids. These round-trip through Slack and come back on view
// submissions.
const (
	CallbackProposal           = "project_proposal_view"
	CallbackSubmission         = "submission_view"
	CallbackParticipantsSearch = "participants_search"
)

// participantPageSize groups directory listings to stay under Slack message
// length limits.
const participantPageSize = 5

func section(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

func scheduleBlocks() []slack.Block {
	return []slack.Block{
		section("*AI Agent Building Hackathon Schedule*"),
		section("*8:00 - 8:30 AM:* Registration & Breakfast\n" +
			"*8:30 - 9:00 AM:* Welcome & Introduction\n" +
			"*9:00 - 9:30 AM:* Keynote Presentation\n" +
			"*9:30 - 10:00 AM:* Technical Workshop\n" +
			"*10:00 - 10:15 AM:* Challenge Presentation\n" +
			"*10:15 - 10:30 AM:* Team Formation\n" +
			"*10:30 - 12:30 PM:* Hacking Session 1\n" +
			"*12:30 - 1:30 PM:* Lunch Break\n" +
			"*1:30 - 3:30 PM:* Hacking Session 2\n" +
			"*3:30 - 4:00 PM:* Preparation for Presentations\n" +
			"*4:00 - 5:00 PM:* Project Presentations\n" +
			"*5:00 - 5:30 PM:* Judging & Networking\n" +
			"*5:30 - 6:00 PM:* Awards & Closing"),
	}
}

func faqBlocks() []slack.Block {
	return []slack.Block{
		section("*Frequently Asked Questions*"),
		section("*Q: What should I bring?*\nA: Your laptop, charger, and enthusiasm!\n\n" +
			"*Q: Is there WiFi?*\nA: Yes, network: 'HackathonWifi', password: 'BiotechAI2025'\n\n" +
			"*Q: Where can I find resources?*\nA: Check the #resources channel for APIs and datasets."),
	}
}

func teamFindBlocks(userName, userID, skills string, matches []model.Participant) []slack.Block {
	blocks := []slack.Block{
		section(fmt.Sprintf("📢 *Team Member Wanted!*\n\n*%s* is looking for team members with these skills:\n%s",
			userName, skills)),
	}
	if len(matches) > 0 {
		blocks = append(blocks, section("*Potential matches based on skills:*"))
		for _, m := range matches {
			blocks = append(blocks, section(fmt.Sprintf("• *%s* - Skills: %s", m.Name, strings.Join(m.Skills, ", "))))
		}
	}
	blocks = append(blocks, section(fmt.Sprintf(
		"If you're interested in joining %s's team, please reach out to <@%s> directly!", userName, userID)))
	return blocks
}

func skillMatchBlocks(query string, matches []model.Participant) []slack.Block {
	blocks := []slack.Block{
		section(fmt.Sprintf("*Participants with %s skills:*", query)),
	}
	for _, m := range matches {
		blocks = append(blocks, section(fmt.Sprintf("*%s*\nSkills: %s", m.Name, strings.Join(m.Skills, ", "))))
	}
	return blocks
}

func participantListBlocks(ps []model.Participant) []slack.Block {
	blocks := []slack.Block{
		section(fmt.Sprintf("*Registered Participants (%d):*", len(ps))),
	}
	for i := 0; i < len(ps); i += participantPageSize {
		end := i + participantPageSize
		if end > len(ps) {
			end = len(ps)
		}
		var lines []string
		for _, p := range ps[i:end] {
			line := fmt.Sprintf("• *%s*", p.Name)
			if p.HasSkills() {
				line += fmt.Sprintf(" - Skills: %s", strings.Join(p.Skills, ", "))
			}
			lines = append(lines, line)
		}
		blocks = append(blocks, section(strings.Join(lines, "\n")))
	}
	return blocks
}

func approvedProjectBlocks(projects []model.Project) []slack.Block {
	blocks := []slack.Block{
		section(fmt.Sprintf("*Approved Projects (%d):*", len(projects))),
	}
	for _, p := range projects {
		blocks = append(blocks,
			section(fmt.Sprintf("*%s*\nLed by: <@%s>\nTeam size: %d members\n\n%s\n\n*Skills needed:* %s\n\nUse `/join-project %s` to join this team!",
				p.Title, p.Proposer.ID, len(p.TeamMembers), p.Description, p.SkillsNeeded, p.ID)),
			slack.NewDividerBlock(),
		)
	}
	return blocks
}

// teamMember is a roster entry with its resolved display name.
type teamMember struct {
	ID   string
	Name string
}

func myProjectBlocks(p model.Project, team []teamMember, viewerID string) []slack.Block {
	var lines []string
	for _, m := range team {
		suffix := ""
		switch m.ID {
		case viewerID:
			suffix = " (you)"
		case p.Proposer.ID:
			suffix = " (leader)"
		}
		lines = append(lines, fmt.Sprintf("• %s%s", m.Name, suffix))
	}
	return []slack.Block{
		section(fmt.Sprintf("*Your Project: %s*", p.Title)),
		section(fmt.Sprintf("*Description:*\n%s\n\n*Goals:*\n%s", p.Description, p.Goals)),
		section(fmt.Sprintf("*Team Members (%d):*\n%s", len(team), strings.Join(lines, "\n"))),
		slack.NewDividerBlock(),
	}
}
