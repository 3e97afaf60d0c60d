package bot_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/bot"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/model"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/notify"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/service"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/store"
	"github.com/Scriptome-AI/hackathon-hackagent/pkg/slackbot"
)

type fakePost struct {
	channel string
	text    string
}

// fakeSlack satisfies the bot.Slack interface for handler tests.
type fakeSlack struct {
	users   map[string]slackbot.UserIdentity
	userErr error
	views   []slack.ModalViewRequest
	viewErr error
	posts   []fakePost
}

func (f *fakeSlack) UserInfo(_ context.Context, userID string) (slackbot.UserIdentity, error) {
	if f.userErr != nil {
		return slackbot.UserIdentity{}, f.userErr
	}
	u, ok := f.users[userID]
	if !ok {
		return slackbot.UserIdentity{}, errors.New("users_not_found")
	}
	return u, nil
}

func (f *fakeSlack) OpenView(_ context.Context, _ string, view slack.ModalViewRequest) error {
	if f.viewErr != nil {
		return f.viewErr
	}
	f.views = append(f.views, view)
	return nil
}

func (f *fakeSlack) PostMessage(_ context.Context, channelID, text string, _ ...slack.Block) (string, error) {
	f.posts = append(f.posts, fakePost{channel: channelID, text: text})
	return "1234.5678", nil
}

type fixture struct {
	handler *bot.Handler
	slack   *fakeSlack
	store   *store.Store
	parts   *service.ParticipantService
	proj    *service.ProjectService
}

func newFixture(t *testing.T, participants []model.Participant) *fixture {
	t.Helper()
	st := store.Open(t.TempDir(), zap.NewNop())
	st.ReplaceParticipants(participants)
	fs := &fakeSlack{users: map[string]slackbot.UserIdentity{
		"U1": {ID: "U1", Name: "Ada", Email: "ada@x.io"},
		"U3": {ID: "U3", Name: "Cleo", Email: "cleo@x.io"},
	}}
	parts := service.NewParticipantService(st, zap.NewNop())
	proj := service.NewProjectService(st, zap.NewNop())
	h := bot.NewHandler(fs, notify.NoopNotifier{}, parts, proj, zap.NewNop())
	return &fixture{handler: h, slack: fs, store: st, parts: parts, proj: proj}
}

func TestScheduleAndFAQ(t *testing.T) {
	f := newFixture(t, nil)

	for _, command := range []string{"/schedule", "/faq"} {
		msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: command, UserID: "U1"})
		require.NotNil(t, msg)
		require.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
		require.NotEmpty(t, msg.Blocks.BlockSet)
	}
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t, nil)
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/bogus", UserID: "U1"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "/bogus")
}

func TestTeamFindRequiresSkills(t *testing.T) {
	f := newFixture(t, nil)
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/team-find", UserID: "U1", Text: "  "})
	require.NotNil(t, msg)
	require.Equal(t, slack.ResponseTypeEphemeral, msg.ResponseType)
	require.Contains(t, msg.Text, "/team-find AI, Python, Biology")
}

func TestTeamFindBroadcastsAndFlipsFlag(t *testing.T) {
	f := newFixture(t, []model.Participant{
		{Email: "ada@x.io", Name: "Ada", Skills: []string{"Go"}, LookingForTeam: true},
		{Email: "bob@x.io", Name: "Bob", Skills: []string{"Python"}, LookingForTeam: true},
	})

	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/team-find", UserID: "U1", Text: "Python"})
	require.NotNil(t, msg)
	require.Equal(t, slack.ResponseTypeInChannel, msg.ResponseType)
	require.NotEmpty(t, msg.Blocks.BlockSet)

	p, ok := f.store.ParticipantByEmail("ada@x.io")
	require.True(t, ok)
	require.False(t, p.LookingForTeam)
}

func TestTeamFindLookupFailureAborts(t *testing.T) {
	f := newFixture(t, []model.Participant{
		{Email: "ada@x.io", Name: "Ada", LookingForTeam: true},
	})
	f.slack.userErr = errors.New("users_not_found")

	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/team-find", UserID: "U1", Text: "Python"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "Sorry")

	p, _ := f.store.ParticipantByEmail("ada@x.io")
	require.True(t, p.LookingForTeam)
}

func TestUpdateSkillsUnregisteredEmail(t *testing.T) {
	f := newFixture(t, nil)
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/update-skills", UserID: "U1", Text: "Go"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "ada@x.io")
	require.Contains(t, msg.Text, "pre-registered")
}

func TestUpdateSkillsSuccess(t *testing.T) {
	f := newFixture(t, []model.Participant{{Email: "ada@x.io", Name: "Ada"}})

	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/update-skills", UserID: "U1", Text: "Go, Biology"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "Skills updated")

	p, _ := f.store.ParticipantByEmail("ada@x.io")
	require.Equal(t, []string{"Go", "Biology"}, p.Skills)
}

func TestFindSkillsEmptyQuery(t *testing.T) {
	f := newFixture(t, nil)
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/find-skills", UserID: "U1"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "/find-skills Python, Biology")
}

func TestFindSkillsNoMatches(t *testing.T) {
	f := newFixture(t, []model.Participant{{Email: "a@x.io", Name: "A", Skills: []string{"Rust"}}})
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/find-skills", UserID: "U1", Text: "Python"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "No participants found")
}

func TestParticipantsSmallListInline(t *testing.T) {
	f := newFixture(t, []model.Participant{
		{Email: "a@x.io", Name: "A", Skills: []string{"Go"}},
		{Email: "b@x.io", Name: "B"},
	})
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/participants", UserID: "U1"})
	require.NotNil(t, msg)
	require.NotEmpty(t, msg.Blocks.BlockSet)
	require.Empty(t, f.slack.views)
}

func TestParticipantsLargeListOpensModal(t *testing.T) {
	var ps []model.Participant
	for i := 0; i < 21; i++ {
		ps = append(ps, model.Participant{Email: fmt.Sprintf("p%d@x.io", i), Name: fmt.Sprintf("P%d", i)})
	}
	f := newFixture(t, ps)

	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/participants", UserID: "U1", TriggerID: "trig"})
	require.Nil(t, msg)
	require.Len(t, f.slack.views, 1)
	require.Equal(t, bot.CallbackParticipantsSearch, f.slack.views[0].CallbackID)
}

func TestParticipantsModalFailureFallsBack(t *testing.T) {
	var ps []model.Participant
	for i := 0; i < 21; i++ {
		ps = append(ps, model.Participant{Email: fmt.Sprintf("p%d@x.io", i), Name: fmt.Sprintf("P%d", i)})
	}
	f := newFixture(t, ps)
	f.slack.viewErr = errors.New("invalid_trigger")

	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/participants", UserID: "U1", TriggerID: "trig"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "21 registered participants")
}

func TestStatsCommand(t *testing.T) {
	f := newFixture(t, []model.Participant{
		{Email: "a@x.io", Skills: []string{"Go"}, LookingForTeam: true},
		{Email: "b@x.io"},
	})
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/hackathon-stats", UserID: "U1"})
	require.NotNil(t, msg)
	require.NotEmpty(t, msg.Blocks.BlockSet)
}

func TestProposeProjectOpensModal(t *testing.T) {
	f := newFixture(t, nil)
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/propose-project", UserID: "U1", TriggerID: "trig"})
	require.Nil(t, msg)
	require.Len(t, f.slack.views, 1)
	require.Equal(t, bot.CallbackProposal, f.slack.views[0].CallbackID)
}

func TestSubmitOpensModal(t *testing.T) {
	f := newFixture(t, nil)
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/submit", UserID: "U1", TriggerID: "trig"})
	require.Nil(t, msg)
	require.Len(t, f.slack.views, 1)
	require.Equal(t, bot.CallbackSubmission, f.slack.views[0].CallbackID)
}

func TestProjectsEmpty(t *testing.T) {
	f := newFixture(t, nil)
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/projects", UserID: "U1"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "No approved projects yet")
}

func TestJoinProjectFlow(t *testing.T) {
	f := newFixture(t, nil)
	p := f.proj.Propose("BioAgent", "", "", "", "U1", "Ada")
	_, err := f.proj.Decide(p.ID, true, "U2")
	require.NoError(t, err)

	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/join-project", UserID: "U3", Text: p.ID})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, `successfully joined the project "BioAgent"`)

	again := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/join-project", UserID: "U3", Text: p.ID})
	require.Contains(t, again.Text, `already on the team for "BioAgent"`)

	missing := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/join-project", UserID: "U3", Text: "P404"})
	require.Contains(t, missing.Text, "not found or not approved")
}

func TestMyProjectNoTeams(t *testing.T) {
	f := newFixture(t, nil)
	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/my-project", UserID: "U9"})
	require.NotNil(t, msg)
	require.Contains(t, msg.Text, "not currently on any project teams")
}

func TestMyProjectUnknownMemberStillRenders(t *testing.T) {
	f := newFixture(t, nil)
	p := f.proj.Propose("BioAgent", "", "", "", "U1", "Ada")
	_, err := f.proj.Decide(p.ID, true, "U2")
	require.NoError(t, err)
	// U404 has no Slack profile; listing must render anyway.
	_, err = f.proj.Join(p.ID, "U404")
	require.NoError(t, err)
	_, err = f.proj.Join(p.ID, "U3")
	require.NoError(t, err)

	msg := f.handler.HandleCommand(context.Background(), slack.SlashCommand{Command: "/my-project", UserID: "U3"})
	require.NotNil(t, msg)
	require.NotEmpty(t, msg.Blocks.BlockSet)
}

func TestHandleMention(t *testing.T) {
	f := newFixture(t, nil)
	f.handler.HandleMention(context.Background(), "C123")
	require.Len(t, f.slack.posts, 1)
	require.Equal(t, "C123", f.slack.posts[0].channel)
	require.Contains(t, f.slack.posts[0].text, "/schedule")
}
