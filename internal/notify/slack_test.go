package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Scriptome-AI/hackathon-hackagent/internal/model"
	"github.com/Scriptome-AI/hackathon-hackagent/internal/notify"
)

type sentMessage struct {
	destination string
	text        string
	blocks      []slack.Block
}

type updatedMessage struct {
	channel string
	ts      string
	text    string
}

type fakeSender struct {
	posts   []sentMessage
	updates []updatedMessage
	postErr error
}

func (f *fakeSender) PostMessage(_ context.Context, channelID, text string, blocks ...slack.Block) (string, error) {
	if f.postErr != nil {
		return "", f.postErr
	}
	f.posts = append(f.posts, sentMessage{destination: channelID, text: text, blocks: blocks})
	return "1234.5678", nil
}

func (f *fakeSender) UpdateMessage(_ context.Context, channelID, ts, text string, _ ...slack.Block) error {
	f.updates = append(f.updates, updatedMessage{channel: channelID, ts: ts, text: text})
	return nil
}

var testChannels = notify.Channels{
	Approvals:     "C-approvals",
	Announcements: "C-announce",
	Submissions:   "C-submissions",
}

func testProject() model.Project {
	return model.Project{
		ID:          "P1700000000000",
		Title:       "BioAgent",
		Description: "An agent that drafts lab protocols",
		Proposer:    model.Proposer{ID: "U1", Name: "Ada"},
		Status:      model.StatusPending,
		TeamMembers: []string{"U1"},
	}
}

func TestProposalSubmittedRouting(t *testing.T) {
	sender := &fakeSender{}
	n := notify.NewSlackNotifier(sender, testChannels, zap.NewNop())

	err := n.ProposalSubmitted(context.Background(), notify.ProposalSubmittedEvent{Project: testProject()})
	require.NoError(t, err)

	require.Len(t, sender.posts, 2)
	review := sender.posts[0]
	require.Equal(t, "C-approvals", review.destination)
	require.Contains(t, review.text, "BioAgent")

	var actions *slack.ActionBlock
	for _, b := range review.blocks {
		if ab, ok := b.(*slack.ActionBlock); ok {
			actions = ab
		}
	}
	require.NotNil(t, actions, "review message carries approve/reject buttons")

	// Proposer gets a DM confirmation.
	require.Equal(t, "U1", sender.posts[1].destination)
	require.Contains(t, sender.posts[1].text, "submitted for review")
}

func TestProposalApprovedRouting(t *testing.T) {
	sender := &fakeSender{}
	n := notify.NewSlackNotifier(sender, testChannels, zap.NewNop())

	p := testProject()
	p.Status = model.StatusApproved
	err := n.ProposalApproved(context.Background(), notify.ProposalDecidedEvent{
		Project:   p,
		DeciderID: "U2",
		Channel:   "C-approvals",
		MessageTS: "1700000000.000100",
	})
	require.NoError(t, err)

	require.Len(t, sender.updates, 1)
	require.Equal(t, "C-approvals", sender.updates[0].channel)
	require.Equal(t, "1700000000.000100", sender.updates[0].ts)

	require.Len(t, sender.posts, 2)
	require.Equal(t, "C-announce", sender.posts[0].destination)
	require.Contains(t, sender.posts[0].text, "New Project Approved")
	require.Equal(t, "U1", sender.posts[1].destination)
}

func TestProposalRejectedDMsProposerOnly(t *testing.T) {
	sender := &fakeSender{}
	n := notify.NewSlackNotifier(sender, testChannels, zap.NewNop())

	p := testProject()
	p.Status = model.StatusRejected
	err := n.ProposalRejected(context.Background(), notify.ProposalDecidedEvent{Project: p, DeciderID: "U2"})
	require.NoError(t, err)

	// No review message to rewrite without the original channel and ts.
	require.Empty(t, sender.updates)
	require.Len(t, sender.posts, 1)
	require.Equal(t, "U1", sender.posts[0].destination)
	require.Contains(t, sender.posts[0].text, "not approved")
}

func TestMemberJoinedDMsProposer(t *testing.T) {
	sender := &fakeSender{}
	n := notify.NewSlackNotifier(sender, testChannels, zap.NewNop())

	err := n.MemberJoined(context.Background(), notify.MemberJoinedEvent{
		Project:  testProject(),
		UserID:   "U3",
		UserName: "Cleo",
	})
	require.NoError(t, err)
	require.Len(t, sender.posts, 1)
	require.Equal(t, "U1", sender.posts[0].destination)
	require.Contains(t, sender.posts[0].text, "Cleo has joined")
}

func TestSubmissionReceivedRouting(t *testing.T) {
	sender := &fakeSender{}
	n := notify.NewSlackNotifier(sender, testChannels, zap.NewNop())

	err := n.SubmissionReceived(context.Background(), notify.SubmissionReceivedEvent{
		Submission: model.Submission{ID: "s1", ProjectName: "BioAgent", Link: "https://x", SubmittedBy: "U3"},
	})
	require.NoError(t, err)
	require.Len(t, sender.posts, 2)
	require.Equal(t, "C-submissions", sender.posts[0].destination)
	require.Equal(t, "U3", sender.posts[1].destination)
}

func TestEmptyDestinationSkipsDelivery(t *testing.T) {
	sender := &fakeSender{}
	n := notify.NewSlackNotifier(sender, notify.Channels{}, zap.NewNop())

	p := testProject()
	err := n.SubmissionReceived(context.Background(), notify.SubmissionReceivedEvent{
		Submission: model.Submission{ProjectName: p.Title},
	})
	require.NoError(t, err)
	require.Empty(t, sender.posts)
}

func TestDeliveryErrorSurfaces(t *testing.T) {
	sender := &fakeSender{postErr: errors.New("channel_not_found")}
	n := notify.NewSlackNotifier(sender, testChannels, zap.NewNop())

	err := n.ProposalSubmitted(context.Background(), notify.ProposalSubmittedEvent{Project: testProject()})
	require.Error(t, err)
}
