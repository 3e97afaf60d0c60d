// Package slackbot wraps the Slack Web API calls the bot needs: posting and
// updating messages, opening modals, and resolving user identities.
package slackbot

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// UserIdentity is the slice of a Slack user profile the bot cares about.
type UserIdentity struct {
	ID    string
	Name  string
	Email string
}

type Client struct {
	api *slack.Client
}

func New(token string) *Client {
	return &Client{api: slack.New(token)}
}

// PostMessage sends a message to a channel or, when given a user id, a DM.
// Returns the message timestamp for later updates.
func (c *Client) PostMessage(ctx context.Context, channelID, text string, blocks ...slack.Block) (string, error) {
	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if len(blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(blocks...))
	}
	_, ts, err := c.api.PostMessageContext(ctx, channelID, opts...)
	if err != nil {
		return "", fmt.Errorf("chat.postMessage to %s: %w", channelID, err)
	}
	return ts, nil
}

// UpdateMessage rewrites a previously posted message in place.
func (c *Client) UpdateMessage(ctx context.Context, channelID, ts, text string, blocks ...slack.Block) error {
	opts := []slack.MsgOption{slack.MsgOptionText(text, false)}
	if len(blocks) > 0 {
		opts = append(opts, slack.MsgOptionBlocks(blocks...))
	}
	if _, _, _, err := c.api.UpdateMessageContext(ctx, channelID, ts, opts...); err != nil {
		return fmt.Errorf("chat.update %s@%s: %w", channelID, ts, err)
	}
	return nil
}

// OpenView opens a modal dialog for the interaction identified by triggerID.
func (c *Client) OpenView(ctx context.Context, triggerID string, view slack.ModalViewRequest) error {
	if _, err := c.api.OpenViewContext(ctx, triggerID, view); err != nil {
		return fmt.Errorf("views.open: %w", err)
	}
	return nil
}

// UserInfo resolves a Slack user id to a display name and email. The real
// name is preferred, falling back to the account name.
func (c *Client) UserInfo(ctx context.Context, userID string) (UserIdentity, error) {
	u, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return UserIdentity{}, fmt.Errorf("users.info %s: %w", userID, err)
	}
	name := u.RealName
	if name == "" {
		name = u.Name
	}
	return UserIdentity{ID: u.ID, Name: name, Email: u.Profile.Email}, nil
}
