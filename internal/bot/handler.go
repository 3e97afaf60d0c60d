package bot

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"go.uber.org/zap"
)

// HTTPHandler exposes the Slack callback endpoints: slash commands,
// interactivity (buttons and modals), and the Events API. Every request is
// authenticated with Slack's request signature before parsing.
type HTTPHandler struct {
	handler       *Handler
	signingSecret string
	log           *zap.Logger
}

func NewHTTPHandler(handler *Handler, signingSecret string, log *zap.Logger) *HTTPHandler {
	return &HTTPHandler{handler: handler, signingSecret: signingSecret, log: log}
}

// verify checks the request signature and restores the body for form
// parsing. Writes the error response itself when verification fails.
func (h *HTTPHandler) verify(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return nil, false
	}

	sv, err := slack.NewSecretsVerifier(c.Request.Header, h.signingSecret)
	if err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return nil, false
	}
	if _, err := sv.Write(body); err != nil {
		c.String(http.StatusInternalServerError, "verification error")
		return nil, false
	}
	if err := sv.Ensure(); err != nil {
		h.log.Warn("request signature rejected", zap.Error(err))
		c.String(http.StatusUnauthorized, "invalid signature")
		return nil, false
	}

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return body, true
}

// Commands handles slash command posts. Slack expects the acknowledgement
// within 3 seconds, so the reply is written directly as the response body.
func (h *HTTPHandler) Commands(c *gin.Context) {
	if _, ok := h.verify(c); !ok {
		return
	}

	cmd, err := slack.SlashCommandParse(c.Request)
	if err != nil {
		h.log.Warn("slash command parse failed", zap.Error(err))
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	msg := h.handler.HandleCommand(c.Request.Context(), cmd)
	if msg == nil {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Interactions handles block actions and modal view submissions.
func (h *HTTPHandler) Interactions(c *gin.Context) {
	if _, ok := h.verify(c); !ok {
		return
	}

	payload := c.Request.FormValue("payload")
	var cb slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &cb); err != nil {
		h.log.Warn("interaction payload parse failed", zap.Error(err))
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	switch cb.Type {
	case slack.InteractionTypeBlockActions:
		h.handler.HandleBlockAction(c.Request.Context(), cb)
	case slack.InteractionTypeViewSubmission:
		h.handler.HandleViewSubmission(c.Request.Context(), cb)
	}
	c.Status(http.StatusOK)
}

// Events handles the Events API: URL verification handshake and app
// mentions.
func (h *HTTPHandler) Events(c *gin.Context) {
	body, ok := h.verify(c)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.log.Warn("event parse failed", zap.Error(err))
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			c.String(http.StatusBadRequest, "bad request")
			return
		}
		c.String(http.StatusOK, challenge.Challenge)
	case slackevents.CallbackEvent:
		if mention, ok := event.InnerEvent.Data.(*slackevents.AppMentionEvent); ok {
			h.handler.HandleMention(c.Request.Context(), mention.Channel)
		}
		c.Status(http.StatusOK)
	default:
		c.Status(http.StatusOK)
	}
}
