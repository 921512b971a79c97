// Package flow implements the dialogue engine: one finite state machine per
// conversational flow. A flow receives normalized events, mutates the
// session's flow state and scratch, and returns the prompt to render. It
// never talks to the transport directly.
package flow

import (
	"context"

	"github.com/reach-sg/reach-bot/internal/locale"
	"github.com/reach-sg/reach-bot/internal/session"
)

// Universal escape tag: valid in every non-terminal state, handled by the
// orchestrator before any flow sees the event.
const TagBackToMenu = "back_to_menu"

type EventKind int

const (
	EventCallback EventKind = iota
	EventText
)

// Event is an inbound user action already attributed to a user and chat.
type Event struct {
	Kind EventKind
	Tag  string // callback tag, for EventCallback
	Text string // message text, for EventText
}

// Button is one selectable option: a label shown to the user and the opaque
// tag sent back when pressed.
type Button struct {
	Label string
	Tag   string
}

// Response is the outbound prompt: text plus button rows. How it is
// delivered (new message vs edit) is the transport's concern. Notice, when
// set, is sent as a separate plain message before the prompt.
type Response struct {
	Notice  string
	Text    string
	Buttons [][]Button
}

// Handler is one flow's state machine.
type Handler interface {
	ID() session.FlowID
	// Start clears any stale scratch, enters the flow at its initial state
	// and returns the first prompt.
	Start(ctx context.Context, sess *session.Session) Response
	// Handle processes one event at the session's current state. A returned
	// error is a defect (missing scratch, impossible state), not a user
	// error; user errors re-prompt via the Response.
	Handle(ctx context.Context, sess *session.Session, ev Event) (Response, error)
}

func backRow(texts *locale.Bundle, lang string) []Button {
	return []Button{{Label: texts.T(lang, "back_to_menu"), Tag: TagBackToMenu}}
}

func yesNoRow(texts *locale.Bundle, lang, yesTag, noTag string) []Button {
	return []Button{
		{Label: texts.T(lang, "confirm_yes"), Tag: yesTag},
		{Label: texts.T(lang, "confirm_no"), Tag: noTag},
	}
}
