package tui

import (
	"github.com/MKhiriev/go-agent-chat/internal/session"
	"github.com/MKhiriev/go-agent-chat/models"
)

// snapshotMsg carries a state published by the session store. ok is false
// once the subscription channel is closed.
type snapshotMsg struct {
	snap session.Snapshot
	ok   bool
}

// opDoneMsg reports the end of a service call started from the UI. Errors
// already land in the session error slot; err is kept for the status line.
type opDoneMsg struct {
	action string
	err    error
}

type statsLoadedMsg struct {
	stats models.ConversationStats
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
