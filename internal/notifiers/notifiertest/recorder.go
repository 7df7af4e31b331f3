// Package notifiertest provides an in-memory Notifier for tests.
package notifiertest

import (
	"context"
	"github.com/iotiq/account-deletion/internal/domain/model"
	"sync"
)

// Recorder records every message it is asked to send. Failures can be
// configured per message kind. Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	sent    []*model.Message
	failFor map[model.MessageKind]error

	// BeforeSend, when set, runs at the start of every Send.
	BeforeSend func(msg *model.Message) error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{failFor: make(map[model.MessageKind]error)}
}

// FailFor makes every send of the given kind return err after being recorded.
func (r *Recorder) FailFor(kind model.MessageKind, err error) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failFor[kind] = err
	return r
}

// Send implements notifiers.Notifier.
func (r *Recorder) Send(_ context.Context, msg *model.Message) error {
	if r.BeforeSend != nil {
		if err := r.BeforeSend(msg); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, msg)
	return r.failFor[msg.Kind]
}

// Sent returns a copy of the recorded messages.
func (r *Recorder) Sent() []*model.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.Message(nil), r.sent...)
}

// SentTo returns the recipients of the recorded messages in send order.
func (r *Recorder) SentTo() []string {
	var to []string
	for _, m := range r.Sent() {
		to = append(to, m.To)
	}
	return to
}
