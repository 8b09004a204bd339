package copilot

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrBusy = errors.New("a reply is already in flight")

// ChatSession owns one conversation: the message store, the active reply
// policy and the single-flight busy flag. Every path through Send ends with
// exactly one appended assistant turn or a no-op; no error from the policy
// ever reaches the caller.
type ChatSession struct {
	mu     sync.Mutex
	store  *MessageStore
	policy ReplyPolicy
	busy   bool
	epoch  uint64
}

func NewChatSession(policy ReplyPolicy) *ChatSession {
	return &ChatSession{
		store:  NewMessageStore(),
		policy: policy,
	}
}

// Send appends the user's text and exactly one assistant turn produced by
// the reply policy. Blank input is a no-op and never invokes the policy.
// A second Send while a reply is in flight is rejected with ErrBusy rather
// than queued.
func (s *ChatSession) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	epoch := s.epoch
	s.store.append(ChatTurn{Role: RoleUser, Text: text})
	history := s.store.Turns()
	s.mu.Unlock()

	reply := s.policy.Reply(ctx, history)

	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		// Reset happened while the reply was in flight; drop it.
		return nil
	}
	s.store.append(ChatTurn{Role: RoleAssistant, Text: reply})
	s.busy = false
	return nil
}

// QuickSend sends one of the suggested prompts. Same contract as Send.
func (s *ChatSession) QuickSend(ctx context.Context, preset string) error {
	return s.Send(ctx, preset)
}

// Reset truncates the conversation back to the greeting turn and
// invalidates any in-flight reply; a stale reply resolving afterwards is
// discarded, never appended.
func (s *ChatSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.busy = false
	s.store.reset()
}

func (s *ChatSession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Turns returns a snapshot of the conversation for rendering.
func (s *ChatSession) Turns() []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Turns()
}
