package copilot

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatTurn is one message in a conversation. Immutable once appended.
type ChatTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// GreetingText seeds every new conversation.
const GreetingText = "Hi, I'm the studio copilot. Ask me about our work, our stack, or how to start a project."

// MessageStore is the ordered, append-only log of turns for one session.
// It always holds at least the seeded greeting turn. Mutation goes through
// the owning ChatSession, which serializes access.
type MessageStore struct {
	turns []ChatTurn
}

func NewMessageStore() *MessageStore {
	s := &MessageStore{}
	s.reset()
	return s
}

func (s *MessageStore) reset() {
	s.turns = []ChatTurn{{Role: RoleAssistant, Text: GreetingText}}
}

func (s *MessageStore) append(t ChatTurn) {
	s.turns = append(s.turns, t)
}

// Turns returns a copy of the log for display.
func (s *MessageStore) Turns() []ChatTurn {
	out := make([]ChatTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *MessageStore) Len() int {
	return len(s.turns)
}
