package copilot_test

import (
	"context"
	"testing"

	"studio-site-backend/internal/copilot"

	"github.com/stretchr/testify/require"
)

func userTurn(text string) []copilot.ChatTurn {
	return []copilot.ChatTurn{{Role: copilot.RoleUser, Text: text}}
}

func TestLocalPolicyKeywordMatch(t *testing.T) {
	p := copilot.NewLocalPolicy()
	ctx := context.Background()

	reply := p.Reply(ctx, userTurn("Tell me about your projects"))
	require.NotEqual(t, copilot.LocalDefaultReply, reply)
	require.Contains(t, reply, "Featured Projects")
}

func TestLocalPolicyDefaultReply(t *testing.T) {
	p := copilot.NewLocalPolicy()
	ctx := context.Background()

	require.Equal(t, copilot.LocalDefaultReply, p.Reply(ctx, userTurn("What time is it")))
}

func TestLocalPolicyDeterministic(t *testing.T) {
	p := copilot.NewLocalPolicy()
	ctx := context.Background()

	first := p.Reply(ctx, userTurn("are you AVAILABLE for new work?"))
	for i := 0; i < 3; i++ {
		require.Equal(t, first, p.Reply(ctx, userTurn("are you AVAILABLE for new work?")))
	}
	require.Contains(t, first, "new engagements")
}

func TestLocalPolicyFirstMatchWins(t *testing.T) {
	p := copilot.NewLocalPolicy()
	ctx := context.Background()

	// Mentions both "project" and "stack"; the project rule is first.
	reply := p.Reply(ctx, userTurn("what stack did that project use?"))
	require.Contains(t, reply, "Featured Projects")
}

func TestLocalPolicyUsesLatestUserTurn(t *testing.T) {
	p := copilot.NewLocalPolicy()
	ctx := context.Background()

	turns := []copilot.ChatTurn{
		{Role: copilot.RoleAssistant, Text: copilot.GreetingText},
		{Role: copilot.RoleUser, Text: "tell me about a project"},
		{Role: copilot.RoleAssistant, Text: "..."},
		{Role: copilot.RoleUser, Text: "and what stack do you use?"},
	}
	require.Contains(t, p.Reply(ctx, turns), "AI stack")
}

func TestLocalPolicyNoUserTurn(t *testing.T) {
	p := copilot.NewLocalPolicy()
	ctx := context.Background()

	turns := []copilot.ChatTurn{{Role: copilot.RoleAssistant, Text: copilot.GreetingText}}
	require.Equal(t, copilot.LocalDefaultReply, p.Reply(ctx, turns))
}
