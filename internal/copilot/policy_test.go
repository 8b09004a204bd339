package copilot_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-site-backend/internal/copilot"

	"github.com/stretchr/testify/require"
)

type exchangeBody struct {
	Messages []copilot.ChatTurn `json:"messages"`
}

func TestRemotePolicySuccess(t *testing.T) {
	var got exchangeBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"reply": "hello there"})
	}))
	defer srv.Close()

	p := copilot.NewRemotePolicy(srv.URL)
	reply := p.Reply(context.Background(), []copilot.ChatTurn{
		{Role: copilot.RoleAssistant, Text: copilot.GreetingText},
		{Role: copilot.RoleUser, Text: "hi"},
	})

	require.Equal(t, "hello there", reply)
	require.Len(t, got.Messages, 2)
	require.Equal(t, copilot.RoleUser, got.Messages[1].Role)
}

func TestRemotePolicyEmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"reply": "   "})
	}))
	defer srv.Close()

	p := copilot.NewRemotePolicy(srv.URL)
	require.Equal(t, copilot.FallbackNoAnswer, p.Reply(context.Background(), userTurn("hi")))
}

func TestRemotePolicyServerErrorUsesCarriedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "provider unavailable",
			"reply": "carried fallback",
		})
	}))
	defer srv.Close()

	p := copilot.NewRemotePolicy(srv.URL)
	require.Equal(t, "carried fallback", p.Reply(context.Background(), userTurn("hi")))
}

func TestRemotePolicyServerErrorWithoutReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))
	defer srv.Close()

	p := copilot.NewRemotePolicy(srv.URL)
	require.Equal(t, copilot.FallbackApology, p.Reply(context.Background(), userTurn("hi")))
}

func TestRemotePolicyMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()

	p := copilot.NewRemotePolicy(srv.URL)
	require.Equal(t, copilot.FallbackApology, p.Reply(context.Background(), userTurn("hi")))
}

func TestRemotePolicyUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := copilot.NewRemotePolicy(srv.URL)
	require.Equal(t, copilot.FallbackApology, p.Reply(context.Background(), userTurn("hi")))
}

func TestRemotePolicyCapsHistory(t *testing.T) {
	var got exchangeBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"reply": "ok"})
	}))
	defer srv.Close()

	turns := make([]copilot.ChatTurn, 0, 30)
	for i := 0; i < 30; i++ {
		turns = append(turns, copilot.ChatTurn{
			Role: copilot.RoleUser,
			Text: fmt.Sprintf("turn %d", i),
		})
	}

	p := copilot.NewRemotePolicy(srv.URL)
	require.Equal(t, "ok", p.Reply(context.Background(), turns))

	require.Len(t, got.Messages, copilot.DefaultMaxHistory)
	// The most recent turns survive, oldest are dropped.
	require.Equal(t, "turn 29", got.Messages[len(got.Messages)-1].Text)
	require.Equal(t, "turn 10", got.Messages[0].Text)
}

func TestRemotePolicyTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]string{"reply": "too late"})
	}))
	defer srv.Close()

	p := copilot.NewRemotePolicy(srv.URL)
	p.Timeout = 20 * time.Millisecond
	require.Equal(t, copilot.FallbackApology, p.Reply(context.Background(), userTurn("hi")))
}

func TestCapHistoryShortInputUnchanged(t *testing.T) {
	turns := userTurn("hi")
	require.Equal(t, turns, copilot.CapHistory(turns, copilot.DefaultMaxHistory))
}
