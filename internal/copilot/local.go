package copilot

import (
	"context"
	"strings"
)

// localRule maps a lower-case substring to a canned response. Rules are
// evaluated top to bottom; the first match wins, so ordering matters.
type localRule struct {
	keyword string
	reply   string
}

var defaultLocalRules = []localRule{
	{"project", "Check out the Featured Projects on our Work page — each case study covers the brief, the build and the results."},
	{"stack", "Our common AI stack pairs Go services with hosted language models, Postgres and whichever frontend fits the client."},
	{"available", "Yes — we're taking on new engagements. Drop us a line through the contact form and we'll get back within two business days."},
	{"price", "Pricing depends on scope; send a short brief through the contact form and we'll put a number on it."},
	{"contact", "The contact form at the bottom of the page comes straight to us — name, email and a few lines about your idea is plenty."},
	{"hello", "Hey! Ask me anything about the studio, our work, or how to kick off a project."},
}

// LocalDefaultReply is returned when no rule matches.
const LocalDefaultReply = "I can help with ideas, our past work, the stack we build on, or how to get a project started — what would you like to know?"

// LocalPolicy answers from an ordered keyword table over the latest user
// utterance. Deterministic, synchronous, never fails; used when no backend
// is configured and as a demo mode.
type LocalPolicy struct {
	rules        []localRule
	defaultReply string
}

func NewLocalPolicy() *LocalPolicy {
	return &LocalPolicy{
		rules:        defaultLocalRules,
		defaultReply: LocalDefaultReply,
	}
}

func (p *LocalPolicy) Reply(_ context.Context, turns []ChatTurn) string {
	var latest string
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Role == RoleUser {
			latest = turns[i].Text
			break
		}
	}

	lowered := strings.ToLower(latest)
	for _, r := range p.rules {
		if strings.Contains(lowered, r.keyword) {
			return r.reply
		}
	}
	return p.defaultReply
}
