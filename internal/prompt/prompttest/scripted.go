// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"context"
	"fmt"

	"github.com/rapo/cli/internal/prompt"
)

type kind string

const (
	kindInput   kind = "input"
	kindSelect  kind = "select"
	kindConfirm kind = "confirm"
)

// Reply is one scripted answer.
type Reply struct {
	kind      kind
	text      string
	yes       bool
	cancelled bool
	err       error
}

// Text answers an input question.
func Text(s string) Reply { return Reply{kind: kindInput, text: s} }

// Choose answers a select question with the given option value.
func Choose(value string) Reply { return Reply{kind: kindSelect, text: value} }

// Yes answers a confirm question affirmatively.
func Yes() Reply { return Reply{kind: kindConfirm, yes: true} }

// No answers a confirm question negatively.
func No() Reply { return Reply{kind: kindConfirm} }

// Cancel aborts whatever question is asked.
func Cancel() Reply { return Reply{cancelled: true} }

// Fail makes the next question return err.
func Fail(err error) Reply { return Reply{err: err} }

// Asked records a question the prompter received.
type Asked struct {
	Kind    string
	Title   string
	Options []string
}

// Scripted answers questions from a fixed script, in order.
type Scripted struct {
	replies []Reply
	asked   []Asked
}

var _ prompt.Prompter = (*Scripted)(nil)

// New creates a scripted prompter.
func New(replies ...Reply) *Scripted {
	return &Scripted{replies: replies}
}

// Asked returns every question received so far.
func (s *Scripted) Asked() []Asked {
	return append([]Asked(nil), s.asked...)
}

// Remaining returns the number of unused replies.
func (s *Scripted) Remaining() int {
	return len(s.replies)
}

func (s *Scripted) next(k kind, title string, options []string) (Reply, error) {
	s.asked = append(s.asked, Asked{Kind: string(k), Title: title, Options: options})
	if len(s.replies) == 0 {
		return Reply{}, fmt.Errorf("prompttest: unexpected %s question %q", k, title)
	}
	r := s.replies[0]
	s.replies = s.replies[1:]

	if r.err != nil || r.cancelled {
		return r, r.err
	}
	if r.kind != k {
		return Reply{}, fmt.Errorf("prompttest: %s question %q answered with a %s reply", k, title, r.kind)
	}
	return r, nil
}

// Input implements prompt.Prompter. An empty scripted text yields spec.Default.
func (s *Scripted) Input(_ context.Context, spec prompt.InputSpec) (prompt.Answer[string], error) {
	r, err := s.next(kindInput, spec.Title, nil)
	if err != nil {
		return prompt.Cancelled[string](), err
	}
	if r.cancelled {
		return prompt.Cancelled[string](), nil
	}
	if r.text == "" {
		return prompt.Answered(spec.Default), nil
	}
	return prompt.Answered(r.text), nil
}

// Select implements prompt.Prompter. The scripted value is returned as is,
// even when it is not one of the options.
func (s *Scripted) Select(_ context.Context, spec prompt.SelectSpec) (prompt.Answer[string], error) {
	options := make([]string, 0, len(spec.Options))
	for _, o := range spec.Options {
		options = append(options, o.Value)
	}

	r, err := s.next(kindSelect, spec.Title, options)
	if err != nil {
		return prompt.Cancelled[string](), err
	}
	if r.cancelled {
		return prompt.Cancelled[string](), nil
	}
	return prompt.Answered(r.text), nil
}

// Confirm implements prompt.Prompter.
func (s *Scripted) Confirm(_ context.Context, spec prompt.ConfirmSpec) (prompt.Answer[bool], error) {
	r, err := s.next(kindConfirm, spec.Title, nil)
	if err != nil {
		return prompt.Cancelled[bool](), err
	}
	if r.cancelled {
		return prompt.Cancelled[bool](), nil
	}
	return prompt.Answered(r.yes), nil
}
