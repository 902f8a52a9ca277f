// Package run sequences the hook pipeline: context extraction, two provider
// attempts with degraded context, validation, fallback, scrub, emit.
package run

import (
	"context"
	"fmt"
	"io"

	"github.com/richardhedges/GitAiMsg/internal/ai"
	"github.com/richardhedges/GitAiMsg/internal/config"
	"github.com/richardhedges/GitAiMsg/internal/git"
	"github.com/richardhedges/GitAiMsg/internal/hooklog"
	"github.com/richardhedges/GitAiMsg/internal/msg"
	"github.com/richardhedges/GitAiMsg/internal/sanitize"
)

// state names the steps of the retry protocol. Keeping the machine explicit
// keeps the attempt/fallback boundaries testable in isolation.
type state int

const (
	stateStart state = iota
	stateAttemptFull
	stateAttemptMinimal
	stateScrub
	stateEmit
	stateDone
)

// Pipeline holds the collaborators for one hook invocation.
type Pipeline struct {
	Config   config.Config
	Git      git.Git
	Provider ai.Provider
	Out      io.Writer
	Log      *hooklog.Logger
}

// Run drives the state machine to completion. It writes either the final
// commit message to Out or nothing at all; diagnostics go to the log only.
func (p *Pipeline) Run(ctx context.Context) {
	var (
		gc      git.Context
		system  string
		message string
	)

	for st := stateStart; st != stateDone; {
		switch st {
		case stateStart:
			if p.Git.StagedFiles() == "" {
				p.Log.Logf("no staged files")
				return
			}
			gc = git.Collect(p.Git)
			system = p.systemPrompt()
			st = stateAttemptFull

		case stateAttemptFull:
			prompt := ai.BuildPrompt(ai.CommitContext{
				Branch:    gc.Branch,
				Files:     gc.Files,
				Numstat:   gc.Numstat,
				DiffBlock: sanitize.Blob(gc.RawDiff, p.Config.MaxDiffBytes),
			}, system)
			// An empty result here is a retry signal, not a terminal
			// fallback, so the first attempt validates against "".
			message = msg.ValidateOrFallback(p.genOnce(ctx, prompt), "")
			if message != "" {
				st = stateScrub
			} else {
				st = stateAttemptMinimal
			}

		case stateAttemptMinimal:
			p.Log.Logf("retry without diff (digest=%s)", gc.Digest)
			prompt := ai.BuildPrompt(ai.CommitContext{
				Branch:    gc.Branch,
				Files:     gc.Files,
				Numstat:   gc.Numstat,
				DiffBlock: ai.DiffOmitted,
			}, system)
			// With the deterministic fallback in place this can never
			// come back empty.
			message = msg.ValidateOrFallback(p.genOnce(ctx, prompt), msg.Fallback(gc.Numstat))
			st = stateScrub

		case stateScrub:
			message = msg.Scrub(message)
			st = stateEmit

		case stateEmit:
			fmt.Fprintln(p.Out, message)
			st = stateDone
		}
	}
}

// genOnce performs a single provider call, degrading every failure to an
// empty candidate after logging it.
func (p *Pipeline) genOnce(ctx context.Context, prompt ai.Prompt) string {
	out, err := p.Provider.Generate(ctx, prompt)
	if err != nil {
		p.Log.Logf("provider error: %v", err)
		return ""
	}
	return out
}

// systemPrompt resolves the persona: explicit config/env override first,
// then the user's prompt file, then the built-in default.
func (p *Pipeline) systemPrompt() string {
	if p.Config.SystemPrompt != "" {
		return p.Config.SystemPrompt
	}
	return ai.LoadPrompt()
}
