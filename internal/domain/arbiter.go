package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// ArbiterMode selects how conflicting candidates are settled.
type ArbiterMode int

// Available ArbiterMode values.
const (
	// ArbiterPolicy keeps the first candidate of every same-problem run.
	ArbiterPolicy ArbiterMode = iota
	// ArbiterShowMultiple asks the operator only to pick among same-problem alternatives.
	ArbiterShowMultiple
	// ArbiterInteractive asks the operator about every candidate.
	ArbiterInteractive
)

// Prompter answers prompt requests. The terminal UI is one implementation;
// tests use scripted ones.
type Prompter interface {
	Prompt(ctx context.Context, request m.PromptRequest) (m.PromptResponse, error)
}

// TextSource gives read access to the current text of project files.
type TextSource interface {
	Text(path m.Path) (string, bool)
}

// Arbitration is the outcome of arbitrating one pass worth of candidates.
type Arbitration struct {
	Accepted []m.FixCandidate
	Skipped  int
}

// Arbiter settles conflicts among fix candidates.
type Arbiter interface {
	Arbitrate(ctx context.Context, texts TextSource, candidates []m.FixCandidate) (Arbitration, error)
}

type arbiter struct {
	mode     ArbiterMode
	prompter Prompter

	// code-wide decisions survive across passes of the same run
	acceptCodes map[int]struct{}
	skipCodes   map[int]struct{}
}

// NewArbiter creates an Arbiter. A nil prompter forces the policy mode.
func NewArbiter(mode ArbiterMode, prompter Prompter) Arbiter {
	if prompter == nil {
		mode = ArbiterPolicy
	}

	return &arbiter{
		mode:        mode,
		prompter:    prompter,
		acceptCodes: make(map[int]struct{}),
		skipCodes:   make(map[int]struct{}),
	}
}

func (a *arbiter) Arbitrate(ctx context.Context, texts TextSource, candidates []m.FixCandidate) (Arbitration, error) {
	if a.mode == ArbiterPolicy {
		accepted := RemoveDuplicatedFixes(RemoveMultipleFixesPerProblem(candidates))
		return Arbitration{Accepted: accepted, Skipped: len(candidates) - len(accepted)}, nil
	}

	queue := newWorkQueue(candidates)
	session := &arbitration{arbiter: a, queue: queue, texts: texts}

	for queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Arbitration{}, err
		}

		if err := session.decide(ctx, queue.Front()); err != nil {
			return Arbitration{}, err
		}
	}

	accepted := RemoveDuplicatedFixes(session.accepted)
	session.skipped += len(session.accepted) - len(accepted)

	return Arbitration{Accepted: accepted, Skipped: session.skipped}, nil
}

// arbitration is the state of one Arbitrate call.
type arbitration struct {
	*arbiter
	queue    *workQueue
	texts    TextSource
	accepted []m.FixCandidate
	skipped  int
}

func (s *arbitration) decide(ctx context.Context, run Run) error {
	front := run.Candidates[0]
	code := front.Problem.Code

	// remembered decisions settle one candidate at a time; the rest of the
	// run is classified again without it
	if _, ok := s.skipCodes[code]; ok {
		s.skip(1)
		return nil
	}

	if _, ok := s.acceptCodes[code]; ok {
		s.acceptFront(run)
		return nil
	}

	switch {
	case s.mode == ArbiterShowMultiple && run.Kind != RunSameProblem:
		s.accepted = append(s.accepted, front)
		s.queue.Drop(1)

		return nil
	case s.mode == ArbiterShowMultiple, run.Kind == RunSameSpan:
		return s.pick(ctx, run)
	default:
		return s.confirm(ctx, run)
	}
}

// confirm presents the front candidate on its own. Skipping the front of a
// same-line run leaves the next member to be confirmed on its own.
func (s *arbitration) confirm(ctx context.Context, run Run) error {
	kind := m.PromptSingle
	choices := []m.Choice{m.ChoiceAccept, m.ChoiceAcceptAll, m.ChoiceSkip, m.ChoiceSkipAll}

	switch run.Kind {
	case RunSameLine:
		kind = m.PromptSameLine
	case RunSameProblem:
		choices = append(choices, m.ChoiceShowMore)
	}

	request := m.PromptRequest{
		Kind:      kind,
		Options:   []m.PromptOption{s.option(run.Candidates[0])},
		Choices:   choices,
		Remaining: s.queue.Len(),
		RunSize:   len(run.Candidates),
	}

	response, err := s.ask(ctx, request)
	if err != nil {
		return err
	}

	switch response.Choice {
	case m.ChoiceAccept:
		s.acceptFront(run)
	case m.ChoiceShowMore:
		return s.pick(ctx, run)
	default:
		s.applyCodeDecision(run, response.Choice)
	}

	return nil
}

// pick presents every candidate of the run and accepts the one chosen.
func (s *arbitration) pick(ctx context.Context, run Run) error {
	kind := m.PromptSameSpan
	if run.Kind == RunSameProblem {
		kind = m.PromptSameProblem
	}

	options := make([]m.PromptOption, 0, len(run.Candidates))
	for _, candidate := range run.Candidates {
		options = append(options, s.option(candidate))
	}

	request := m.PromptRequest{
		Kind:      kind,
		Options:   options,
		Choices:   []m.Choice{m.ChoicePick, m.ChoiceAcceptAll, m.ChoiceSkip, m.ChoiceSkipAll},
		Remaining: s.queue.Len(),
		RunSize:   len(run.Candidates),
	}

	response, err := s.ask(ctx, request)
	if err != nil {
		return err
	}

	if response.Choice != m.ChoicePick {
		s.applyCodeDecision(run, response.Choice)
		return nil
	}

	s.accepted = append(s.accepted, run.Candidates[response.Index])
	s.skip(len(run.Candidates))
	s.skipped--

	return nil
}

func (s *arbitration) applyCodeDecision(run Run, choice m.Choice) {
	code := run.Candidates[0].Problem.Code

	switch choice {
	case m.ChoiceAcceptAll:
		s.acceptCodes[code] = struct{}{}
		taken := s.queue.Take(func(c m.FixCandidate) bool { return c.Problem.Code == code })
		kept := RemoveMultipleFixesPerProblem(taken)
		s.accepted = append(s.accepted, kept...)
		s.skipped += len(taken) - len(kept)
	case m.ChoiceSkipAll:
		s.skipCodes[code] = struct{}{}
		taken := s.queue.Take(func(c m.FixCandidate) bool { return c.Problem.Code == code })
		s.skipped += len(taken)
	default:
		if run.Kind == RunSameLine {
			s.skip(1)
			return
		}

		s.skip(len(run.Candidates))
	}
}

// acceptFront accepts the front candidate. The rest of the run proposes the
// same edit or another fix for the same problem, so it is dropped.
func (s *arbitration) acceptFront(run Run) {
	s.accepted = append(s.accepted, run.Candidates[0])
	s.skip(len(run.Candidates))
	s.skipped--
}

func (s *arbitration) skip(n int) {
	s.queue.Drop(n)
	s.skipped += n
}

func (s *arbitration) ask(ctx context.Context, request m.PromptRequest) (m.PromptResponse, error) {
	response, err := s.prompter.Prompt(ctx, request)
	if err != nil {
		slog.Error("Failed to prompt operator", "kind", request.Kind, "error", err)
		return m.PromptResponse{}, fmt.Errorf("prompt: %w", err)
	}

	if !request.Offers(response.Choice) {
		return m.PromptResponse{}, fmt.Errorf("%w: %s", ErrInvalidChoice, response.Choice)
	}

	if response.Choice == m.ChoicePick && (response.Index < 0 || response.Index >= len(request.Options)) {
		return m.PromptResponse{}, fmt.Errorf("%w: option %d of %d", ErrInvalidChoice, response.Index, len(request.Options))
	}

	return response, nil
}

func (s *arbitration) option(candidate m.FixCandidate) m.PromptOption {
	return m.PromptOption{
		FixName:     candidate.Fix.Name,
		Description: candidate.Fix.Description,
		Problem:     candidate.Problem,
		Span:        describeCandidate(s.texts, candidate),
	}
}

func describeCandidate(texts TextSource, candidate m.FixCandidate) m.SpanView {
	file := candidate.Fix.TargetFile()

	var patch m.Patch

	switch patches := candidate.Fix.Patches(); {
	case len(patches) > 0:
		patch = patches[0]
	case candidate.Problem.Location != nil:
		file = candidate.Problem.Location.File
		patch = m.Patch{Start: candidate.Problem.Location.Start, Length: candidate.Problem.Location.Length}
	}

	text, ok := texts.Text(file)
	if !ok {
		return m.SpanView{File: file, NewText: patch.NewText}
	}

	return DescribeSpan(file, text, patch)
}

// DescribeSpan locates patch inside text and returns its line, column and line text.
func DescribeSpan(file m.Path, text string, patch m.Patch) m.SpanView {
	start := min(max(patch.Start, 0), len(text))

	lineStart := strings.LastIndexByte(text[:start], '\n') + 1

	lineEnd := len(text)
	if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}

	return m.SpanView{
		File:     file,
		Line:     strings.Count(text[:start], "\n") + 1,
		Column:   start - lineStart + 1,
		LineText: text[lineStart:lineEnd],
		Width:    min(patch.Length, lineEnd-start),
		NewText:  patch.NewText,
	}
}
