package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"go/token"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"fixpass.dev/pkg/fixpass/internal/adapter"
	"fixpass.dev/pkg/fixpass/internal/domain/fixers"
	m "fixpass.dev/pkg/fixpass/internal/model"
)

// Oracle reports problems over a project snapshot and proposes fixes for them.
type Oracle interface {
	Name() string
	// Problems returns the problems of the snapshot grouped per file.
	Problems(ctx context.Context, project *Project) ([][]m.Problem, error)
	// FixCandidates returns the fixes for problems of one file, in problem order.
	FixCandidates(ctx context.Context, project *Project, file m.Path, problems []m.Problem) ([]m.FixCandidate, error)
}

const analysisCacheSize = 512

type goOracle struct {
	adapter.GoFileAdapter
	cache *lru.Cache[string, []fixers.Finding]
}

// NewGoOracle creates the built-in oracle that runs the fixers catalogue over
// every .go file of the snapshot.
func NewGoOracle(goFileAdapter adapter.GoFileAdapter) (Oracle, error) {
	cache, err := lru.New[string, []fixers.Finding](analysisCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}

	return &goOracle{GoFileAdapter: goFileAdapter, cache: cache}, nil
}

func (o *goOracle) Name() string {
	return "builtin"
}

func (o *goOracle) Problems(ctx context.Context, project *Project) ([][]m.Problem, error) {
	var problems [][]m.Problem

	for _, file := range project.Files() {
		if !strings.HasSuffix(string(file.Path), ".go") {
			continue
		}

		findings, err := o.analyze(ctx, project, file)
		if err != nil {
			return nil, err
		}

		if len(findings) == 0 {
			continue
		}

		group := make([]m.Problem, 0, len(findings))
		for _, finding := range findings {
			group = append(group, finding.Problem)
		}

		problems = append(problems, group)
	}

	return problems, nil
}

func (o *goOracle) FixCandidates(ctx context.Context, project *Project, file m.Path, problems []m.Problem) ([]m.FixCandidate, error) {
	text, ok := project.Text(file)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFileNotInProject, file)
	}

	findings, err := o.analyze(ctx, project, m.SourceFile{Path: file, Text: text})
	if err != nil {
		return nil, err
	}

	var candidates []m.FixCandidate

	for _, problem := range problems {
		for _, finding := range findings {
			if !finding.Problem.SameLocation(problem) || finding.Problem.Message != problem.Message {
				continue
			}

			for _, fix := range finding.Fixes {
				candidates = append(candidates, m.FixCandidate{Fix: fix, Problem: problem})
			}
		}
	}

	return candidates, nil
}

func (o *goOracle) analyze(ctx context.Context, project *Project, file m.SourceFile) ([]fixers.Finding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hasTest := project.Has(fixers.TestFileFor(file.Path))
	key := analysisKey(file, hasTest)

	if findings, ok := o.cache.Get(key); ok {
		return findings, nil
	}

	fset := token.NewFileSet()
	content := []byte(file.Text)

	parsed, err := o.Parse(ctx, fset, string(file.Path), content)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		slog.Debug("File does not parse", "path", file.Path, "error", err)

		findings := []fixers.Finding{{Problem: m.Problem{
			Code:     fixers.SyntaxErrorCode,
			Message:  err.Error(),
			Severity: m.SeverityError,
			Location: &m.Location{File: file.Path},
		}}}
		o.cache.Add(key, findings)

		return findings, nil
	}

	findings := fixers.Run(&fixers.Context{
		Fset:        fset,
		File:        parsed,
		Path:        file.Path,
		Content:     content,
		HasTestFile: hasTest,
	})
	o.cache.Add(key, findings)

	return findings, nil
}

func analysisKey(file m.SourceFile, hasTest bool) string {
	sum := sha256.Sum256([]byte(file.Text))
	return fmt.Sprintf("%s|%t|%s", file.Path, hasTest, hex.EncodeToString(sum[:]))
}
