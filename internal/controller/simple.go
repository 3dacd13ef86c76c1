package controller

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

// ErrPromptAborted is returned by Prompt when the operator quits or input ends.
var ErrPromptAborted = errors.New("prompt aborted")

// ErrUnknownFormat is returned by DisplayProblems for an unsupported format.
var ErrUnknownFormat = errors.New("unknown output format")

const quitKey = "q"

// SimpleUI implements UI using cobra Command's input and output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	mode   StartMode
	mu     sync.Mutex
	reader *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = applyStartOptions(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Log prints a status line.
func (s *SimpleUI) Log(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

// Prompt prints the request and reads answers line by line until one is valid.
func (s *SimpleUI) Prompt(ctx context.Context, request m.PromptRequest) (m.PromptResponse, error) {
	s.printf("\n%s", formatRequest(request))

	for {
		if err := ctx.Err(); err != nil {
			return m.PromptResponse{}, err
		}

		s.printf("%s %s ", formatChoices(request), promptColor.Sprintf("[%s] quit >", quitKey))

		line, err := s.input().ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return m.PromptResponse{}, ErrPromptAborted
		}

		if strings.TrimSpace(line) == quitKey {
			return m.PromptResponse{}, ErrPromptAborted
		}

		if response, ok := parseAnswer(request, line); ok {
			return response, nil
		}

		s.printf("Unknown choice %q\n", strings.TrimSpace(line))
	}
}

func (s *SimpleUI) input() *bufio.Reader {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	return s.reader
}

// DisplayDiff prints a unified diff per changed file.
func (s *SimpleUI) DisplayDiff(ctx context.Context, files []m.OutputFile) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, file := range files {
		diff, err := unifiedDiff(file)
		if err != nil {
			s.printf("diff %s: %v\n", file.Path, err)
			continue
		}

		s.printf("%s", diff)
	}
}

func unifiedDiff(file m.OutputFile) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(file.OriginalText),
		B:        difflib.SplitLines(file.NewText),
		FromFile: string(file.Path),
		ToFile:   string(file.Output),
		Context:  3,
	})
}

// DisplaySummary prints the outcome of a fix run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummaryTable(report))

	if len(report.Tallies) > 0 {
		s.printf("\n%s", renderTalliesTable(report.Tallies))
	}

	if len(report.Pending) > 0 {
		s.printf("\nFixes not applied automatically:\n")

		for _, pending := range report.Pending {
			s.printf("  %s\n", pending.FixName)

			for _, file := range pending.Files {
				s.printf("    %s\n", file)
			}
		}
	}

	if len(report.Unresolved) > 0 {
		s.printf("\nPass limit reached with unresolved changes:\n")

		for _, unresolved := range report.Unresolved {
			s.printf("  %s: %d changes\n", unresolved.File, len(unresolved.Patches))
		}
	}

	if len(report.Conflicts) > 0 {
		s.printf("\nConflicting fixes replace the same text differently (re-run with --interactive):\n")

		for _, conflict := range report.Conflicts {
			s.printf("  %s@%d+%d: %s\n", conflict.File, conflict.Start, conflict.Length, strings.Join(quoteAll(conflict.Texts), " | "))
		}
	}
}

func renderSummaryTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", report.ID})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	written := "no (dry run)"
	if report.Written {
		written = "yes"
		if report.OutputFolder != "" {
			written = "to " + string(report.OutputFolder)
		}
	}

	table.Append([]string{"Project", string(report.Project)})
	table.Append([]string{"Oracle", report.Oracle})
	table.Append([]string{"State", report.State.String()})
	table.Append([]string{"Passes", fmt.Sprintf("%d", report.Passes)})
	table.Append([]string{"Diagnostics", fmt.Sprintf("%d", report.Diagnostics)})
	table.Append([]string{"Applied", fmt.Sprintf("%d", report.Applied)})
	table.Append([]string{"Skipped", fmt.Sprintf("%d", report.Skipped)})
	table.Append([]string{"Pending", fmt.Sprintf("%d", len(report.Pending))})
	table.Append([]string{"Files changed", fmt.Sprintf("%d", len(report.ChangedFiles))})
	table.Append([]string{"Written", written})

	table.Render()

	return tableBuffer.String()
}

func renderTalliesTable(tallies []m.FixTally) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Fix", "Code", "Applied"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	total := 0

	for _, tally := range tallies {
		table.Append([]string{tally.FixName, fmt.Sprintf("%d", tally.Code), fmt.Sprintf("%d", tally.Count)})

		total += tally.Count
	}

	table.SetFooter([]string{fmt.Sprintf("Total Fixes %d", len(tallies)), "", fmt.Sprintf("%d", total)})

	table.Render()

	return tableBuffer.String()
}

// DisplayProblems prints problem listings as a table, JSON or YAML.
func (s *SimpleUI) DisplayProblems(ctx context.Context, problems []m.ProblemListing, format string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch format {
	case "", FormatTable:
		s.printf("%s", renderProblemsTable(problems))
	case FormatJSON:
		if problems == nil {
			problems = []m.ProblemListing{}
		}

		out, err := json.MarshalIndent(problems, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		s.printf("%s\n", out)
	case FormatYAML:
		out, err := yaml.Marshal(problems)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		s.printf("%s", out)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return nil
}

func renderProblemsTable(problems []m.ProblemListing) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Location", "Code", "Severity", "Message", "Fixes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	files := make(map[m.Path]struct{})

	for _, problem := range problems {
		location := formatLocation(m.SpanView{File: problem.File, Line: problem.Line, Column: problem.Column})
		table.Append([]string{
			location,
			fmt.Sprintf("%d", problem.Code),
			problem.Severity,
			problem.Message,
			strings.Join(problem.Fixes, ", "),
		})

		files[problem.File] = struct{}{}
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(files)), fmt.Sprintf("%d", len(problems)), "", "", ""})

	table.Render()

	return tableBuffer.String()
}

// DisplayRules prints the built-in rule catalogue.
func (s *SimpleUI) DisplayRules(ctx context.Context, rules []m.RuleInfo) {
	if err := ctx.Err(); err != nil {
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Code", "Rule", "Severity", "Fixes", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, rule := range rules {
		table.Append([]string{
			fmt.Sprintf("%d", rule.Code),
			rule.Name,
			rule.Severity.String(),
			strings.Join(rule.Fixes, ", "),
			rule.Description,
		})
	}

	table.Render()

	s.printf("%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func quoteAll(texts []string) []string {
	quoted := make([]string, 0, len(texts))
	for _, text := range texts {
		quoted = append(quoted, fmt.Sprintf("%q", text))
	}

	return quoted
}
