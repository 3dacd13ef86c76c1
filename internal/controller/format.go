package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

var (
	pathColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	spanColor    = color.New(color.FgRed)
	newTextColor = color.New(color.FgGreen)
	promptColor  = color.New(color.FgMagenta)
)

func severityColor(severity m.Severity) *color.Color {
	switch severity {
	case m.SeverityError:
		return errorColor
	case m.SeverityWarning:
		return warningColor
	default:
		return infoColor
	}
}

// formatLocation renders file:line:col, or just the file when the line is unknown.
func formatLocation(span m.SpanView) string {
	if span.Line == 0 {
		return string(span.File)
	}

	return fmt.Sprintf("%s:%d:%d", span.File, span.Line, span.Column)
}

// formatOption renders one prompt option: the problem, the code line with the
// patched span underlined, and the proposed text.
func formatOption(index int, option m.PromptOption, numbered bool) string {
	var b strings.Builder

	if numbered {
		fmt.Fprintf(&b, "%d) ", index+1)
	}

	fmt.Fprintf(&b, "%s %s %s\n",
		pathColor.Sprint(formatLocation(option.Span)),
		severityColor(option.Problem.Severity).Sprintf("%s %d:", option.Problem.Severity, option.Problem.Code),
		option.Problem.Message,
	)

	if option.Span.Line > 0 {
		b.WriteString(formatCodeSpan(option.Span))
	}

	fmt.Fprintf(&b, "   fix %s: %s\n", infoColor.Sprint(option.FixName), option.Description)

	if option.Span.NewText != "" || option.Span.Width > 0 {
		fmt.Fprintf(&b, "   => %s\n", newTextColor.Sprint(strconv.Quote(option.Span.NewText)))
	}

	return b.String()
}

func formatCodeSpan(span m.SpanView) string {
	gutter := strconv.Itoa(span.Line)
	pad := strings.Repeat(" ", len(gutter))

	return fmt.Sprintf("   %s | %s\n   %s | %s\n",
		gutter, span.LineText,
		pad, spanColor.Sprint(underline(span.LineText, span.Column, span.Width)),
	)
}

// underline returns carets under the span of lineText starting at the 1-based
// byte column, keeping tabs so the carets line up with the code.
func underline(lineText string, column, width int) string {
	start := min(max(column-1, 0), len(lineText))
	end := min(start+max(width, 0), len(lineText))

	var b strings.Builder

	for _, r := range lineText[:start] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}

		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	b.WriteString(strings.Repeat("^", max(runewidth.StringWidth(lineText[start:end]), 1)))

	return b.String()
}

var choiceKeys = map[m.Choice]string{
	m.ChoiceAccept:    "a",
	m.ChoiceAcceptAll: "A",
	m.ChoiceSkip:      "s",
	m.ChoiceSkipAll:   "S",
	m.ChoiceShowMore:  "m",
}

func choiceLabel(choice m.Choice, code int) string {
	switch choice {
	case m.ChoiceAccept:
		return "accept"
	case m.ChoiceAcceptAll:
		return fmt.Sprintf("accept all with code %d", code)
	case m.ChoiceSkip:
		return "skip"
	case m.ChoiceSkipAll:
		return fmt.Sprintf("skip all with code %d", code)
	case m.ChoiceShowMore:
		return "show alternatives"
	default:
		return choice.String()
	}
}

// formatRequest renders a prompt request without the choice line.
func formatRequest(request m.PromptRequest) string {
	var b strings.Builder

	numbered := request.Offers(m.ChoicePick)

	switch request.Kind {
	case m.PromptSameProblem:
		fmt.Fprintf(&b, "%d fixes answer the same problem:\n", len(request.Options))
	case m.PromptSameSpan:
		fmt.Fprintf(&b, "%d fixes replace the same text differently:\n", len(request.Options))
	case m.PromptSameLine:
		fmt.Fprintf(&b, "%d problems on one line share this fix:\n", request.RunSize)
	case m.PromptSingle:
	}

	for i, option := range request.Options {
		b.WriteString(formatOption(i, option, numbered))
	}

	if request.Remaining > 0 {
		fmt.Fprintf(&b, "(%d more fixes to review)\n", request.Remaining)
	}

	return b.String()
}

// formatChoices renders the keys the operator can answer with.
func formatChoices(request m.PromptRequest) string {
	code := 0
	if len(request.Options) > 0 {
		code = request.Options[0].Problem.Code
	}

	parts := make([]string, 0, len(request.Choices))

	for _, choice := range request.Choices {
		if choice == m.ChoicePick {
			parts = append(parts, fmt.Sprintf("[1-%d] pick", len(request.Options)))
			continue
		}

		parts = append(parts, fmt.Sprintf("[%s] %s", choiceKeys[choice], choiceLabel(choice, code)))
	}

	return promptColor.Sprint(strings.Join(parts, "  "))
}

// parseAnswer maps operator input to a response for request.
func parseAnswer(request m.PromptRequest, input string) (m.PromptResponse, bool) {
	input = strings.TrimSpace(input)

	for choice, key := range choiceKeys {
		if input == key && request.Offers(choice) {
			return m.PromptResponse{Choice: choice}, true
		}
	}

	if request.Offers(m.ChoicePick) {
		if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(request.Options) {
			return m.PromptResponse{Choice: m.ChoicePick, Index: n - 1}, true
		}
	}

	return m.PromptResponse{}, false
}
