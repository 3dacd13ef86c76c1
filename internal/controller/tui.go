package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "fixpass.dev/pkg/fixpass/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	decisionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with interactive Bubble Tea prompts. Everything else is
// printed the same way SimpleUI does.
type TUI struct {
	*SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Prompt runs a prompt program until the operator decides.
func (t *TUI) Prompt(ctx context.Context, request m.PromptRequest) (m.PromptResponse, error) {
	program := tea.NewProgram(
		newPromptModel(request),
		tea.WithContext(ctx),
		tea.WithInput(t.cmd.InOrStdin()),
		tea.WithOutput(t.cmd.OutOrStdout()),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil {
			return m.PromptResponse{}, ctx.Err()
		}

		return m.PromptResponse{}, fmt.Errorf("%w: %w", ErrPromptAborted, err)
	}

	result, ok := final.(promptModel)
	if !ok || result.aborted || !result.done {
		return m.PromptResponse{}, ErrPromptAborted
	}

	return result.response, nil
}

type promptKeyMap struct {
	Accept    key.Binding
	AcceptAll key.Binding
	Skip      key.Binding
	SkipAll   key.Binding
	More      key.Binding
	Up        key.Binding
	Down      key.Binding
	Pick      key.Binding
	Quit      key.Binding
}

func newPromptKeyMap(request m.PromptRequest, code int) promptKeyMap {
	keys := promptKeyMap{
		Accept:    key.NewBinding(key.WithKeys(choiceKeys[m.ChoiceAccept]), key.WithHelp(choiceKeys[m.ChoiceAccept], choiceLabel(m.ChoiceAccept, code))),
		AcceptAll: key.NewBinding(key.WithKeys(choiceKeys[m.ChoiceAcceptAll]), key.WithHelp(choiceKeys[m.ChoiceAcceptAll], choiceLabel(m.ChoiceAcceptAll, code))),
		Skip:      key.NewBinding(key.WithKeys(choiceKeys[m.ChoiceSkip]), key.WithHelp(choiceKeys[m.ChoiceSkip], choiceLabel(m.ChoiceSkip, code))),
		SkipAll:   key.NewBinding(key.WithKeys(choiceKeys[m.ChoiceSkipAll]), key.WithHelp(choiceKeys[m.ChoiceSkipAll], choiceLabel(m.ChoiceSkipAll, code))),
		More:      key.NewBinding(key.WithKeys(choiceKeys[m.ChoiceShowMore]), key.WithHelp(choiceKeys[m.ChoiceShowMore], choiceLabel(m.ChoiceShowMore, code))),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pick:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/1-9", "pick")),
		Quit:      key.NewBinding(key.WithKeys(quitKey, "ctrl+c", "esc"), key.WithHelp(quitKey, "quit")),
	}

	keys.Accept.SetEnabled(request.Offers(m.ChoiceAccept))
	keys.AcceptAll.SetEnabled(request.Offers(m.ChoiceAcceptAll))
	keys.Skip.SetEnabled(request.Offers(m.ChoiceSkip))
	keys.SkipAll.SetEnabled(request.Offers(m.ChoiceSkipAll))
	keys.More.SetEnabled(request.Offers(m.ChoiceShowMore))

	picking := request.Offers(m.ChoicePick)
	keys.Up.SetEnabled(picking)
	keys.Down.SetEnabled(picking)
	keys.Pick.SetEnabled(picking)

	return keys
}

func (k promptKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.AcceptAll, k.Skip, k.SkipAll, k.More, k.Pick, k.Quit}
}

func (k promptKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Up, k.Down}}
}

type promptModel struct {
	request  m.PromptRequest
	keys     promptKeyMap
	help     help.Model
	cursor   int
	response m.PromptResponse
	done     bool
	aborted  bool
}

func newPromptModel(request m.PromptRequest) promptModel {
	code := 0
	if len(request.Options) > 0 {
		code = request.Options[0].Problem.Code
	}

	return promptModel{
		request: request,
		keys:    newPromptKeyMap(request, code),
		help:    help.New(),
	}
}

func (pm promptModel) Init() tea.Cmd {
	return nil
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.help.Width = msg.Width
		return pm, nil
	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm promptModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, pm.keys.Quit):
		pm.aborted = true
		return pm, tea.Quit
	case key.Matches(msg, pm.keys.Up):
		if pm.cursor > 0 {
			pm.cursor--
		}

		return pm, nil
	case key.Matches(msg, pm.keys.Down):
		if pm.cursor < len(pm.request.Options)-1 {
			pm.cursor++
		}

		return pm, nil
	case key.Matches(msg, pm.keys.Pick):
		return pm.decide(m.PromptResponse{Choice: m.ChoicePick, Index: pm.cursor})
	}

	if response, ok := parseAnswer(pm.request, msg.String()); ok {
		return pm.decide(response)
	}

	return pm, nil
}

func (pm promptModel) decide(response m.PromptResponse) (tea.Model, tea.Cmd) {
	pm.response = response
	pm.done = true

	return pm, tea.Quit
}

func (pm promptModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(promptTitle(pm.request)))
	b.WriteString("\n")

	picking := pm.request.Offers(m.ChoicePick)

	for i, option := range pm.request.Options {
		marker := "  "
		if picking && i == pm.cursor {
			marker = cursorStyle.Render("> ")
		}

		b.WriteString(marker)
		b.WriteString(formatOption(i, option, picking))
	}

	if pm.request.Remaining > 0 {
		b.WriteString(faintStyle.Render(fmt.Sprintf("%d more fixes to review", pm.request.Remaining)))
		b.WriteString("\n")
	}

	if pm.done {
		b.WriteString(decisionStyle.Render(decisionText(pm.request, pm.response)))
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString(pm.help.View(pm.keys))
	b.WriteString("\n")

	return b.String()
}

func promptTitle(request m.PromptRequest) string {
	switch request.Kind {
	case m.PromptSameProblem:
		return strconv.Itoa(len(request.Options)) + " fixes answer the same problem"
	case m.PromptSameSpan:
		return strconv.Itoa(len(request.Options)) + " fixes replace the same text differently"
	case m.PromptSameLine:
		return strconv.Itoa(request.RunSize) + " problems on one line share this fix"
	default:
		return "Apply this fix?"
	}
}

func decisionText(request m.PromptRequest, response m.PromptResponse) string {
	if response.Choice == m.ChoicePick && response.Index < len(request.Options) {
		return "picked " + request.Options[response.Index].FixName
	}

	code := 0
	if len(request.Options) > 0 {
		code = request.Options[0].Problem.Code
	}

	return choiceLabel(response.Choice, code)
}
