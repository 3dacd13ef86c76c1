package model

// Choice is an operator decision on a prompt.
type Choice int

// Available Choice values.
const (
	ChoiceAccept Choice = iota
	ChoiceAcceptAll
	ChoiceSkip
	ChoiceSkipAll
	ChoiceShowMore
	ChoicePick
)

func (c Choice) String() string {
	switch c {
	case ChoiceAccept:
		return "accept"
	case ChoiceAcceptAll:
		return "accept all"
	case ChoiceSkip:
		return "skip"
	case ChoiceSkipAll:
		return "skip all"
	case ChoiceShowMore:
		return "show more"
	case ChoicePick:
		return "pick"
	default:
		return "unknown"
	}
}

// PromptKind tells the operator which conflict shape is being arbitrated.
type PromptKind int

// Available PromptKind values.
const (
	PromptSingle PromptKind = iota
	PromptSameLine
	PromptSameSpan
	PromptSameProblem
)

// SpanView is a rendered location of a patch inside its file.
type SpanView struct {
	File     Path
	Line     int
	Column   int
	LineText string

	// Width is the number of bytes of LineText covered by the span.
	Width   int
	NewText string
}

// PromptOption is one fix offered to the operator.
type PromptOption struct {
	FixName     string
	Description string
	Problem     Problem
	Span        SpanView
}

// PromptRequest asks the operator to decide about one or more candidates.
// Single and same-line prompts carry one option; same-span and same-problem
// prompts carry the whole list to pick from. RunSize counts the candidates of
// the run the front option belongs to.
type PromptRequest struct {
	Kind      PromptKind
	Options   []PromptOption
	Choices   []Choice
	Remaining int
	RunSize   int
}

// Offers reports whether the request allows the given choice.
func (r PromptRequest) Offers(choice Choice) bool {
	for _, c := range r.Choices {
		if c == choice {
			return true
		}
	}

	return false
}

// PromptResponse is the operator's answer. Index is used with ChoicePick.
type PromptResponse struct {
	Choice Choice
	Index  int
}
