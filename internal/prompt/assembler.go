package prompt

import (
	"fmt"
	"strings"

	"storyteller-server/internal/models"

	"go.uber.org/zap"
)

const (
	// HistoryWindow is the hard cap on transcript entries included in a
	// story-mode prompt. It counts entries, not tokens.
	HistoryWindow = 10

	// ContinuePlaceholder is the canonical text stored for a zero-content
	// continue turn.
	ContinuePlaceholder = "Continue the story..."

	storyMarker    = "[Story]:"
	actionMarker   = "[User Action]:"
	inputMarker    = "[User Input]:"
	continueMarker = "[Continue the story...]"

	closingDirective = "Continue the narrative in an engaging way that responds to the user's input or advances the story. Keep the response to 2-4 paragraphs:"

	chatSystemPreamble = "You are a helpful AI assistant.\n\n"
)

// Assembler renders the exact prompt strings sent to the generation backend
// and cleans structural markers out of raw model output.
type Assembler struct {
	logger *zap.Logger
}

func NewAssembler(logger *zap.Logger) *Assembler {
	return &Assembler{logger: logger.Named("PromptAssembler")}
}

// BuildChatPrompt renders a flat transcript of prior turns followed by the new
// user message and a trailing cue for the AI's reply.
func (a *Assembler) BuildChatPrompt(history []models.Message, userText string) string {
	var b strings.Builder
	b.WriteString(chatSystemPreamble)

	transcript := FormatChatTranscript(history, true)
	if transcript != "" {
		b.WriteString("Chat History:\n")
		b.WriteString(transcript)
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "User: %s\n\nAI: ", userText)

	prompt := b.String()
	a.logger.Debug("Assembled chat prompt",
		zap.Int("historyEntries", len(history)),
		zap.Int("tokenEstimate", TokenEstimate(prompt)),
	)
	return prompt
}

// BuildStoryPrompt renders the story-mode prompt: scenario instructions, the
// windowed story context, the new input (or the continue marker) and the
// closing directive. The candidate user entry is not part of history; the
// input line carries it, so both generation paths see it exactly once.
func (a *Assembler) BuildStoryPrompt(scenario *models.Scenario, history []models.Message, input string, isContinue bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an interactive storyteller for a %s scenario.\n", scenario.Name)
	b.WriteString(scenario.SystemInstructions)
	b.WriteString("\n\n")

	b.WriteString("Previous story context:\n")
	for _, msg := range Window(history, HistoryWindow) {
		if msg.Role == models.RoleSystem {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", storyTag(msg), msg.Text)
	}
	b.WriteString("\n")

	if isContinue {
		b.WriteString(continueMarker)
	} else {
		fmt.Fprintf(&b, "%s %s", actionMarker, input)
	}
	b.WriteString("\n\n")
	b.WriteString(closingDirective)

	prompt := b.String()
	a.logger.Debug("Assembled story prompt",
		zap.String("scenario", scenario.Key),
		zap.Int("historyEntries", len(history)),
		zap.Bool("isContinue", isContinue),
		zap.Int("tokenEstimate", TokenEstimate(prompt)),
	)
	return prompt
}

func storyTag(msg models.Message) string {
	if msg.Role == models.RoleUser {
		if msg.InputType == models.InputTypeAction {
			return actionMarker
		}
		return inputMarker
	}
	return storyMarker
}

// Window returns the most recent limit entries of history, preserving order.
func Window(history []models.Message, limit int) []models.Message {
	if len(history) <= limit {
		return history
	}
	return history[len(history)-limit:]
}

// FormatChatTranscript renders history as "{User|AI}: {text}" lines joined by
// newlines. System entries are dropped when skipSystem is set; when kept they
// are labeled as AI, matching the two-label contract of chat mode.
func FormatChatTranscript(history []models.Message, skipSystem bool) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		if skipSystem && msg.Role == models.RoleSystem {
			continue
		}
		label := "AI"
		if msg.Role == models.RoleUser {
			label = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, msg.Text))
	}
	return strings.Join(lines, "\n")
}

// CleanNarration strips structural markers the model may echo back: literal
// story and continue markers anywhere, plus a trailing user-action fragment.
// Cleaning is idempotent; already-clean text passes through unchanged.
func CleanNarration(text string) string {
	text = strings.ReplaceAll(text, storyMarker, "")
	text = strings.ReplaceAll(text, continueMarker, "")
	// Everything from an echoed action marker onward is prompt scaffolding,
	// not narration. Cutting at the first occurrence keeps the pass
	// idempotent: no marker survives to the next application.
	if idx := strings.Index(text, actionMarker); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
