package prompt

import (
	"fmt"
	"strings"
	"testing"

	"storyteller-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testScenario() *models.Scenario {
	return &models.Scenario{
		Key:                "space-colony",
		Name:               "Space Colony",
		SystemInstructions: "You manage a struggling colony on Kepler-452b.",
	}
}

func narration(text string) models.Message {
	return models.Message{Role: models.RoleAI, Text: text, InputType: models.InputTypeNarration}
}

func action(text string) models.Message {
	return models.Message{Role: models.RoleUser, Text: text, InputType: models.InputTypeAction}
}

func TestBuildStoryPrompt(t *testing.T) {
	a := NewAssembler(zap.NewNop())

	t.Run("Action turn carries the input exactly once", func(t *testing.T) {
		history := []models.Message{
			{Role: models.RoleSystem, Text: "instructions", InputType: models.InputTypeNarration},
			narration("The airlock hisses open."),
			action("step inside"),
		}

		prompt := a.BuildStoryPrompt(testScenario(), history, "check the oxygen levels", false)

		assert.Contains(t, prompt, "You are an interactive storyteller for a Space Colony scenario.")
		assert.Contains(t, prompt, "You manage a struggling colony on Kepler-452b.")
		assert.Contains(t, prompt, "[Story]: The airlock hisses open.")
		assert.Contains(t, prompt, "[User Action]: step inside")
		assert.Equal(t, 1, strings.Count(prompt, "check the oxygen levels"),
			"the candidate input must appear exactly once")
		assert.Contains(t, prompt, "[User Action]: check the oxygen levels")
		assert.True(t, strings.HasSuffix(prompt, closingDirective))
	})

	t.Run("System entries never reach the prompt context", func(t *testing.T) {
		history := []models.Message{
			{Role: models.RoleSystem, Text: "SECRET INSTRUCTIONS", InputType: models.InputTypeNarration},
			narration("Dawn breaks."),
		}

		prompt := a.BuildStoryPrompt(testScenario(), history, "look around", false)
		assert.NotContains(t, prompt, "SECRET INSTRUCTIONS")
	})

	t.Run("Continue turn uses the continue marker instead of an action line", func(t *testing.T) {
		prompt := a.BuildStoryPrompt(testScenario(), []models.Message{narration("Night falls.")}, "", true)

		assert.Contains(t, prompt, continueMarker)
		assert.NotContains(t, prompt, actionMarker)
	})

	t.Run("Only the most recent window of history is included", func(t *testing.T) {
		var history []models.Message
		for i := 0; i < 15; i++ {
			history = append(history, narration(fmt.Sprintf("entry-%d", i)))
		}

		prompt := a.BuildStoryPrompt(testScenario(), history, "go", false)

		assert.NotContains(t, prompt, "entry-4", "entries before the window must be dropped")
		assert.Contains(t, prompt, "entry-5", "the window starts 10 entries from the end")
		assert.Contains(t, prompt, "entry-14")
	})

	t.Run("User input entries are tagged distinctly from actions", func(t *testing.T) {
		history := []models.Message{
			{Role: models.RoleUser, Text: "hello there", InputType: models.InputTypeNarration},
		}
		prompt := a.BuildStoryPrompt(testScenario(), history, "wave", false)
		assert.Contains(t, prompt, "[User Input]: hello there")
	})
}

func TestBuildChatPrompt(t *testing.T) {
	a := NewAssembler(zap.NewNop())

	t.Run("Empty history omits the history block", func(t *testing.T) {
		prompt := a.BuildChatPrompt(nil, "hi")
		assert.Equal(t, chatSystemPreamble+"User: hi\n\nAI: ", prompt)
	})

	t.Run("Prior turns render as labeled lines", func(t *testing.T) {
		history := []models.Message{
			{Role: models.RoleUser, Text: "what is Go?"},
			{Role: models.RoleAI, Text: "A programming language."},
		}
		prompt := a.BuildChatPrompt(history, "thanks")

		assert.Contains(t, prompt, "Chat History:\nUser: what is Go?\nAI: A programming language.")
		assert.True(t, strings.HasSuffix(prompt, "User: thanks\n\nAI: "))
	})
}

func TestWindow(t *testing.T) {
	history := []models.Message{narration("a"), narration("b"), narration("c")}

	assert.Len(t, Window(history, 10), 3, "short history passes through whole")
	assert.Equal(t, "c", Window(history, 1)[0].Text)
	assert.Empty(t, Window(nil, 10))
}

func TestCleanNarration(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "The colony sleeps.", "The colony sleeps."},
		{"story marker stripped", "[Story]: The colony sleeps.", "The colony sleeps."},
		{"continue marker stripped", "The colony sleeps. [Continue the story...]", "The colony sleeps."},
		{"trailing action echo cut", "The colony sleeps.\n[User Action]: wake everyone", "The colony sleeps."},
		{"everything after first action echo is dropped", "Dawn.\n[User Action]: a\nmore text\n[User Action]: b", "Dawn."},
		{"whitespace trimmed", "  \nDawn.\n ", "Dawn."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanNarration(tc.in)
			require.Equal(t, tc.want, got)
			assert.Equal(t, got, CleanNarration(got), "cleaning must be idempotent")
		})
	}
}

func TestFormatChatTranscript(t *testing.T) {
	history := []models.Message{
		{Role: models.RoleSystem, Text: "be nice"},
		{Role: models.RoleUser, Text: "hi"},
		{Role: models.RoleAI, Text: "hello"},
	}

	assert.Equal(t, "User: hi\nAI: hello", FormatChatTranscript(history, true))
	assert.Equal(t, "AI: be nice\nUser: hi\nAI: hello", FormatChatTranscript(history, false),
		"kept system entries use the AI label")
}
