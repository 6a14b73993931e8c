package qa

import "fmt"

// systemInstruction constrains the backend to the supplied evidence. The
// temporal clause exists because many member messages describe plans in
// relative terms ("this Friday") that must not be conflated with the
// message's send timestamp.
const systemInstruction = "You answer questions about member data based ONLY on the provided messages. " +
	"If the messages do not support a direct answer, reply exactly: " + FallbackSentence + " " +
	"Messages often describe plans with relative or explicit dates in their text " +
	"(\"this Friday\", \"on March 3rd\"); always prefer those over the message timestamp, " +
	"which only records when the message was sent."

const emptyContextBlock = "No member messages are available."

// Prompt is the structured generation request: the serialization to the
// backend's message roles happens only at the ai boundary, so tests can
// assert on structure instead of substrings.
type Prompt struct {
	System   string
	Context  string
	Question string
}

// BuildPrompt renders the window into the evidentiary context block. It is
// pure and byte-reproducible for identical (window, question) pairs.
func BuildPrompt(window ContextWindow, question Question) Prompt {
	contextBlock := emptyContextBlock
	if !window.Empty() {
		contextBlock = "Member messages:\n" + window.Render()
	}
	return Prompt{
		System:   systemInstruction,
		Context:  contextBlock,
		Question: question.Text,
	}
}

// UserContent serializes the context block and question into the user turn
// sent to the backend.
func (p Prompt) UserContent() string {
	return fmt.Sprintf("Context:\n%s\n\nQuestion: %s\nProvide a concise answer.", p.Context, p.Question)
}
