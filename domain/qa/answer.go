package qa

// FallbackSentence is the only user-visible soft failure: the exact string
// returned when the context holds no supporting evidence. Any other failure
// is a hard error.
const FallbackSentence = "I don't have enough information to answer that question."

// AnswerResult is the final payload of a request. Grounded=false means the
// answer field carries FallbackSentence verbatim.
type AnswerResult struct {
	Answer   string `json:"answer"`
	Grounded bool   `json:"grounded"`
}

// Fallback builds the ungrounded result.
func Fallback() AnswerResult {
	return AnswerResult{Answer: FallbackSentence, Grounded: false}
}
