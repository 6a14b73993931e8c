package services

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"member-qa/domain/qa"
)

// refusalPhrases are scanned for in normalized backend output. The first
// entry is the mandated fallback sentence itself; the rest are phrasings
// backends produce when they hedge instead of following the instruction
// verbatim.
var refusalPhrases = []string{
	qa.FallbackSentence,
	"i don't have enough information",
	"i do not have enough information",
	"not enough information to answer",
	"the messages do not mention",
}

// GroundingValidator is the thin backstop behind the prompt's grounding
// instruction: it decides grounded/ungrounded from the shape of the output,
// it does not re-verify factual support.
type GroundingValidator struct {
	matcher *goahocorasick.Machine
}

// NewGroundingValidator builds the Aho-Corasick automaton over the
// normalized refusal dictionary, optionally extended with deployment
// specific phrases.
func NewGroundingValidator(extra ...string) (GroundingValidator, error) {
	phrases := append(append([]string{}, refusalPhrases...), extra...)
	patterns := make([][]rune, len(phrases))
	for i, phrase := range phrases {
		patterns[i] = normalizeRunes(phrase)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return GroundingValidator{}, err
	}
	return GroundingValidator{matcher: m}, nil
}

// Finalize normalizes the raw backend output and produces the final
// result. Output that is empty or contains refusal phrasing collapses to
// the exact fallback sentence with grounded=false; everything else passes
// through unmodified with grounded=true.
func (v GroundingValidator) Finalize(raw string) qa.AnswerResult {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return qa.Fallback()
	}
	normalized := normalizeRunes(answer)
	if len(normalized) == 0 {
		return qa.Fallback()
	}
	if hits := v.matcher.MultiPatternSearch(normalized, true); len(hits) > 0 {
		return qa.Fallback()
	}
	return qa.AnswerResult{Answer: answer, Grounded: true}
}

// normalizeRunes lowercases and strips whitespace, punctuation and symbols
// so trivial casing or spacing differences cannot hide the fallback
// sentence from the matcher.
func normalizeRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}
