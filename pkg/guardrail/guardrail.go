// Package guardrail confines the LLM to the salon/booking domain.
//
// Classification is a term-counting decision over two curated vocabularies
// (allow-set, block-set) compiled into case-insensitive whole-word patterns
// at construction. The guardrail is purely in-memory and side-effect-free;
// pattern tables are immutable after New.
package guardrail

import (
	"regexp"
	"strings"
	"unicode"
)

// Verdict is the outcome of a validation.
type Verdict struct {
	Accept bool
	Reason string
}

// Guardrail classifies requests as in-domain or off-topic.
type Guardrail struct {
	allow []*regexp.Regexp
	block []*regexp.Regexp
}

// New compiles the built-in vocabularies into a ready guardrail.
func New() *Guardrail {
	return &Guardrail{
		allow: compile(allowTerms),
		block: compile(blockTerms),
	}
}

// compile builds whole-word patterns. ASCII \b does not work for Devanagari
// or Telugu, so word boundaries are expressed as "not a letter/digit" on
// both sides.
func compile(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns,
			regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])`+regexp.QuoteMeta(term)+`(?:[^\p{L}\p{N}]|$)`))
	}
	return patterns
}

// Validate classifies a query. Decision rules, in order:
//
//  1. Empty or whitespace → reject ("empty").
//  2. ≤ 2 words → accept (greetings and acknowledgements pass).
//  3. allow=0 ∧ block>0 → reject.
//  4. allow>0 ∧ block>allow → reject.
//  5. Otherwise accept. Ambiguous inputs (no hits at all) accept —
//     optimized for recall inside the allowed domain.
func (g *Guardrail) Validate(query string) Verdict {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Verdict{Accept: false, Reason: "empty"}
	}
	if len(strings.Fields(trimmed)) <= 2 {
		return Verdict{Accept: true, Reason: "short_input"}
	}

	allowCount := countMatches(g.allow, trimmed)
	blockCount := countMatches(g.block, trimmed)

	switch {
	case allowCount == 0 && blockCount > 0:
		return Verdict{Accept: false, Reason: "off_topic"}
	case allowCount > 0 && blockCount > allowCount:
		return Verdict{Accept: false, Reason: "mostly_off_topic"}
	default:
		return Verdict{Accept: true, Reason: "in_domain"}
	}
}

func countMatches(patterns []*regexp.Regexp, query string) int {
	count := 0
	for _, p := range patterns {
		if p.MatchString(query) {
			count++
		}
	}
	return count
}

// DetectLanguage returns a language hint from Unicode script presence:
// Devanagari → "hi", Telugu → "te", anything else → "en".
func DetectLanguage(query string) string {
	for _, r := range query {
		if unicode.Is(unicode.Devanagari, r) {
			return "hi"
		}
		if unicode.Is(unicode.Telugu, r) {
			return "te"
		}
	}
	return "en"
}

// RejectionMessage returns the localized rejection text: a language-specific
// prefix plus the fixed redirect menu.
func (g *Guardrail) RejectionMessage(language string) string {
	prefix, ok := rejectionPrefix[language]
	if !ok {
		prefix = rejectionPrefix["en"]
	}
	return prefix + redirectMenu
}

// SystemPromptSuffix returns the immutable instruction appended to every
// LLM system prompt reinforcing domain confinement.
func (g *Guardrail) SystemPromptSuffix() string {
	return systemPromptSuffix
}
