package services

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"academyqa/models"
)

// LexicalModel is an in-process extractive model: it returns the passage
// sentence sharing the most content words with the question. It needs no
// external service, so it is the default provider.
type LexicalModel struct{}

func NewLexicalModel() *LexicalModel {
	return &LexicalModel{}
}

var errEmptyPassage = errors.New("passage is empty")

var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "can": {}, "could": {}, "do": {}, "does": {}, "for": {}, "from": {},
	"how": {}, "i": {}, "in": {}, "is": {}, "it": {}, "its": {}, "me": {}, "my": {},
	"of": {}, "on": {}, "or": {}, "s": {}, "tell": {}, "that": {}, "the": {}, "their": {},
	"there": {}, "this": {}, "to": {}, "was": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "who": {}, "whom": {}, "why": {}, "will": {}, "with": {}, "you": {}, "your": {},
}

func (m *LexicalModel) Answer(ctx context.Context, question, passage string) (*models.ModelAnswer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sentences := splitSentences(passage)
	if len(sentences) == 0 {
		return nil, errEmptyPassage
	}

	terms := contentTerms(question)

	best, bestOverlap := sentences[0], 0
	if len(terms) > 0 {
		for _, s := range sentences {
			overlap := 0
			for t := range contentTerms(passage[s.start:s.end]) {
				if _, ok := terms[t]; ok {
					overlap++
				}
			}
			if overlap > bestOverlap {
				best, bestOverlap = s, overlap
			}
		}
	}

	var score float64
	if len(terms) > 0 {
		score = float64(bestOverlap) / float64(len(terms))
	}

	return &models.ModelAnswer{
		Text:  passage[best.start:best.end],
		Score: score,
		Start: best.start,
		End:   best.end,
	}, nil
}

type span struct {
	start, end int
}

// splitSentences splits on . ! ? followed by whitespace and a character that
// does not continue the sentence (a digit or lowercase letter, as in "Rs. 15").
func splitSentences(p string) []span {
	var out []span
	start := 0
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		j := i + 1
		for j < len(p) && isSpace(p[j]) {
			j++
		}
		if j < len(p) {
			if j == i+1 {
				continue
			}
			r, _ := utf8.DecodeRuneInString(p[j:])
			if unicode.IsDigit(r) || unicode.IsLower(r) {
				continue
			}
		}
		out = appendTrimmed(out, p, start, i+1)
		start = j
		i = j - 1
	}
	if start < len(p) {
		out = appendTrimmed(out, p, start, len(p))
	}
	return out
}

func appendTrimmed(out []span, p string, start, end int) []span {
	for start < end && isSpace(p[start]) {
		start++
	}
	for end > start && isSpace(p[end-1]) {
		end--
	}
	if start == end {
		return out
	}
	return append(out, span{start: start, end: end})
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r'
}

func contentTerms(s string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	terms := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, stop := stopwords[w]; stop {
			continue
		}
		terms[w] = struct{}{}
	}
	return terms
}
