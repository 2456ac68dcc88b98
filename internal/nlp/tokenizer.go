package nlp

import "regexp"

// wordPattern matches word tokens: a letter or digit followed by word
// characters, allowing internal apostrophes, ampersands, periods, and
// hyphens so spans like "Apple Inc." and "Bill.com" survive tokenization.
var wordPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9&'.-]*`)

// Word is a raw token with its position in the source text.
type Word struct {
	Text          string // Token text with original casing
	Start         int    // Byte offset in the source text
	End           int    // Byte offset past the token
	SentenceStart bool   // Token opens the text or follows sentence punctuation
}

// Tokenize splits text into word tokens, preserving casing and position.
// Trailing punctuation that the pattern admits (a final "." or "-") is
// trimmed unless the token looks like a corporate designator ("Inc.") or
// a domain name ("Bill.com").
func Tokenize(text string) []Word {
	matches := wordPattern.FindAllStringIndex(text, -1)
	if matches == nil {
		return nil
	}

	words := make([]Word, 0, len(matches))
	prevEnd := 0
	for i, m := range matches {
		tok := text[m[0]:m[1]]
		tok = trimToken(tok)
		if tok == "" {
			continue
		}

		sentenceStart := i == 0
		if !sentenceStart {
			for _, r := range text[prevEnd:m[0]] {
				if r == '.' || r == '!' || r == '?' || r == ':' || r == ';' || r == '\n' {
					sentenceStart = true
					break
				}
			}
		}

		words = append(words, Word{
			Text:          tok,
			Start:         m[0],
			End:           m[0] + len(tok),
			SentenceStart: sentenceStart,
		})
		// Keep trimmed trailing punctuation in the gap so the next token
		// sees it when deciding whether a sentence boundary precedes it.
		prevEnd = m[0] + len(tok)
	}
	return words
}

// trimToken strips trailing punctuation picked up by the token pattern,
// keeping a final period only when the token has an internal period too
// (abbreviations such as "U.S." or "Bill.com" keep their shape).
func trimToken(tok string) string {
	for len(tok) > 0 {
		last := tok[len(tok)-1]
		if last == '-' || last == '\'' || last == '&' {
			tok = tok[:len(tok)-1]
			continue
		}
		if last == '.' {
			if len(tok) > 2 && countByte(tok[:len(tok)-1], '.') > 0 {
				break
			}
			tok = tok[:len(tok)-1]
			continue
		}
		break
	}
	return tok
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}

// stripPossessive removes a trailing "'s" or bare apostrophe from a token.
func stripPossessive(tok string) string {
	if len(tok) > 2 && (tok[len(tok)-2:] == "'s" || tok[len(tok)-2:] == "'S") {
		return tok[:len(tok)-2]
	}
	if len(tok) > 1 && tok[len(tok)-1] == '\'' {
		return tok[:len(tok)-1]
	}
	return tok
}
