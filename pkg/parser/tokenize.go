package parser

import (
	"fmt"
	"strings"
)

// Tokenize splits a line into words, handling single and double quotes.
// Quotes are stripped and quoted text joins the surrounding word, so
// name:'a b':1 is a single word. Backslashes are not escapes.
func Tokenize(line string) ([]string, error) {
	var (
		tokens []string
		cur    strings.Builder
		inWord bool
		quote  byte
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if quote != 0 {
			if ch == quote {
				quote = 0
				continue
			}
			cur.WriteByte(ch)
			continue
		}

		switch ch {
		case ' ', '\t', '\r', '\n':
			if inWord {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inWord = false
			}
		case '\'', '"':
			// an empty pair like '' still yields a word
			quote = ch
			inWord = true
		default:
			cur.WriteByte(ch)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("%w: unclosed %c quote", ErrSyntax, quote)
	}
	if inWord {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}
