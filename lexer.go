package browserx

import "strings"

// entities maps the HTML escapes the lexer understands back to their
// characters.
var entities = map[string]string{
	"&lt;": "<",
	"&gt;": ">",
}

// Lex strips markup from body, keeping only the text outside tags and
// replacing known entities. It is a single-pass state machine over the raw
// body text; nesting and malformed markup are not its concern.
func Lex(body string) string {
	var text strings.Builder
	inTag := false

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '<':
			inTag = true
		case c == '>':
			inTag = false
		case !inTag:
			matched := false
			for esc, repl := range entities {
				if strings.HasPrefix(body[i:], esc) {
					text.WriteString(repl)
					i += len(esc) - 1
					matched = true
					break
				}
			}
			if !matched {
				text.WriteByte(c)
			}
		}
	}

	return text.String()
}
