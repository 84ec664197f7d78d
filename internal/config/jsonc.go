package config

import (
	"bytes"
)

// StripJSONComments removes // and /* */ comments from JSONC content so the
// result can be fed to encoding/json. String literals are left untouched.
func StripJSONComments(data []byte) []byte {
	out := make([]byte, 0, len(data))

	const (
		stateCode = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateCode
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		switch state {
		case stateCode:
			switch {
			case c == '"':
				state = stateString
				out = append(out, c)
			case c == '/' && i+1 < len(data) && data[i+1] == '/':
				state = stateLineComment
				i++
			case c == '/' && i+1 < len(data) && data[i+1] == '*':
				state = stateBlockComment
				i++
			default:
				out = append(out, c)
			}

		case stateString:
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				state = stateCode
			}

		case stateLineComment:
			if c == '\n' {
				state = stateCode
				out = append(out, c)
			}

		case stateBlockComment:
			if c == '*' && i+1 < len(data) && data[i+1] == '/' {
				state = stateCode
				i++
			}
		}
	}

	return bytes.TrimRight(out, " \t")
}
