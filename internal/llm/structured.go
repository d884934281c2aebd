package llm

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// SchemaValidator checks a decoded value. A non-nil error rejects the
// response as ErrInvalidOutput.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first balanced JSON object in raw model output.
// Markdown fences, surrounding prose and comments are ignored.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	block := balancedObject(clean(raw))
	if block == "" {
		var zero T
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}
	return decode(block, validator)
}

// ExtractJSONArray decodes a JSON array from raw model output. The array
// spans the first '[' to the last ']'; a truncated tail is handed to
// jsonrepair. An object whose first array field (by key) holds the payload,
// such as {"actions": [...]}, is unwrapped.
func ExtractJSONArray[T any](raw string, validator SchemaValidator[[]T]) ([]T, error) {
	text := clean(raw)

	block := ""
	obj, arr := strings.IndexByte(text, '{'), strings.IndexByte(text, '[')
	if obj != -1 && (arr == -1 || obj < arr) {
		block = arrayField(text)
	}
	if block == "" {
		block = arraySpan(text)
	}
	if block == "" {
		return nil, fmt.Errorf("%w: no JSON array found in response", ErrInvalidOutput)
	}
	return decode(block, validator)
}

func clean(raw string) string {
	return stripJSONComments(stripCodeFences(raw))
}

// decode unmarshals block, retrying once on the jsonrepair output.
func decode[T any](block string, validator SchemaValidator[T]) (T, error) {
	var zero T
	block = normalizeLeadingDecimalNumbers(block)

	var out T
	if err := json.Unmarshal([]byte(block), &out); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(block)
		if repairErr != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
		out = zero
		if err := json.Unmarshal([]byte(repaired), &out); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}

	if validator != nil {
		if err := validator(out); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

func arraySpan(s string) string {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return ""
	}
	end := strings.LastIndexByte(s, ']')
	if end < start {
		return s[start:]
	}
	return s[start : end+1]
}

func arrayField(s string) string {
	fields, err := ExtractJSON[map[string]json.RawMessage](s, nil)
	if err != nil {
		return ""
	}
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		if v := strings.TrimSpace(string(fields[k])); strings.HasPrefix(v, "[") {
			return v
		}
	}
	return ""
}

// stripCodeFences drops ``` marker lines and keeps everything between them.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "```") {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// lexer tracks whether a byte stream is inside a JSON string literal.
type lexer struct {
	inString bool
	escaped  bool
}

// literal consumes c and reports whether it belongs to a string literal,
// quotes included.
func (l *lexer) literal(c byte) bool {
	switch {
	case l.escaped:
		l.escaped = false
		return true
	case l.inString && c == '\\':
		l.escaped = true
		return true
	case c == '"':
		l.inString = !l.inString
		return true
	}
	return l.inString
}

func balancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}
	var lx lexer
	depth := 0
	for i := start; i < len(s); i++ {
		c := s[i]
		if lx.literal(c) {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripJSONComments removes // and /* */ comments outside string values.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var lx lexer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !lx.literal(c) && c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				for i+1 < len(s) && s[i+1] != '\n' {
					i++
				}
				continue
			case '*':
				end := strings.Index(s[i+2:], "*/")
				if end == -1 {
					return b.String()
				}
				i += end + 3
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// normalizeLeadingDecimalNumbers turns bare ".8" and "-.3" number literals
// into "0.8" and "-0.3".
func normalizeLeadingDecimalNumbers(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	var lx lexer
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !lx.literal(c) && c == '.' && i+1 < len(s) && isDigit(s[i+1]) && startsNumber(prevNonSpace(s, i-1)) {
			b.WriteByte('0')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func prevNonSpace(s string, i int) byte {
	for ; i >= 0; i-- {
		switch s[i] {
		case ' ', '\n', '\r', '\t':
		default:
			return s[i]
		}
	}
	return 0
}

func startsNumber(c byte) bool {
	return c == 0 || strings.IndexByte(":,[{-", c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
