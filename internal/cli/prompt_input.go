package cli

import (
	"fmt"
	"io"
	"strings"
)

// confirm prints message and reads one line answer. Accepts y, yes and 是;
// anything else, including EOF, is a no.
func confirm(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}
	text, err := readPromptLine(in)
	if err != nil && text == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes", "是":
		return true
	}
	return false
}

// readPromptLine reads until LF or CR so Enter works in cooked and raw
// terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}
	var buf []byte
	var one [1]byte
	for {
		n, err := in.Read(one[:])
		if n > 0 {
			if one[0] == '\n' || one[0] == '\r' {
				return string(buf), nil
			}
			buf = append(buf, one[0])
		}
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
