package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes lf", input: "y\n", want: true},
		{name: "yes word cr", input: "YES\r", want: true},
		{name: "chinese yes", input: "是\n", want: true},
		{name: "yes without newline", input: "y", want: true},
		{name: "empty line", input: "\n", want: false},
		{name: "explicit no", input: "n\n", want: false},
		{name: "eof", input: "", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			assert.Equal(t, tc.want, confirm(strings.NewReader(tc.input), &out, "继续? [y/N]: "))
			assert.Equal(t, "继续? [y/N]: ", out.String())
		})
	}
}
