package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{"empty input", "", nil},
		{"single row with empty middle cell", "a,,b\n", [][]string{{"a", "", "b"}}},
		{"no trailing newline", "a,b", [][]string{{"a", "b"}}},
		{"delimiters only", ",,\n", [][]string{{"", "", ""}}},
		{"blank line", "a\n\nb\n", [][]string{{"a"}, {""}, {"b"}}},
		{"crlf line endings", "a,b\r\nc,d\r\n", [][]string{{"a", "b"}, {"c", "d"}}},
		{"bare cr line endings", "a\rb", [][]string{{"a"}, {"b"}}},
		{"quoted delimiter", `"a,b",c`, [][]string{{"a,b", "c"}}},
		{"quoted newline", "\"line1\nline2\",x\n", [][]string{{"line1\nline2", "x"}}},
		{"escaped quote", `"say ""hi""",x`, [][]string{{`say "hi"`, "x"}}},
		{"empty quoted field", `a,"",b`, [][]string{{"a", "", "b"}}},
		{"whitespace kept", " a , b ", [][]string{{" a ", " b "}}},
		{"multibyte", "大吉,財布、鍵\n", [][]string{{"大吉", "財布、鍵"}}},
		{"quote inside unquoted cell toggles", `ab"c,d"e`, [][]string{{"abc,de"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_UnquotedRowShape(t *testing.T) {
	lines := []string{"id,title,genre1", "1,大吉,財布", "2,,", "3,凶,鍵,extra"}
	rows, err := Parse(strings.Join(lines, "\n") + "\n")
	require.NoError(t, err)
	require.Len(t, rows, len(lines))

	for i, line := range lines {
		assert.Len(t, rows[i], strings.Count(line, ",")+1, "row %d", i)
		assert.Equal(t, strings.Split(line, ","), rows[i])
	}
}

func TestParse_RoundTrip(t *testing.T) {
	original := "he said \"yes, no\"\nthen left"
	encoded := `"` + strings.ReplaceAll(original, `"`, `""`) + `"`

	rows, err := Parse(encoded + ",tail\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{original, "tail"}, rows[0])
}

func TestParse_Unterminated(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"first line", `"unterminated`, 1},
		{"later line", "id,title\n1,\"open\n2,x\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Parse(tt.in)
			require.Error(t, err)
			assert.Nil(t, rows)
			assert.True(t, errors.Is(err, ErrMalformedInput))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}
