package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{in: "", want: ModeAuto, wantOK: true},
		{in: "auto", want: ModeAuto, wantOK: true},
		{in: "TEXT", want: ModeText, wantOK: true},
		{in: "md", want: ModeMarkdown, wantOK: true},
		{in: "json", want: ModeJSON, wantOK: true},
		{in: "yml", want: ModeYAML, wantOK: true},
		{in: "html", want: ModeAuto, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{name: "auto on tty", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto piped", mode: ModeAuto, isTTY: false, want: ModeMarkdown},
		{name: "explicit json", mode: ModeJSON, isTTY: true, want: ModeJSON},
		{name: "explicit text piped", mode: ModeText, isTTY: false, want: ModeText},
		{name: "unknown falls back to auto", mode: Mode("html"), isTTY: false, want: ModeMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestRenderer_StylesPlainWhenPiped(t *testing.T) {
	r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, ModeText)

	assert.Equal(t, "OK", r.Success("OK"))
	assert.Equal(t, "FAIL", r.Failure("FAIL"))
	assert.Equal(t, "note", r.Muted("note"))
}

func TestRenderer_Table(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)
		r.Table([]string{"Name", "Lines"}, [][]string{{"Normal", "1, 3"}})

		s := out.String()
		assert.Contains(t, s, "Normal")
		assert.Contains(t, s, "1, 3")
		assert.Contains(t, s, "┌")
	})

	t.Run("markdown", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeMarkdown)
		r.Table([]string{"Name", "Lines"}, [][]string{{"Normal", "1, 3"}})

		s := out.String()
		assert.Contains(t, s, "| Normal | 1, 3 |")
		assert.NotContains(t, s, "┌")
	})
}

func TestRenderer_Structured(t *testing.T) {
	payload := map[string]any{"ok": false, "name": "Normal"}

	t.Run("json", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeJSON)
		handled, err := r.Structured(payload)
		require.NoError(t, err)
		assert.True(t, handled)

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "Normal", got["name"])
	})

	t.Run("yaml", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeYAML)
		handled, err := r.Structured(payload)
		require.NoError(t, err)
		assert.True(t, handled)

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, false, got["ok"])
	})

	t.Run("text is not structured", func(t *testing.T) {
		out := &bytes.Buffer{}
		r := NewRendererWithTTY(out, &bytes.Buffer{}, true, ModeText)
		handled, err := r.Structured(payload)
		require.NoError(t, err)
		assert.False(t, handled)
		assert.Empty(t, out.String())
	})
}

func TestMarkdownHelpers(t *testing.T) {
	assert.Equal(t, "## Results", FormatHeader(2, "Results"))
	assert.Equal(t, "# Clamp", FormatHeader(0, "Clamp"))
	assert.Equal(t, "###### Deep", FormatHeader(9, "Deep"))
	assert.Equal(t, "```vim\nhi Normal\n```", FormatCodeBlock("vim", "hi Normal\n"))
	assert.Equal(t, "`call-hi`", FormatInlineCode("call-hi"))
	assert.Equal(t, "- a\n- b", FormatList([]string{"a", "b"}))
	assert.True(t, strings.HasPrefix(FormatList([]string{"x"}), "- "))
}
