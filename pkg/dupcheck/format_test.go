package dupcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		pattern   string
		wantErr   string
		wantRegex string
	}{
		{name: "anchored", prefix: "hi ", pattern: `^hi (\w+)`, wantRegex: `^hi (\w+)`},
		{name: "anchor added", prefix: "hi ", pattern: `hi (\w+)`, wantRegex: `^(?:hi (\w+))`},
		{name: "empty prefix", prefix: "", pattern: `^hi (\w+)`, wantErr: "prefix is required"},
		{name: "empty pattern", prefix: "hi ", pattern: "", wantErr: "pattern is required"},
		{name: "no capture group", prefix: "hi ", pattern: `^hi \w+`, wantErr: "no capturing group"},
		{name: "invalid regexp", prefix: "hi ", pattern: `^hi (\w+`, wantErr: "invalid pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRule(tt.prefix, tt.pattern)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, r.Prefix)
			assert.Equal(t, tt.wantRegex, r.Pattern.String())
		})
	}
}

func TestMustRule_Panics(t *testing.T) {
	assert.Panics(t, func() { MustRule("hi ", `^hi`) })
}

func TestFormat_Match(t *testing.T) {
	f := NewFormat("generated", "", hiRule, exeHiRule)

	tests := []struct {
		line         string
		wantName     string
		wantSelected bool
		wantOK       bool
	}{
		{line: "hi Normal term=NONE", wantName: "Normal", wantSelected: true, wantOK: true},
		{line: "exe 'hi' 'Comment term=NONE' s:italic_attr", wantName: "Comment", wantSelected: true, wantOK: true},
		{line: "exe 'hi' Comment", wantSelected: true, wantOK: false},
		{line: "hi ! oops", wantSelected: true, wantOK: false},
		{line: "    hi Cursor term=NONE", wantSelected: false},
		{line: "highlight Normal", wantSelected: false},
		{line: "", wantSelected: false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			name, selected, ok := f.Match(tt.line)
			assert.Equal(t, tt.wantSelected, selected)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestFormat_Validate(t *testing.T) {
	assert.NoError(t, NewFormat("ok", "", hiRule).Validate())
	assert.Error(t, NewFormat("", "", hiRule).Validate())
	assert.Error(t, NewFormat("none", "").Validate())
	assert.Error(t, NewFormat("partial", "", Rule{Prefix: "hi "}).Validate())
}

func TestFormat_Info(t *testing.T) {
	f, ok := Lookup(FormatGenerated)
	require.True(t, ok)

	info := f.Info()
	assert.Equal(t, FormatGenerated, info.Name)
	assert.True(t, info.Builtin)
	require.Len(t, info.Rules, 2)
	assert.Equal(t, "hi ", info.Rules[0].Prefix)
	assert.Equal(t, `^exe 'hi' '(\w+)`, info.Rules[1].Pattern)
}

func TestMalformedPolicy(t *testing.T) {
	for _, name := range PolicyNames() {
		p, ok := ParseMalformedPolicy(name)
		require.True(t, ok, name)
		assert.Equal(t, name, p.String())

		var decoded MalformedPolicy
		require.NoError(t, decoded.UnmarshalText([]byte(name)))
		assert.Equal(t, p, decoded)
	}

	p, ok := ParseMalformedPolicy("")
	assert.True(t, ok)
	assert.Equal(t, MalformedError, p)

	_, ok = ParseMalformedPolicy("ignore")
	assert.False(t, ok)

	var decoded MalformedPolicy
	err := decoded.UnmarshalText([]byte("ignore"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error, skip, group")
}
