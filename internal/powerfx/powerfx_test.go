package powerfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExpression(t *testing.T) {
	assert.True(t, IsExpression("=Env.FOO"))
	assert.True(t, IsExpression("=Concat(a, b)"))
	assert.False(t, IsExpression("plain string"))
	assert.False(t, IsExpression(""))
}

func TestIsEnvRef(t *testing.T) {
	tests := []struct {
		in       string
		wantName string
		wantOK   bool
	}{
		{"=Env.FOO", "FOO", true},
		{"=Env.MY_VAR_2", "MY_VAR_2", true},
		{"= Env.FOO ", "FOO", true},
		{"=Concat(Env.FOO, \"x\")", "", false},
		{"Env.FOO", "", false},
		{"=Env.", "", false},
		{"plain", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, ok := IsEnvRef(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestEnvRefs(t *testing.T) {
	refs := EnvRefs(`=Concat(Env.FIRST, Env.SECOND, "Env.NOT_A_REF_BUT_MATCHES")`)
	assert.Equal(t, []string{"FIRST", "SECOND", "NOT_A_REF_BUT_MATCHES"}, refs)

	assert.Nil(t, EnvRefs("=Upper(name)"))
}

func TestLint(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"bare env ref", "=Env.FOO", ""},
		{"balanced call", `=Concat(Env.A, "b")`, ""},
		{"nested brackets", `=First(Filter(items, {x: [1, 2]}))`, ""},
		{"brackets inside string", `=Text("(((")`, ""},
		{"escaped quote", `=Text("say ""hi""")`, ""},
		{"empty body", "=", "expression is empty"},
		{"whitespace body", "=   ", "expression is empty"},
		{"unclosed paren", "=Concat(a, b", `unclosed '('`},
		{"unexpected closer", "=a)", `unexpected ')'`},
		{"mismatched pair", "=f(a]", `mismatched ']'`},
		{"unterminated string", `=Text("oops)`, "unterminated string literal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Lint(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
