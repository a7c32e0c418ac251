// Package powerfx provides a superficial syntax check for embedded
// expression strings. The expression language itself is evaluated by an
// external runtime; this package only catches the obvious authoring
// mistakes a validator can flag without a full parser.
package powerfx

import (
	"fmt"
	"regexp"
	"strings"
)

// Expressions are marked by a leading "=" on the string value.
const expressionPrefix = "="

var envRefPattern = regexp.MustCompile(`\bEnv\.([A-Za-z_][A-Za-z0-9_]*)`)

// IsExpression reports whether a YAML string value is an expression.
func IsExpression(s string) bool {
	return strings.HasPrefix(s, expressionPrefix)
}

// Body returns the expression text without the leading marker.
func Body(s string) string {
	return strings.TrimPrefix(s, expressionPrefix)
}

// EnvRefs returns the names of environment references (Env.NAME) that
// appear anywhere in the expression, in order of appearance.
func EnvRefs(s string) []string {
	var names []string
	for _, m := range envRefPattern.FindAllStringSubmatch(s, -1) {
		names = append(names, m[1])
	}
	return names
}

// IsEnvRef reports whether the whole string is a bare environment
// reference of the form =Env.NAME, returning the variable name.
func IsEnvRef(s string) (string, bool) {
	if !IsExpression(s) {
		return "", false
	}
	body := strings.TrimSpace(Body(s))
	m := envRefPattern.FindStringSubmatch(body)
	if m == nil || body != m[0] {
		return "", false
	}
	return m[1], true
}

// Lint checks an expression for superficial syntactic validity: a
// non-empty body, closed string literals, and balanced (), [] and {}
// outside string literals. It does not evaluate the expression.
func Lint(s string) error {
	body := strings.TrimSpace(Body(s))
	if body == "" {
		return fmt.Errorf("expression is empty")
	}

	var stack []rune
	inString := false
	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if inString {
			if r == '"' {
				// Doubled quotes escape a quote inside a literal.
				if i+1 < len(runes) && runes[i+1] == '"' {
					i++
					continue
				}
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 {
				return fmt.Errorf("unexpected %q", r)
			}
			open := stack[len(stack)-1]
			if closerFor(open) != r {
				return fmt.Errorf("mismatched %q, expected %q", r, closerFor(open))
			}
			stack = stack[:len(stack)-1]
		}
	}
	if inString {
		return fmt.Errorf("unterminated string literal")
	}
	if len(stack) > 0 {
		return fmt.Errorf("unclosed %q", stack[len(stack)-1])
	}
	return nil
}

func closerFor(open rune) rune {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}
