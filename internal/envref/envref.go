// Package envref resolves environment references in a decoded agent
// document at deploy time. A reference is a string value of the form
// =Env.NAME; it is replaced by the value of NAME from the supplied
// lookup. Resolution happens in memory only and resolved values are
// never written back to disk or logged.
package envref

import (
	"fmt"

	"github.com/agentdeploy-dev/agentdeploy/internal/powerfx"
)

// LookupFunc reports the value of an environment variable and whether it
// is set, matching the signature of os.LookupEnv.
type LookupFunc func(name string) (string, bool)

// UnsetError is returned when a referenced variable is absent from the
// environment. An absent variable is an error, never an empty string.
type UnsetError struct {
	Path string
	Var  string
}

func (e *UnsetError) Error() string {
	return fmt.Sprintf("%s: environment variable %s is not set", e.Path, e.Var)
}

// Resolve returns a copy of doc with every =Env.NAME string replaced by
// the variable's value. doc is a YAML-decoded value (maps, slices and
// scalars) and is not mutated.
func Resolve(doc any, lookup LookupFunc) (any, error) {
	return resolve(doc, "", lookup)
}

func resolve(v any, path string, lookup LookupFunc) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			resolved, err := resolve(child, joinPath(path, k), lookup)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			resolved, err := resolve(child, fmt.Sprintf("%s[%d]", path, i), lookup)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	case string:
		name, ok := powerfx.IsEnvRef(val)
		if !ok {
			return val, nil
		}
		value, set := lookup(name)
		if !set {
			return nil, &UnsetError{Path: path, Var: name}
		}
		return value, nil
	default:
		return v, nil
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
