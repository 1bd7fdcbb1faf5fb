// Package argv converts command-line option arguments into the typed
// option mapping consumed by the engine.
package argv

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chorelabs/chore/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseOptions builds an option mapping from the arguments following a task
// name. Two shapes are accepted:
//
//   - a single argument naming a YAML document ("@defaults.yaml" or a bare
//     *.yaml/*.yml path), whose top-level mapping becomes the whole options
//     value, or
//   - key/value pairs, each value coerced to a typed option.
func ParseOptions(args []string) (domain.Options, error) {
	if len(args) == 0 {
		return domain.Options{}, nil
	}

	if len(args) == 1 && isMappingRef(args[0]) {
		return loadMapping(strings.TrimPrefix(args[0], "@"))
	}

	if len(args)%2 != 0 {
		return nil, zerr.With(zerr.New("options must be key/value pairs"), "dangling", args[len(args)-1])
	}

	opts := make(domain.Options, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key := strings.TrimLeft(args[i], "-")
		if key == "" {
			return nil, zerr.With(zerr.New("empty option key"), "position", i)
		}
		value, err := coerce(args[i+1])
		if err != nil {
			return nil, err
		}
		opts[key] = value
	}
	return opts, nil
}

// coerce turns a raw argument into a typed option value: booleans, null,
// integer and float literals, @file YAML references. Anything else stays a
// string.
func coerce(raw string) (any, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null", "nil":
		return nil, nil
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, nil
	}
	if strings.HasPrefix(raw, "@") {
		return loadValue(strings.TrimPrefix(raw, "@"))
	}
	return raw, nil
}

func isMappingRef(arg string) bool {
	return strings.HasPrefix(arg, "@") ||
		strings.HasSuffix(arg, ".yaml") ||
		strings.HasSuffix(arg, ".yml")
}

func loadValue(path string) (any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read option reference")
	}
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, zerr.Wrap(err, "failed to parse option reference")
	}
	return value, nil
}

func loadMapping(path string) (domain.Options, error) {
	value, err := loadValue(path)
	if err != nil {
		return nil, err
	}
	mapping, ok := value.(map[string]any)
	if !ok {
		return nil, zerr.With(zerr.New("options document must be a mapping"), "path", path)
	}
	return domain.Options(mapping), nil
}
