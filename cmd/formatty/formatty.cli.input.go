package main

import (
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const yamlTimestampTag = "!!timestamp"

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, newCLIError(ExitCodeInputError, ErrMsgReadStdinFailed, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newCLIError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}
	return data, nil
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	var err error
	if path == FlagDefaultOutput {
		_, err = stdout.Write(data)
	} else {
		err = os.WriteFile(path, data, FilePermissions)
	}
	if err != nil {
		return newCLIError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// templateSource returns the template text and the arguments left after it.
// With a template file every argument is a value; otherwise the first one is
// the template, and "-" reads it from stdin.
func templateSource(templateFile string, args []string, stdin io.Reader) (string, []string, error) {
	if templateFile != "" {
		data, err := readInput(templateFile, stdin)
		if err != nil {
			return "", nil, err
		}
		return string(data), args, nil
	}

	if len(args) == 0 {
		return "", nil, newCLIError(ExitCodeUsageError, ErrMsgMissingTemplate, nil)
	}
	if args[0] == InputSourceStdin {
		data, err := readInput(InputSourceStdin, stdin)
		if err != nil {
			return "", nil, err
		}
		return string(data), args[1:], nil
	}
	return args[0], args[1:], nil
}

// parseArgs converts command line values to typed arguments
func parseArgs(raw []string) []any {
	values := make([]any, 0, len(raw))
	for _, r := range raw {
		values = append(values, parseArg(r))
	}
	return values
}

// parseArg reads raw as a YAML value. Integers, floats, booleans, nulls,
// flow sequences and mappings keep their YAML type and timestamps become
// time.Time. Anything YAML cannot parse stays the raw string.
func parseArg(raw string) any {
	if raw == "" {
		return raw
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil || len(node.Content) == 0 {
		return raw
	}

	doc := node.Content[0]
	if doc.Kind == yaml.ScalarNode && doc.ShortTag() == yamlTimestampTag {
		var t time.Time
		if err := doc.Decode(&t); err == nil {
			return t
		}
	}

	var v any
	if err := doc.Decode(&v); err != nil {
		return raw
	}
	return v
}

// loadArgsFile reads arguments from a YAML or JSON document. A sequence
// gives positional arguments; any other value is a single argument, so a
// mapping serves named fields.
func loadArgsFile(path string, stdin io.Reader) ([]any, error) {
	if path == "" {
		return nil, nil
	}

	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, newCLIError(ExitCodeInputError, ErrMsgInvalidArgsFile, err)
	}

	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	default:
		return []any{v}, nil
	}
}
