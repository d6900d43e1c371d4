package config

import (
	"os"
	"regexp"
)

var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ExpandEnv expands ${VAR} references in YAML content from the process
// environment. Only the braced form is recognized; bare $ characters are
// preserved so regex patterns, passwords, and shell snippets survive
// untouched. Missing variables expand to the empty string; validation
// catches required fields left empty.
func ExpandEnv(data []byte) []byte {
	return envRefPattern.ReplaceAllFunc(data, func(ref []byte) []byte {
		name := envRefPattern.FindSubmatch(ref)[1]
		return []byte(os.Getenv(string(name)))
	})
}
