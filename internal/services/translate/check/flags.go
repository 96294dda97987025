package check

import (
	"fmt"
	"strconv"
	"strings"
)

// IgnorePrefix prefixes flags that silence one check for a source string.
const IgnorePrefix = "ignore-"

const maxLengthFlag = "max-length"

var plainFlags = map[string]struct{}{
	"python-format": {},
	"c-format":      {},
	"php-format":    {},
	"rst-text":      {},
	"md-text":       {},
	"safe-html":     {},
	"url":           {},
}

// FlagError describes one rejected flag.
type FlagError struct {
	Flag   string
	Reason string
}

func (e FlagError) Error() string {
	return fmt.Sprintf("invalid check flag %q: %s", e.Flag, e.Reason)
}

// ParseFlags validates a comma-separated flag list and returns it normalized:
// trimmed, empty entries dropped, joined by ",". An empty input is valid.
func ParseFlags(raw string) (string, error) {
	parts := strings.Split(raw, ",")
	flags := make([]string, 0, len(parts))
	for _, part := range parts {
		flag := strings.TrimSpace(part)
		if flag == "" {
			continue
		}
		if err := validateFlag(flag); err != nil {
			return "", err
		}
		flags = append(flags, flag)
	}
	return strings.Join(flags, ","), nil
}

func validateFlag(flag string) error {
	if _, ok := plainFlags[flag]; ok {
		return nil
	}
	if name, ok := strings.CutPrefix(flag, IgnorePrefix); ok {
		if _, known := Lookup(name); !known {
			return FlagError{Flag: flag, Reason: "unknown check"}
		}
		return nil
	}
	if value, ok := strings.CutPrefix(flag, maxLengthFlag+":"); ok {
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return FlagError{Flag: flag, Reason: "length must be a positive integer"}
		}
		return nil
	}
	return FlagError{Flag: flag, Reason: "unknown flag"}
}
