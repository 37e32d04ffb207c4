package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iiroan/folio/internal/prefs"
)

func parseKeyValuePairs(items []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key, value, err := splitKeyValue(trimmed)
		if err != nil {
			return nil, err
		}
		result[key] = value
	}
	return result, nil
}

func formatKeyValuePairs(values map[string]string) string {
	if len(values) == 0 {
		return ""
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, values[key]))
	}
	return strings.Join(pairs, ", ")
}

func splitKeyValue(value string) (string, string, error) {
	parts := strings.SplitN(value, "=", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid format %q (expected KEY=VALUE)", value)
	}
	key := strings.TrimSpace(parts[0])
	val := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmt.Errorf("invalid format %q (empty key)", value)
	}
	return key, val, nil
}

// applyAssignments sets each named preference on current. Keys may be the
// preference names or the configured storage keys.
func applyAssignments(current prefs.Preferences, values map[string]string, keys prefs.Keys) (prefs.Preferences, error) {
	next := current
	for key, value := range values {
		switch strings.ToLower(key) {
		case "appearance", "theme", keys.Appearance:
			a, err := prefs.ParseAppearance(value)
			if err != nil {
				return current, err
			}
			next.Appearance = a
		case "display", "mode", keys.Display:
			d, err := prefs.ParseDisplayMode(value)
			if err != nil {
				return current, err
			}
			next.Display = d
		default:
			return current, fmt.Errorf("unknown preference %q (expected appearance or display)", key)
		}
	}
	return next, nil
}

// snapshotValues lists the preferences as storage key/value pairs.
func snapshotValues(s prefs.Snapshot, keys prefs.Keys) map[string]string {
	return map[string]string{
		keys.Appearance: string(s.Appearance),
		keys.Display:    string(s.Display),
	}
}
