package submission

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// fieldDiff renders one human-readable clause per patch key whose value
// differs from the current fields. Keys absent from the patch are ignored;
// clause order is the sorted key order so history entries are stable.
func fieldDiff(current map[string]any, patch map[string]any) string {
	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var clauses []string
	for _, k := range keys {
		oldVal, newVal := current[k], patch[k]
		if reflect.DeepEqual(oldVal, newVal) {
			continue
		}
		clauses = append(clauses, fmt.Sprintf(
			"Changed %s from %s to %s",
			k, formatValue(oldVal), formatValue(newVal),
		))
	}

	if len(clauses) == 0 {
		return "No fields changed"
	}
	return strings.Join(clauses, ", ")
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
