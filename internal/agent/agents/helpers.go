package agents

import (
	"fmt"
	"sort"
	"strings"
)

// stateContext renders accumulated pipeline data as a compact text block
// for inclusion in an agent prompt. Keys are sorted so prompts are stable.
func stateContext(state map[string]interface{}) string {
	if len(state) == 0 {
		return ""
	}

	keys := make([]string, 0, len(state))
	for k := range state {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("Context from earlier pipeline steps:\n")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("- %s: %v\n", k, state[k]))
	}
	return sb.String()
}

// stringParam reads a string parameter with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok && v != "" {
		return v
	}
	return def
}

// boolParam reads a bool parameter.
func boolParam(params map[string]interface{}, key string) bool {
	v, _ := params[key].(bool)
	return v
}

// requestText extracts the original user request from accumulated state.
func requestText(state map[string]interface{}) string {
	if v, ok := state["request"].(string); ok {
		return v
	}
	return ""
}
