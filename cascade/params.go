package cascade

import (
	"fmt"
	"strconv"
)

// intParam reads a non-negative integer simulator parameter.
func intParam(params map[string]string, key string, def int) (int, error) {
	raw, ok := params[key]
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("param %s=%q: want non-negative integer", key, raw)
	}

	return v, nil
}
