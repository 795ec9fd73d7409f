package store

// deepMerge merges src into dst in place. Nested maps merge key by key;
// every other value, arrays included, replaces wholesale. Keys absent from
// src keep their dst value, so a partial patch never clears sibling fields.
// An explicit false or zero in src still wins, which is why this is not
// delegated to a generic struct merger.
func deepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, sv := range src {
		if sm, ok := sv.(map[string]any); ok {
			if dm, ok := dst[key].(map[string]any); ok {
				dst[key] = deepMerge(dm, sm)
				continue
			}
		}
		dst[key] = sv
	}
	return dst
}
