package hugo

// mergeParams deep-merges src into dst.
//   - Maps: merged recursively; nested maps from src are copied, never aliased
//   - Slices & scalars: replaced
//
// YAML-decoded user params may hold map[string]any at any depth, which is
// the only map type merged.
func mergeParams(dst, src map[string]any) {
	for k, v := range src {
		mv, ok := v.(map[string]any)
		if !ok {
			dst[k] = v
			continue
		}
		existing, ok := dst[k].(map[string]any)
		if !ok {
			existing = make(map[string]any, len(mv))
			dst[k] = existing
		}
		mergeParams(existing, mv)
	}
}
