package util

// Extend copies every key of source onto target and returns target.
// target is modified in place. A nil source returns target and a nil
// target returns source.
func Extend(target, source map[string]any) map[string]any {
	if source == nil {
		return target
	}
	if target == nil {
		return source
	}
	for k, v := range source {
		target[k] = v
	}
	return target
}

// DeepExtend is Extend that merges nested map[string]any values instead of
// replacing them, so nested keys missing from source are kept. Maps taken
// from source are copied so target never shares them.
func DeepExtend(target, source map[string]any) map[string]any {
	if source == nil {
		return target
	}
	if target == nil {
		return source
	}
	for k, v := range source {
		src, srcIsMap := v.(map[string]any)
		if !srcIsMap {
			target[k] = v
			continue
		}
		if dst, ok := target[k].(map[string]any); ok && dst != nil {
			target[k] = DeepExtend(dst, src)
			continue
		}
		target[k] = cloneMap(src)
	}
	return target
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}
