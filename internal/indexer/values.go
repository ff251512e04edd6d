package indexer

// Structured property values arrive as loosely typed trees (JSON-shaped
// map[string]any payloads), so numeric ids can surface as int, int64, or
// float64 depending on the decoder that produced the snapshot.

func stringValue(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return s
}

func boolValue(value any) bool {
	b, ok := value.(bool)
	if !ok {
		return false
	}
	return b
}

func int64Value(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

func int64List(value any) []int64 {
	switch list := value.(type) {
	case []int64:
		if len(list) == 0 {
			return nil
		}
		out := make([]int64, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]int64, 0, len(list))
		for _, item := range list {
			if n, ok := int64Value(item); ok {
				out = append(out, n)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

func stringList(value any) []string {
	switch list := value.(type) {
	case []string:
		if len(list) == 0 {
			return nil
		}
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

// firstMediaID extracts the first id from a media property value shaped as
// {"ids": [...]}. First-wins: additional ids are ignored. An empty or missing
// ids list yields nil.
func firstMediaID(value any) *int64 {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	ids := int64List(raw["ids"])
	if len(ids) == 0 {
		return nil
	}
	first := ids[0]
	return &first
}
