package profile

// walkValues traverses a JSON-like value tree depth-first and invokes visit on
// every leaf. Leaves are strings, numbers (float64 after JSON decoding), and
// bools; interior nodes are keyed maps and ordered lists. The traversal is
// independent of the concrete profile schema, so new profile fields are picked
// up without code changes.
func walkValues(v any, visit func(leaf any)) {
	switch node := v.(type) {
	case map[string]any:
		for _, value := range node {
			walkValues(value, visit)
		}
	case []any:
		for _, item := range node {
			walkValues(item, visit)
		}
	case nil:
		// absent field
	default:
		visit(node)
	}
}
