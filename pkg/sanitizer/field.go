package sanitizer

// unsafeFieldChars are stripped from every form field value.
const unsafeFieldChars = "<>"

var cleanField = Compose(
	func(s string) string { return RemoveChars(s, unsafeFieldChars) },
	Trim,
)

// Field sanitizes a raw form value: angle brackets are removed and the result
// is trimmed. Non-string input yields an empty string.
//
// Brackets are removed before trimming so that input such as "< a" does not
// leave a leading space behind, which keeps Field idempotent.
func Field(raw any) string {
	switch v := raw.(type) {
	case string:
		return cleanField(v)
	case []byte:
		return cleanField(string(v))
	case []string:
		// url.Values style input: first value wins.
		if len(v) == 0 {
			return ""
		}
		return cleanField(v[0])
	default:
		return ""
	}
}

// Fields sanitizes every value of the given map into a new map.
func Fields(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = Field(v)
	}
	return out
}
