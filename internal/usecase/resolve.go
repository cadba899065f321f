package usecase

// firstNonEmpty implements the upsert field precedence: incoming form value,
// then the stored value, then a default. The first non-empty string wins.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveBool picks the incoming value when supplied, otherwise the stored
// one, otherwise the default.
func resolveBool(incoming, existing *bool, fallback bool) bool {
	if incoming != nil {
		return *incoming
	}
	if existing != nil {
		return *existing
	}
	return fallback
}
