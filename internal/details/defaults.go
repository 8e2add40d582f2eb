package details

// Default resolution for optional provider fields lives here so the
// fallback policy is visible in one place.

// fallbacks lists, per output field, the candidate source values in
// priority order; the first non-empty one wins.
type fallbacks []string

func (f fallbacks) resolve() string {
	for _, v := range f {
		if v != "" {
			return v
		}
	}
	return ""
}

// nonNil turns a nil slice into an empty one so encoders emit [].
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func intPtr(v int) *int { return &v }

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
