package ptr

// String returns a pointer to a copy of value
func String(value string) *string {
	return &value
}

func Float64(value float64) *float64 {
	return &value
}

func Bool(value bool) *bool {
	return &value
}

// StringOr dereferences p, or returns def when p is nil
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
