package model

// coalesce returns patch when the field was supplied, otherwise existing.
func coalesce[T any](patch, existing *T) *T {
	if patch != nil {
		return patch
	}
	return existing
}

func ptr[T any](v T) *T {
	return &v
}

// firstNonNil returns the first supplied value.
func firstNonNil[T any](vals ...*T) *T {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
