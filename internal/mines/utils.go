package mines

func iif[T any](c bool, t T, f T) T {
	if c {
		return t
	} else {
		return f
	}
}
