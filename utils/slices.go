package utils

func Filter[T any](a []T, test func(T) bool) []T {
	b := a[:0]

	for _, x := range a {
		if test(x) {
			b = append(b, x)
		}
	}

	return b
}

func Flatten[T any](a [][]T) []T {
	res := []T{}

	for _, sl := range a {
		for _, el := range sl {
			res = append(res, el)
		}
	}

	return res
}

// Uniq removes duplicates while preserving the first-seen order.
func Uniq[T comparable](a []T) []T {
	seen := make(map[T]bool, len(a))
	res := a[:0]

	for _, x := range a {
		if !seen[x] {
			seen[x] = true
			res = append(res, x)
		}
	}

	return res
}
