package content

// The reducers below never modify their input and never produce two
// entries with the same id.

// reduceInsert places item in the list. An entry already carrying the id
// is replaced in place.
func reduceInsert[T any](items []T, item T, id func(T) string, placement Placement) []T {
	key := id(item)
	out := make([]T, 0, len(items)+1)
	replaced := false
	for _, it := range items {
		if id(it) == key {
			if !replaced {
				out = append(out, item)
				replaced = true
			}
			continue
		}
		out = append(out, it)
	}
	if replaced {
		return out
	}
	if placement == Prepend {
		return append([]T{item}, out...)
	}
	return append(out, item)
}

// reduceUpdate replaces the entry with item's id. A missing entry is not
// re-added, so an update that lands after a delete is dropped.
func reduceUpdate[T any](items []T, item T, id func(T) string) []T {
	key := id(item)
	out := make([]T, 0, len(items))
	seen := false
	for _, it := range items {
		if id(it) != key {
			out = append(out, it)
			continue
		}
		if !seen {
			out = append(out, item)
			seen = true
		}
	}
	return out
}

func reduceDelete[T any](items []T, key string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if id(it) != key {
			out = append(out, it)
		}
	}
	return out
}

// dedupe keeps the first entry for every id
func dedupe[T any](items []T, id func(T) string) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		key := id(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}

func find[T any](items []T, key string, id func(T) string) (T, bool) {
	for _, it := range items {
		if id(it) == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}
