package ledger

// Move returns a copy of list with the element at from re-inserted at to.
// Out-of-range indices return the list unchanged. The persisted display
// order of each element is its new 1-based index; writing those positions
// back is the storage layer's job and must happen in a single transaction.
func Move[T any](list []T, from, to int) []T {
	out := make([]T, len(list))
	copy(out, list)
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return out
	}

	moved := list[from]
	rest := make([]T, 0, len(list)-1)
	rest = append(rest, list[:from]...)
	rest = append(rest, list[from+1:]...)

	out = out[:0]
	out = append(out, rest[:to]...)
	out = append(out, moved)
	out = append(out, rest[to:]...)
	return out
}
