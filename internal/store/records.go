package store

// record is anything addressable by its string id.
type record interface {
	RecordID() string
}

func indexByID[T record](items []T, id string) int {
	for i, item := range items {
		if item.RecordID() == id {
			return i
		}
	}
	return -1
}

func removeByID[T record](items []T, id string) ([]T, bool) {
	kept := make([]T, 0, len(items))
	removed := false
	for _, item := range items {
		if item.RecordID() == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	return kept, removed
}
