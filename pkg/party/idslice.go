package party

import "sort"

type IDSlice []ID

func (ids IDSlice) Len() int           { return len(ids) }
func (ids IDSlice) Less(i, j int) bool { return ids[i] < ids[j] }
func (ids IDSlice) Swap(i, j int)      { ids[i], ids[j] = ids[j], ids[i] }

// Sort is a convenience method: x.Sort() calls Sort(x).
func (ids IDSlice) Sort() { sort.Sort(ids) }

// Sorted returns true if ids is sorted and free of duplicates.
func (ids IDSlice) Sorted() bool {
	for i := range ids {
		if i > 0 && ids[i-1] >= ids[i] {
			return false
		}
	}
	return true
}

// Contains returns true if ids contains id.
// Assumes that ids is sorted.
func (ids IDSlice) Contains(id ID) bool {
	_, ok := ids.Search(id)
	return ok
}

// GetIndex returns the index of id in ids, or -1 if absent.
// Assumes that ids is sorted.
func (ids IDSlice) GetIndex(id ID) int {
	if idx, ok := ids.Search(id); ok {
		return idx
	}
	return -1
}

// Search returns the position of id and whether it is present.
func (ids IDSlice) Search(id ID) (int, bool) {
	index := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	if index >= 0 && index < len(ids) && ids[index] == id {
		return index, true
	}
	return 0, false
}

func (ids IDSlice) Copy() IDSlice {
	a := make(IDSlice, len(ids))
	copy(a, ids)
	a.Sort()
	return a
}

// RangeIDs returns the canonical execution set {0, …, n−1}.
func RangeIDs(n int) IDSlice {
	ids := make(IDSlice, n)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
