package nbt

// Compound payloads are ordered association lists: keys are unique and
// case-sensitive, and iteration yields entries in the order of each key's
// most recent write, which after a parse is their wire order. Lookups scan
// linearly; compounds hold a handful of entries in practice, so a map would
// cost more than it saves.

// mustCompound panics unless the tag is a compound. op names the accessor
// for the panic message.
func (t *Tag) mustCompound(op string) {
	if t.Type() != TagCompound {
		panic("nbt: " + op + " of " + t.Type().String() + " tag")
	}
}

// Get returns the child stored under key, or nil when absent. It panics
// when the tag is not a Compound.
func (t *Tag) Get(key string) *Tag {
	t.mustCompound("child read")
	for _, e := range t.entries {
		if e.key == key {
			return e.value
		}
	}
	return nil
}

// Set binds child under key, appending at the tail. Writing a key that
// already exists unlinks the old entry first, so the key moves to the tail
// and the list keeps its length. It panics when the tag is not a Compound
// or child is nil.
func (t *Tag) Set(key string, child *Tag) {
	t.mustCompound("child write")
	if child == nil {
		panic("nbt: nil child in compound write")
	}
	t.Delete(key)
	t.entries = append(t.entries, entry{key: key, value: child})
}

// Delete unlinks the child stored under key, preserving the order of the
// remaining entries. Deleting an absent key is a no-op. It panics when the
// tag is not a Compound.
func (t *Tag) Delete(key string) {
	t.mustCompound("child delete")
	for i := range t.entries {
		if t.entries[i].key == key {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of children of a Compound and 0 for every other
// kind.
func (t *Tag) Len() int {
	if t.Type() != TagCompound {
		return 0
	}
	return len(t.entries)
}

// CompoundIterator walks a compound's entries in storage order. Mutating
// the compound during iteration is undefined; a fresh iterator restarts
// from the beginning.
type CompoundIterator struct {
	entries []entry
	i       int
}

// Iterator returns an iterator positioned before the first entry. It panics
// when the tag is not a Compound.
//
//	it := tag.Iterator()
//	for it.Next() {
//		fmt.Println(it.Key(), it.Value().Type())
//	}
func (t *Tag) Iterator() *CompoundIterator {
	t.mustCompound("iteration")
	return &CompoundIterator{entries: t.entries, i: -1}
}

// Next advances to the next entry, reporting false once the entries are
// exhausted.
func (it *CompoundIterator) Next() bool {
	if it.i+1 >= len(it.entries) {
		return false
	}
	it.i++
	return true
}

// Key returns the current entry's key. Valid only after a true Next.
func (it *CompoundIterator) Key() string { return it.entries[it.i].key }

// Value returns the current entry's child tag. Valid only after a true
// Next.
func (it *CompoundIterator) Value() *Tag { return it.entries[it.i].value }
