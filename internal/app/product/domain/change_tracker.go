package domain

import "sort"

// ChangeTracker records which fields differ between two versions of a
// product, together with their new values. The update event carries it so
// the journal shows what an edit actually touched.
type ChangeTracker struct {
	dirty map[string]interface{}
}

// NewChangeTracker creates an empty ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirty: make(map[string]interface{}),
	}
}

// MarkDirty marks a field as modified and remembers its new value.
func (ct *ChangeTracker) MarkDirty(field string, value interface{}) {
	ct.dirty[field] = value
}

// Dirty checks if a specific field has been marked dirty.
func (ct *ChangeTracker) Dirty(field string) bool {
	_, ok := ct.dirty[field]
	return ok
}

// HasChanges returns true if any fields have been marked dirty.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirty) > 0
}

// DirtyFields returns the modified field names in lexical order.
func (ct *ChangeTracker) DirtyFields() []string {
	fields := make([]string, 0, len(ct.dirty))
	for field := range ct.dirty {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Changes returns a copy of the field -> new value map.
func (ct *ChangeTracker) Changes() map[string]interface{} {
	out := make(map[string]interface{}, len(ct.dirty))
	for k, v := range ct.dirty {
		out[k] = v
	}
	return out
}

// Count returns the number of dirty fields.
func (ct *ChangeTracker) Count() int {
	return len(ct.dirty)
}
