// Package enumtab provides bidirectional tag<->wire-string tables for
// closed tag sets. A table is built once from an ordered tag list and a
// serializer, and afterwards supports lookup in both directions.
package enumtab

import "fmt"

// Table maps a finite tag set to wire strings and back.
// Both directions are validated for uniqueness at construction.
type Table[T comparable] struct {
	tags     []T
	toWire   map[T]string
	fromWire map[string]T
}

// New builds a table from an ordered tag list and a serializer.
// It returns an error if two tags are equal or two tags serialize to the
// same wire string.
func New[T comparable](tags []T, serialize func(T) string) (*Table[T], error) {
	t := &Table[T]{
		tags:     make([]T, len(tags)),
		toWire:   make(map[T]string, len(tags)),
		fromWire: make(map[string]T, len(tags)),
	}
	copy(t.tags, tags)
	for _, tag := range tags {
		wire := serialize(tag)
		if _, ok := t.toWire[tag]; ok {
			return nil, fmt.Errorf("duplicate tag: %v", tag)
		}
		if prev, ok := t.fromWire[wire]; ok {
			return nil, fmt.Errorf("wire string %q used by both %v and %v", wire, prev, tag)
		}
		t.toWire[tag] = wire
		t.fromWire[wire] = tag
	}
	return t, nil
}

// MustNew is New, panicking on error. Intended for package-level tables
// over hardcoded tag lists.
func MustNew[T comparable](tags []T, serialize func(T) string) *Table[T] {
	t, err := New(tags, serialize)
	if err != nil {
		panic(err)
	}
	return t
}

// Wire returns the wire string for tag.
func (t *Table[T]) Wire(tag T) (string, bool) {
	wire, ok := t.toWire[tag]
	return wire, ok
}

// Tag returns the tag for a wire string.
func (t *Table[T]) Tag(wire string) (T, bool) {
	tag, ok := t.fromWire[wire]
	return tag, ok
}

// Tags returns the tags in construction order.
func (t *Table[T]) Tags() []T {
	tags := make([]T, len(t.tags))
	copy(tags, t.tags)
	return tags
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	return len(t.tags)
}
