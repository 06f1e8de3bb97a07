package types

import (
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable, ordered list of types.
type TypeList struct {
	l *immutable.List
}

func NewTypeList() TypeList { return TypeList{emptyList} }

func SingletonTypeList(t Type) TypeList {
	return TypeList{emptyList.Append(t)}
}

func (l TypeList) list() *immutable.List {
	if l.l == nil {
		return emptyList
	}
	return l.l
}

func (l TypeList) Len() int                      { return l.list().Len() }
func (l TypeList) Get(i int) Type                { return l.list().Get(i).(Type) }
func (l TypeList) Slice(start, end int) TypeList { return TypeList{l.list().Slice(start, end)} }

// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, Type) bool) {
	iter := l.list().Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Type)) {
			return
		}
	}
}

// Map returns a new list containing f applied to each type in l.
func (l TypeList) Map(f func(Type) Type) TypeList {
	b := NewTypeListBuilder()
	l.Range(func(_ int, t Type) bool {
		b.Append(f(t))
		return true
	})
	return b.Build()
}

// Types copies the list into a slice.
func (l TypeList) Types() []Type {
	ts := make([]Type, 0, l.Len())
	l.Range(func(_ int, t Type) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}

// Builder returns a builder which appends to a copy of l. The list itself is not modified.
func (l TypeList) Builder() *TypeListBuilder {
	return &TypeListBuilder{l.list()}
}

// TypeListBuilder accumulates types into a new list. Lists returned by Build are not
// affected by later updates.
type TypeListBuilder struct {
	l *immutable.List
}

func NewTypeListBuilder() *TypeListBuilder {
	return &TypeListBuilder{emptyList}
}

func (b *TypeListBuilder) Len() int          { return b.l.Len() }
func (b *TypeListBuilder) Append(t Type)     { b.l = b.l.Append(t) }
func (b *TypeListBuilder) Set(i int, t Type) { b.l = b.l.Set(i, t) }
func (b *TypeListBuilder) Build() TypeList   { return TypeList{b.l} }
