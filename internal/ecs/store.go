package ecs

import (
	"fmt"
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
	"github.com/yohamta/donburi/filter"
)

// Entities returns, in ascending id order, every entity that has all the given
// components. The result is a snapshot: callers may add and remove components
// while walking it.
func Entities(w donburi.World, cs ...component.IComponentType) []donburi.Entity {
	out := make([]donburi.Entity, 0, 16)
	donburi.NewQuery(filter.Contains(cs...)).Each(w, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	slices.Sort(out)
	return out
}

// Has reports whether e is alive and has component c.
func Has(w donburi.World, e donburi.Entity, c component.IComponentType) bool {
	return w.Valid(e) && w.Entry(e).HasComponent(c)
}

// Get returns e's component of type c. The pointer is only valid until the
// entity's component set changes.
func Get[T any](w donburi.World, e donburi.Entity, c *donburi.ComponentType[T]) (*T, bool) {
	if !Has(w, e, c) {
		return nil, false
	}
	return c.Get(w.Entry(e)), true
}

// MustGet is Get for components the pipeline guarantees to exist. A missing
// component is a programming error, so it panics.
func MustGet[T any](w donburi.World, e donburi.Entity, c *donburi.ComponentType[T]) *T {
	v, ok := Get(w, e, c)
	if !ok {
		panic(fmt.Sprintf("ecs: entity %v has no %T component", e, *new(T)))
	}
	return v
}

// Set attaches c to e, or overwrites it if already present.
func Set[T any](w donburi.World, e donburi.Entity, c *donburi.ComponentType[T], value T) {
	entry := w.Entry(e)
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
	c.SetValue(entry, value)
}

// Tag attaches a data-less marker component to e.
func Tag(w donburi.World, e donburi.Entity, c component.IComponentType) {
	entry := w.Entry(e)
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
}

// Remove detaches c from e if present.
func Remove(w donburi.World, e donburi.Entity, c component.IComponentType) {
	if Has(w, e, c) {
		w.Entry(e).RemoveComponent(c)
	}
}

// NameOf returns e's display name, or fallback when it has none.
func NameOf(w donburi.World, e donburi.Entity, fallback string) string {
	if n, ok := Get(w, e, NameComponent); ok {
		return n.Name
	}
	return fallback
}
