package hashtable

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrExhausted means a probe visited more slots than the table holds without
// finding the key or an empty slot.
var ErrExhausted = errors.New("hash index exhausted")

// State of a slot.
type State uint8

const (
	Empty State = iota
	Active
	Tombstoned
)

type slot[V any] struct {
	key   string
	value V
	state State
}

// Options configures a Table.
type Options struct {
	// Capacity is the initial slot count.
	Capacity int
	// RehashCapacity is the slot count used by the first rehash.
	RehashCapacity int
	Hasher         Hasher
	// FoldCase lower-cases keys before hashing and comparing.
	FoldCase bool
	// Normalize, if set, rewrites keys before FoldCase is applied.
	Normalize func(string) string
	// OnRehash, if set, is called after every rehash with the old and new capacity.
	OnRehash func(from, to int)
}

// Table is an open-addressing hash table keyed by string.
type Table[V any] struct {
	slots    []slot[V]
	active   int
	target   int
	hash     Hasher
	fold     bool
	norm     func(string) string
	onRehash func(from, to int)
}

// New creates an empty table. A zero Capacity defaults to 11 and a missing
// Hasher to Polynomial(31, 1).
func New[V any](opts Options) *Table[V] {
	if opts.Capacity <= 0 {
		opts.Capacity = 11
	}
	if opts.Hasher == nil {
		opts.Hasher = Polynomial(31, 1)
	}
	return &Table[V]{
		slots:    make([]slot[V], opts.Capacity),
		target:   opts.RehashCapacity,
		hash:     opts.Hasher,
		fold:     opts.FoldCase,
		norm:     opts.Normalize,
		onRehash: opts.OnRehash,
	}
}

func (t *Table[V]) normalize(key string) string {
	if t.norm != nil {
		key = t.norm(key)
	}
	if t.fold {
		return strings.ToLower(key)
	}
	return key
}

// findPos walks the probe sequence for key and returns the first slot that
// is empty or already carries key, whatever its state.
func (t *Table[V]) findPos(key string) (int, error) {
	return t.probe(t.slots, key)
}

func (t *Table[V]) probe(slots []slot[V], key string) (int, error) {
	n := len(slots)
	pos := t.hash(key, n)
	offset := 1
	for probes := 0; probes < n; probes++ {
		s := &slots[pos]
		if s.state == Empty || s.key == key {
			return pos, nil
		}
		pos += offset
		offset += 2
		pos %= n
	}
	return -1, fmt.Errorf("%w: key %q, capacity %d", ErrExhausted, key, n)
}

// Insert stores value under key. It does nothing if key is already active.
func (t *Table[V]) Insert(key string, value V) error {
	key = t.normalize(key)
	pos, err := t.findPos(key)
	if err != nil {
		return err
	}
	if t.slots[pos].state == Active {
		return nil
	}
	t.slots[pos] = slot[V]{key: key, value: value, state: Active}
	t.active++
	if t.active > len(t.slots)/2 {
		return t.rehash()
	}
	return nil
}

// Find returns the active value stored under key.
func (t *Table[V]) Find(key string) (V, bool) {
	var zero V
	pos, err := t.findPos(t.normalize(key))
	if err != nil || t.slots[pos].state != Active {
		return zero, false
	}
	return t.slots[pos].value, true
}

// Contains reports whether key is active.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.Find(key)
	return ok
}

// Remove tombstones key. It reports whether an active entry was removed.
func (t *Table[V]) Remove(key string) bool {
	pos, err := t.findPos(t.normalize(key))
	if err != nil || t.slots[pos].state != Active {
		return false
	}
	var zero V
	t.slots[pos].value = zero
	t.slots[pos].state = Tombstoned
	t.active--
	return true
}

// Len is the number of active entries.
func (t *Table[V]) Len() int { return t.active }

// Cap is the number of slots.
func (t *Table[V]) Cap() int { return len(t.slots) }

// Tombstones is the number of tombstoned slots.
func (t *Table[V]) Tombstones() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].state == Tombstoned {
			n++
		}
	}
	return n
}

// All yields active entries in slot order. Keys are yielded normalized.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range t.slots {
			if t.slots[i].state != Active {
				continue
			}
			if !yield(t.slots[i].key, t.slots[i].value) {
				return
			}
		}
	}
}

// Values yields active values in slot order.
func (t *Table[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Keys returns the active keys in slot order.
func (t *Table[V]) Keys() []string {
	out := make([]string, 0, t.active)
	for k := range t.All() {
		out = append(out, k)
	}
	return out
}

func (t *Table[V]) nextCapacity() int {
	if t.target > len(t.slots) {
		return t.target
	}
	return nextPrime(2*len(t.slots) + 1)
}

func (t *Table[V]) rehash() error {
	from := len(t.slots)
	to := t.nextCapacity()
	slots := make([]slot[V], to)
	active := 0
	for i := range t.slots {
		if t.slots[i].state != Active {
			continue
		}
		pos, err := t.probe(slots, t.slots[i].key)
		if err != nil {
			// the old slots stay in place
			return err
		}
		slots[pos] = t.slots[i]
		active++
	}
	t.slots = slots
	t.active = active
	if t.onRehash != nil {
		t.onRehash(from, to)
	}
	return nil
}
