package source

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// StrID is an interned string handle. The high half identifies the
// issuing interner, the low half indexes its table.
type StrID uint64

// NoStrID stands for the empty string in every interner.
const NoStrID StrID = 0

var internerSeq atomic.Uint32

// Interner maps strings to stable ids for the lifetime of the process.
// Safe for concurrent use by several parsing contexts.
type Interner struct {
	mu    sync.RWMutex
	owner uint32
	byID  []string          // индекс -> строка (byID[0] = "" для NoStrID)
	index map[string]uint32 // строка -> индекс
}

func NewInterner() *Interner {
	return &Interner{
		owner: internerSeq.Add(1),
		byID:  []string{""},
		index: map[string]uint32{"": 0},
	}
}

func (i *Interner) id(idx uint32) StrID {
	if idx == 0 {
		return NoStrID
	}
	return StrID(uint64(i.owner)<<32 | uint64(idx))
}

func (id StrID) owner() uint32 { return uint32(id >> 32) }
func (id StrID) index() uint32 { return uint32(id) }

// Intern returns the id of s, inserting it on first use.
func (i *Interner) Intern(s string) StrID {
	i.mu.RLock()
	idx, ok := i.index[s]
	i.mu.RUnlock()
	if ok {
		return i.id(idx)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if idx, ok = i.index[s]; ok {
		return i.id(idx)
	}
	// Собственная копия, чтобы не держать исходный буфер файла.
	cpy := strings.Clone(s)
	idx = uint32(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = idx
	return i.id(idx)
}

// InternBytes interns the string form of b.
func (i *Interner) InternBytes(b []byte) StrID {
	return i.Intern(string(b))
}

// Owns reports whether id was issued by this interner.
func (i *Interner) Owns(id StrID) bool {
	return id == NoStrID || id.owner() == i.owner
}

// Has reports whether id is a valid id of this interner.
func (i *Interner) Has(id StrID) bool {
	if !i.Owns(id) {
		return false
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return int(id.index()) < len(i.byID)
}

// Lookup resolves id without panicking.
func (i *Interner) Lookup(id StrID) (string, bool) {
	if !i.Owns(id) {
		return "", false
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	idx := id.index()
	if int(idx) >= len(i.byID) {
		return "", false
	}
	return i.byID[idx], true
}

// Unintern resolves id. Ids from another interner are a caller bug and panic.
func (i *Interner) Unintern(id StrID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("source: string id %#x does not belong to this interner", uint64(id)))
	}
	return s
}

// MustLookup resolves id like Unintern.
func (i *Interner) MustLookup(id StrID) string {
	return i.Unintern(id)
}

// UninternFmt writes the string behind id straight into w.
func (i *Interner) UninternFmt(w io.Writer, id StrID) error {
	_, err := io.WriteString(w, i.Unintern(id))
	return err
}

// Len counts stored strings, including the reserved empty string.
func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byID)
}

// Snapshot returns a copy of the table in id order.
func (i *Interner) Snapshot() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.byID)
}

// Display pairs an id with its interner so it can be passed to %s and %v.
type Display struct {
	In *Interner
	ID StrID
}

// Show wraps id for formatting.
func (i *Interner) Show(id StrID) Display {
	return Display{In: i, ID: id}
}

func (d Display) String() string {
	if d.In == nil {
		return fmt.Sprintf("#%d", uint64(d.ID))
	}
	if s, ok := d.In.Lookup(d.ID); ok {
		return s
	}
	return fmt.Sprintf("#%d", uint64(d.ID))
}
