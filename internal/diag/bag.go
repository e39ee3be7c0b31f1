package diag

import (
	"fmt"
	"math"
	"sort"

	"fortio.org/safecast"

	"oath/internal/source"
)

type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag creates a bag holding at most max diagnostics; non-positive max means the uint16 ceiling.
func NewBag(max int) *Bag {
	limit, err := safecast.Conv[uint16](max)
	if err != nil || limit == 0 {
		limit = math.MaxUint16
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(int(limit), 64)),
		max:   limit,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// PushError records an error diagnostic built from a code template.
func (b *Bag) PushError(code Code, primary source.Span, args ...Arg) bool {
	return b.Add(NewError(code, primary, args...))
}

// PushWarning records a warning diagnostic built from a code template.
func (b *Bag) PushWarning(code Code, primary source.Span, args ...Arg) bool {
	return b.Add(NewWarning(code, primary, args...))
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// Full reports whether further Add calls are dropped.
func (b *Bag) Full() bool {
	return len(b.items) >= int(b.max)
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// CollectErrors drains the errors, leaving other diagnostics in place.
func (b *Bag) CollectErrors() []Diagnostic {
	return b.collect(func(d Diagnostic) bool { return d.Severity == SevError })
}

// CollectWarnings drains the warnings, leaving other diagnostics in place.
func (b *Bag) CollectWarnings() []Diagnostic {
	return b.collect(func(d Diagnostic) bool { return d.Severity == SevWarning })
}

// Collect drains everything in insertion order.
func (b *Bag) Collect() []Diagnostic {
	out := b.items
	b.items = make([]Diagnostic, 0, cap(out))
	return out
}

func (b *Bag) collect(match func(Diagnostic) bool) []Diagnostic {
	var out []Diagnostic
	kept := b.items[:0]
	for _, d := range b.items {
		if match(d) {
			out = append(out, d)
			continue
		}
		kept = append(kept, d)
	}
	// хвост обнуляем, чтобы не держать ссылки на Args/Notes
	for i := len(kept); i < len(b.items); i++ {
		b.items[i] = Diagnostic{}
	}
	b.items = kept
	return out
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if newTotal > int(b.max) {
		grown, err := safecast.Conv[uint16](newTotal)
		if err != nil {
			grown = math.MaxUint16
		}
		b.max = grown
	}
	room := int(b.max) - len(b.items)
	if room > len(other.items) {
		room = len(other.items)
	}
	b.items = append(b.items, other.items[:room]...)
}

// Sort сортирует диагностики по: file, start, end, severity (desc), code (asc)
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		// сначала по файлу
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		// затем по старту
		if c := di.Primary.Start.Compare(dj.Primary.Start); c != 0 {
			return c < 0
		}
		// затем по концу
		if c := di.Primary.End.Compare(dj.Primary.End); c != 0 {
			return c < 0
		}
		// затем по severity (по убыванию: Error > Warning > Info)
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		// затем по коду (по возрастанию)
		return di.Code < dj.Code
	})
}

// простая дедупликация (по Code+Primary+Args)
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s:%s", d.Code.ID(), d.Primary.String(), d.Message(nil))
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}
