// Package weights holds the character weight table.
package weights

// Entry maps one table character to its weight.
type Entry struct {
	Char   rune
	Weight int
}

// Table is an ordered, read-only character weight table.
type Table struct {
	entries []Entry
	index   map[rune]int
}

var defaultEntries = []Entry{
	{'0', 0}, {'1', 1}, {'2', 2}, {'3', 3}, {'4', 4},
	{'5', 5}, {'6', 6}, {'7', 7}, {'8', 8}, {'9', 9},

	{'a', 1}, {'b', 2}, {'c', 3}, {'d', 4}, {'e', 5},
	{'f', 8}, {'g', 3}, {'h', 5}, {'i', 1}, {'j', 1},
	{'k', 2}, {'l', 3}, {'m', 4}, {'n', 5}, {'o', 7},
	{'p', 8}, {'q', 1}, {'r', 2}, {'s', 3}, {'t', 4},
	{'u', 6}, {'v', 6}, {'w', 6}, {'x', 5}, {'y', 1},
	{'z', 7},
}

// Default returns the built-in 36-entry table, digits then letters.
func Default() *Table {
	return New(defaultEntries)
}

// New builds a table from entries in display order. Letters are stored lowercase.
func New(entries []Entry) *Table {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[rune]int, len(entries)),
	}
	for _, e := range entries {
		ch := foldASCII(e.Char)
		if _, ok := t.index[ch]; ok {
			continue
		}
		t.index[ch] = len(t.entries)
		t.entries = append(t.entries, Entry{Char: ch, Weight: e.Weight})
	}
	return t
}

// Entries returns a copy of the table in display order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the weight for ch. Only ASCII letters are case-folded.
func (t *Table) Lookup(ch rune) (int, bool) {
	i, ok := t.index[foldASCII(ch)]
	if !ok {
		return 0, false
	}
	return t.entries[i].Weight, true
}

func foldASCII(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
