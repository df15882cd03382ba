package scoring

// ScoreStorage loads and saves finished games. High scores live for the
// process only, so the shipped implementation is in memory; the interface
// keeps the scoring logic testable against failing stores.
type ScoreStorage interface {
	// LoadAll returns every stored entry.
	LoadAll() ([]ScoreHistoryEntry, error)
	// SaveAll replaces the stored entries.
	SaveAll(entries []ScoreHistoryEntry) error
}

// MemoryStorage keeps entries for the lifetime of the process.
type MemoryStorage struct {
	entries []ScoreHistoryEntry
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// LoadAll returns a copy so callers cannot alias the stored slice.
func (m *MemoryStorage) LoadAll() ([]ScoreHistoryEntry, error) {
	out := make([]ScoreHistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func (m *MemoryStorage) SaveAll(entries []ScoreHistoryEntry) error {
	m.entries = make([]ScoreHistoryEntry, len(entries))
	copy(m.entries, entries)
	return nil
}
