package system

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quasilyte/gdata"
)

// WinRecord is the persisted completion history of one level.
type WinRecord struct {
	Level    string  `json:"level"`
	BestTime float64 `json:"bestTime"`
	LastTime float64 `json:"lastTime"`
	Wins     int     `json:"wins"`
}

// RecordStore is the subset of *gdata.Manager used for win records.
type RecordStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// WinRecords persists level completion times as JSON items.
type WinRecords struct {
	store RecordStore
}

// OpenWinRecords opens the per-user gdata storage for appName.
func OpenWinRecords(appName string) (*WinRecords, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("records: open %s: %w", appName, err)
	}
	return NewWinRecords(m), nil
}

func NewWinRecords(store RecordStore) *WinRecords {
	return &WinRecords{store: store}
}

// Load returns the record for level. A level never won reports false.
func (r *WinRecords) Load(level string) (WinRecord, bool, error) {
	if r == nil || r.store == nil {
		return WinRecord{}, false, nil
	}
	data, err := r.store.LoadItem(recordKey(level))
	if err != nil {
		return WinRecord{}, false, fmt.Errorf("records: load %s: %w", level, err)
	}
	if len(data) == 0 {
		return WinRecord{}, false, nil
	}
	var rec WinRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return WinRecord{}, false, fmt.Errorf("records: parse %s: %w", level, err)
	}
	return rec, true, nil
}

// Record adds a completion of level in elapsed seconds and reports whether
// it beat the previous best.
func (r *WinRecords) Record(level string, elapsed float64) (WinRecord, bool, error) {
	if r == nil || r.store == nil {
		return WinRecord{}, false, nil
	}
	rec, found, err := r.Load(level)
	if err != nil {
		return WinRecord{}, false, err
	}
	best := !found || rec.Wins == 0 || elapsed < rec.BestTime
	rec.Level = level
	rec.LastTime = elapsed
	rec.Wins++
	if best {
		rec.BestTime = elapsed
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return WinRecord{}, false, fmt.Errorf("records: encode %s: %w", level, err)
	}
	if err := r.store.SaveItem(recordKey(level), data); err != nil {
		return WinRecord{}, false, fmt.Errorf("records: save %s: %w", level, err)
	}
	return rec, best, nil
}

func recordKey(level string) string {
	var b strings.Builder
	b.WriteString("win_")
	for _, r := range strings.ToLower(level) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
