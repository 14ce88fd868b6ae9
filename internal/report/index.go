package report

import "github.com/cleared-dev/ledgerview/internal/model"

// rowIndex groups rows under string keys, remembering first-seen key order.
// Output order is always imposed by an explicit sort afterwards.
type rowIndex struct {
	keys []string
	rows map[string][]model.JournalRow
}

func newRowIndex() *rowIndex {
	return &rowIndex{rows: make(map[string][]model.JournalRow)}
}

func (ix *rowIndex) add(key string, r model.JournalRow) {
	if _, ok := ix.rows[key]; !ok {
		ix.keys = append(ix.keys, key)
	}
	ix.rows[key] = append(ix.rows[key], r)
}

func (ix *rowIndex) get(key string) []model.JournalRow {
	return ix.rows[key]
}

func indexByAccount(rows []model.JournalRow) *rowIndex {
	ix := newRowIndex()
	for _, r := range rows {
		ix.add(r.AccountKey(), r)
	}
	return ix
}
