package model

// TraceRef lists the source rows and journal headers behind a computed figure.
type TraceRef struct {
	RowIDs    []string `json:"row_ids"`
	HeaderIDs []string `json:"header_ids"`
}

// TraceBuilder accumulates a deduplicated TraceRef. Ids keep first-seen order.
type TraceBuilder struct {
	rows    []string
	headers []string
	seenRow map[string]struct{}
	seenHdr map[string]struct{}
}

// AddRow records the row's id and header id. Empty ids are skipped.
func (b *TraceBuilder) AddRow(r JournalRow) {
	b.addRowID(r.RowID)
	b.addHeaderID(r.JournalHeaderID)
}

// Merge unions t into the builder.
func (b *TraceBuilder) Merge(t TraceRef) {
	for _, id := range t.RowIDs {
		b.addRowID(id)
	}
	for _, id := range t.HeaderIDs {
		b.addHeaderID(id)
	}
}

// Ref returns the accumulated trace. Slices are never nil.
func (b *TraceBuilder) Ref() TraceRef {
	t := TraceRef{
		RowIDs:    make([]string, len(b.rows)),
		HeaderIDs: make([]string, len(b.headers)),
	}
	copy(t.RowIDs, b.rows)
	copy(t.HeaderIDs, b.headers)
	return t
}

func (b *TraceBuilder) addRowID(id string) {
	if id == "" {
		return
	}
	if b.seenRow == nil {
		b.seenRow = make(map[string]struct{})
	}
	if _, ok := b.seenRow[id]; ok {
		return
	}
	b.seenRow[id] = struct{}{}
	b.rows = append(b.rows, id)
}

func (b *TraceBuilder) addHeaderID(id string) {
	if id == "" {
		return
	}
	if b.seenHdr == nil {
		b.seenHdr = make(map[string]struct{})
	}
	if _, ok := b.seenHdr[id]; ok {
		return
	}
	b.seenHdr[id] = struct{}{}
	b.headers = append(b.headers, id)
}

// TraceFromRows builds the trace of a row set.
func TraceFromRows(rows []JournalRow) TraceRef {
	var b TraceBuilder
	for _, r := range rows {
		b.AddRow(r)
	}
	return b.Ref()
}

// MergeTraces unions traces.
func MergeTraces(traces ...TraceRef) TraceRef {
	var b TraceBuilder
	for _, t := range traces {
		b.Merge(t)
	}
	return b.Ref()
}
