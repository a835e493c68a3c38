package rank

// Session holds the immutable record set of one search so later refine
// passes re-filter and re-sort without touching the network. It replaces
// the implicit "last results" state a UI would otherwise carry.
type Session struct {
	records []Record

	filters []Filter
	keys    []SortKey
	limit   int
}

// NewSession copies the fetched records into a session. The session never
// mutates them.
func NewSession(records []Record) *Session {
	held := make([]Record, len(records))
	copy(held, records)
	return &Session{
		records: held,
		keys:    DefaultSortKeys(),
		limit:   len(held),
	}
}

// Size returns the number of held records before filtering.
func (s *Session) Size() int {
	return len(s.records)
}

// Refine applies a new filter/sort/limit configuration over the held
// records and returns the resulting view. The configuration is remembered
// so Current reflects the latest pass.
func (s *Session) Refine(filters []Filter, keys []SortKey, limit int) []Record {
	s.filters = filters
	if len(keys) > 0 {
		s.keys = keys
	}
	if limit >= 0 {
		s.limit = limit
	}
	return Run(s.records, s.filters, s.keys, s.limit)
}

// Current re-runs the pipeline with the session's remembered configuration.
func (s *Session) Current() []Record {
	return Run(s.records, s.filters, s.keys, s.limit)
}
