package seq

// Store holds the sequence under sort together with the running counters.
type Store struct {
	values   Sequence
	counters Counters
}

func NewStore(s Sequence) *Store {
	return &Store{values: s.Clone()}
}

// Load replaces the sequence with a copy of s and zeroes the counters.
func (st *Store) Load(s Sequence) {
	st.values = s.Clone()
	st.counters = Counters{}
}

func (st *Store) Len() int           { return len(st.values) }
func (st *Store) At(i int) int       { return st.values[i] }
func (st *Store) Set(i, v int)       { st.values[i] = v }
func (st *Store) Counters() Counters { return st.counters }

// Values exposes the live slice. Only the algorithm driving the run may use it.
func (st *Store) Values() Sequence { return st.values }

func (st *Store) Snapshot() Sequence { return st.values.Clone() }

func (st *Store) Reset() { st.counters = Counters{} }

func (st *Store) CountCompare() { st.counters.Comparisons++ }
func (st *Store) CountSwap()    { st.counters.Swaps++ }

func (st *Store) Swap(i, j int) {
	st.values[i], st.values[j] = st.values[j], st.values[i]
}
