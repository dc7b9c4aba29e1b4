package workload

// RequestKind constants define the two request types understood by the simulator.
const (
	RequestKindRead  = "R"
	RequestKindWrite = "W"
)

// Header is the fixed column order of a dataset row.
var Header = []string{"Type", "Address", "Data", "User", "Wide"}

// Record is one synthetic bus request. Numeric fields are kept already
// rendered, since the radix is part of what is being randomized.
type Record struct {
	Kind    string // "R" or "W"
	Address string // hex or decimal
	Data    string // empty for reads
	User    string // hex or decimal
	Wide    bool   // 4-byte transfer when true, 1-byte otherwise
}

// IsWrite reports whether the record is a write request.
func (r Record) IsWrite() bool {
	return r.Kind == RequestKindWrite
}

// Fields returns the record in Header order.
func (r Record) Fields() []string {
	wide := "F"
	if r.Wide {
		wide = "T"
	}
	return []string{r.Kind, r.Address, r.Data, r.User, wide}
}

// Source is the randomness the generator draws from. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
	Uint64n(n uint64) uint64
	Float64() float64
}
