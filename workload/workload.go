package workload

import (
	"time"

	"golang.org/x/exp/rand"
)

const (
	DefaultAddressMax      = 0x200000
	DefaultSpecialUserRate = 0.1

	NarrowDataMax = 0xFF
	WideDataMax   = 0xFFFFFFFF

	UserMin = 0
	UserMax = 255
)

// Generator produces request records from an injected Source.
type Generator struct {
	AddressMax      uint64  // Inclusive upper bound for addresses
	SpecialUserRate float64 // Probability that the user is drawn from {0, 255}
	rng             Source
}

// NewGenerator creates a generator with default bounds drawing from rng.
func NewGenerator(rng Source) *Generator {
	return &Generator{
		AddressMax:      DefaultAddressMax,
		SpecialUserRate: DefaultSpecialUserRate,
		rng:             rng,
	}
}

// NewSource returns a PCG source seeded with seed, or with the clock when seed is 0.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

func (g *Generator) coin() bool {
	return g.rng.Intn(2) == 0
}

func (g *Generator) radix() Radix {
	if g.coin() {
		return Hex
	}
	return Decimal
}

// user applies a single gate: with SpecialUserRate the user is one of the
// boundary ids, otherwise it is uniform over the interior range.
func (g *Generator) user() uint64 {
	if g.rng.Float64() < g.SpecialUserRate {
		if g.coin() {
			return UserMin
		}
		return UserMax
	}
	return UserMin + 1 + g.rng.Uint64n(UserMax-UserMin-1)
}

// Next draws one record. Every field and every radix is drawn independently.
func (g *Generator) Next() Record {
	var rec Record
	if g.coin() {
		rec.Kind = RequestKindRead
	} else {
		rec.Kind = RequestKindWrite
	}
	rec.Wide = g.coin()

	rec.Address = Render(g.rng.Uint64n(g.AddressMax+1), g.radix())
	rec.User = Render(g.user(), g.radix())

	if rec.IsWrite() {
		dataMax := uint64(NarrowDataMax)
		if rec.Wide {
			dataMax = WideDataMax
		}
		rec.Data = Render(g.rng.Uint64n(dataMax+1), g.radix())
	}
	return rec
}

// Generate draws n records.
func (g *Generator) Generate(n int) []Record {
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, g.Next())
	}
	return records
}
