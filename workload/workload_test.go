package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = 42

// scriptedSource replays fixed answers and counts the draws made.
type scriptedSource struct {
	ints    []int
	uints   []uint64
	floats  []float64
	uintMax []uint64
	draws   int
}

func (s *scriptedSource) Intn(n int) int {
	s.draws++
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Uint64n(n uint64) uint64 {
	s.draws++
	s.uintMax = append(s.uintMax, n)
	v := s.uints[0]
	s.uints = s.uints[1:]
	return v
}

func (s *scriptedSource) Float64() float64 {
	s.draws++
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func decode(t *testing.T, s string) uint32 {
	t.Helper()
	v, err := ParseNumber(s)
	require.NoError(t, err)
	return v
}

func TestNextReadDrawsNoData(t *testing.T) {
	src := &scriptedSource{
		// kind=R, wide=T, addr radix=hex, user radix=decimal
		ints:   []int{0, 0, 0, 1},
		uints:  []uint64{0x1234, 99},
		floats: []float64{0.5},
	}
	rec := NewGenerator(src).Next()

	assert.Equal(t, Record{Kind: "R", Address: "0x1234", Data: "", User: "100", Wide: true}, rec)
	assert.Equal(t, 7, src.draws, "a read should not draw data or its radix")
	assert.Equal(t, []uint64{DefaultAddressMax + 1, 254}, src.uintMax)
}

func TestNextNarrowWrite(t *testing.T) {
	src := &scriptedSource{
		// kind=W, wide=F, addr decimal, special user picks 255, user hex, data decimal
		ints:   []int{1, 1, 1, 1, 0, 1},
		uints:  []uint64{DefaultAddressMax, 0xFF},
		floats: []float64{0.05},
	}
	rec := NewGenerator(src).Next()

	assert.Equal(t, []string{"W", "2097152", "255", "0xff", "F"}, rec.Fields())
	assert.Equal(t, []uint64{DefaultAddressMax + 1, NarrowDataMax + 1}, src.uintMax)
}

func TestNextWideWrite(t *testing.T) {
	src := &scriptedSource{
		// kind=W, wide=T, addr hex, special user picks 0, user decimal, data hex
		ints:   []int{1, 0, 0, 0, 1, 0},
		uints:  []uint64{0, WideDataMax},
		floats: []float64{0.0},
	}
	rec := NewGenerator(src).Next()

	assert.Equal(t, []string{"W", "0x0", "0xffffffff", "0", "T"}, rec.Fields())
	assert.Equal(t, []uint64{DefaultAddressMax + 1, WideDataMax + 1}, src.uintMax)
}

func TestSpecialUserGateBoundary(t *testing.T) {
	// Float64 exactly at the rate falls through to the interior range.
	src := &scriptedSource{
		ints:   []int{0, 1, 1, 1},
		uints:  []uint64{7, 253},
		floats: []float64{DefaultSpecialUserRate},
	}
	rec := NewGenerator(src).Next()
	assert.Equal(t, "254", rec.User)
}

func TestGeneratedRecordInvariants(t *testing.T) {
	g := NewGenerator(NewSource(testSeed))

	for i, rec := range g.Generate(20000) {
		require.Contains(t, []string{RequestKindRead, RequestKindWrite}, rec.Kind, "record %d", i)

		assert.Equal(t, rec.Kind == RequestKindRead, rec.Data == "", "record %d: data must be empty iff read", i)

		addr := decode(t, rec.Address)
		assert.LessOrEqual(t, uint64(addr), uint64(DefaultAddressMax), "record %d address", i)

		user := decode(t, rec.User)
		assert.LessOrEqual(t, user, uint32(UserMax), "record %d user", i)

		if rec.IsWrite() {
			data := decode(t, rec.Data)
			if !rec.Wide {
				assert.LessOrEqual(t, data, uint32(NarrowDataMax), "record %d narrow data", i)
			}
		}
	}
}

func TestSpecialUserFrequency(t *testing.T) {
	const n = 100000
	g := NewGenerator(NewSource(testSeed))

	var zero, full int
	for i := 0; i < n; i++ {
		switch decode(t, g.Next().User) {
		case UserMin:
			zero++
		case UserMax:
			full++
		}
	}

	// sd of the proportion at n=100000 is about 0.00095
	rate := float64(zero+full) / n
	assert.InDelta(t, DefaultSpecialUserRate, rate, 0.005)
	assert.InDelta(t, 0.5, float64(zero)/float64(zero+full), 0.05, "boundary users split evenly between 0 and 255")
}

func TestFieldsAreBalanced(t *testing.T) {
	const n = 50000
	g := NewGenerator(NewSource(testSeed))

	var writes, wide, hexAddr, hexUser, hexData int
	for _, rec := range g.Generate(n) {
		if rec.IsWrite() {
			writes++
			if strings.HasPrefix(rec.Data, "0x") {
				hexData++
			}
		}
		if rec.Wide {
			wide++
		}
		if strings.HasPrefix(rec.Address, "0x") {
			hexAddr++
		}
		if strings.HasPrefix(rec.User, "0x") {
			hexUser++
		}
	}

	assert.InDelta(t, 0.5, float64(writes)/n, 0.02)
	assert.InDelta(t, 0.5, float64(wide)/n, 0.02)
	assert.InDelta(t, 0.5, float64(hexAddr)/n, 0.02)
	assert.InDelta(t, 0.5, float64(hexUser)/n, 0.02)
	assert.InDelta(t, 0.5, float64(hexData)/float64(writes), 0.02)
}

func TestWideDataExceedsByteRange(t *testing.T) {
	g := NewGenerator(NewSource(testSeed))

	large := 0
	for _, rec := range g.Generate(2000) {
		if rec.IsWrite() && rec.Wide && decode(t, rec.Data) > NarrowDataMax {
			large++
		}
	}
	assert.Greater(t, large, 0, "wide writes should use the full 32-bit range")
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a := NewGenerator(NewSource(7)).Generate(500)
	b := NewGenerator(NewSource(7)).Generate(500)
	assert.Equal(t, a, b)

	c := NewGenerator(NewSource(8)).Generate(500)
	assert.NotEqual(t, a, c)
}

func TestCustomAddressMax(t *testing.T) {
	g := NewGenerator(NewSource(testSeed))
	g.AddressMax = 3

	seen := map[uint32]bool{}
	for _, rec := range g.Generate(1000) {
		addr := decode(t, rec.Address)
		assert.LessOrEqual(t, addr, uint32(3))
		seen[addr] = true
	}
	assert.Len(t, seen, 4, "upper bound is inclusive")
}
