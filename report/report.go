package report

import (
	"fmt"

	"github.com/alanwang67/requestgen/workload"
)

// Summary counts what kinds of requests ended up in a dataset.
type Summary struct {
	Rows          int
	Reads         int
	Writes        int
	Wide          int
	BoundaryUsers int // user id 0 or 255
}

func (s Summary) String() string {
	return fmt.Sprintf("%d rows: %d reads, %d writes, %d wide, %d boundary users",
		s.Rows, s.Reads, s.Writes, s.Wide, s.BoundaryUsers)
}

// Collector accumulates a Summary and the decoded user ids of the records it sees.
type Collector struct {
	summary Summary
	users   []float64
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add records one generated request. Its signature matches dataset.Writer.Observe.
func (c *Collector) Add(rec workload.Record) {
	c.summary.Rows++
	if rec.IsWrite() {
		c.summary.Writes++
	} else {
		c.summary.Reads++
	}
	if rec.Wide {
		c.summary.Wide++
	}

	user, err := workload.ParseNumber(rec.User)
	if err != nil {
		return
	}
	if user == workload.UserMin || user == workload.UserMax {
		c.summary.BoundaryUsers++
	}
	c.users = append(c.users, float64(user))
}

func (c *Collector) Summary() Summary {
	return c.summary
}

// Users returns the user ids seen so far.
func (c *Collector) Users() []float64 {
	return c.users
}
