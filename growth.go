package readtext

import "github.com/dustin/go-humanize"

// minGrowthBytes is the smallest block size, in bytes, the geometric
// strategy ever requests, so the first allocation is at least 8KiB of
// row bytes, matching rows.c's initial-block heuristic.
const minGrowthBytes = 8 * 1024

// growthStrategy decides how many rows an ArrayWriter should be grown
// to next, when the final row count isn't known up front (maxRows < 0
// in spec §4.3's allocation step). It mirrors rows.c's
// grow_size_and_multiply: geometric growth by 5/4, floored at an 8KiB
// block.
type growthStrategy struct {
	rowSize int
	log     *sessionLogger
}

func newGrowthStrategy(rowSize int, log *sessionLogger) growthStrategy {
	return growthStrategy{rowSize: rowSize, log: log}
}

// next returns the row count to grow to, given the current row count
// and the minimum the caller now needs (current+1, typically).
func (g growthStrategy) next(current, needAtLeast int) int {
	grown := current + current/4
	if grown < needAtLeast {
		grown = needAtLeast
	}
	if g.rowSize > 0 {
		minRows := (minGrowthBytes + g.rowSize - 1) / g.rowSize
		if grown < minRows {
			grown = minRows
		}
	}
	if g.log != nil {
		g.log.growth(current, grown, humanize.Bytes(uint64(grown*g.rowSize)))
	}
	return grown
}
