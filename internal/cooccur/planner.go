package cooccur

import "math"

// eulerOffset is 2*gamma - 1 with gamma the Euler-Mascheroni constant
// (2*0.5772156649 - 1 ~= 0.1544313298), the additive term in the
// residency-count derivation below.
const eulerOffset = 0.1544313298

// Plan holds the derived residency cutoff and overflow capacity for a
// given memory budget.
type Plan struct {
	MaxProduct     int64
	OverflowLength int64
}

// PlanMemory derives MaxProduct and OverflowLength from a soft GiB budget,
// solving n*(ln(n)+gamma) ~= rlimit for n via fixed-point iteration to
// 1e-3 tolerance, starting at n=1e5.
func PlanMemory(memoryLimitGiB float64, recordSize int) Plan {
	rlimit := 0.85 * memoryLimitGiB * (1 << 30) / float64(recordSize)

	n := 1e5
	for i := 0; i < 1000; i++ {
		next := rlimit / (math.Log(n) + eulerOffset)
		if math.Abs(next-n) < 1e-3 {
			n = next
			break
		}
		n = next
	}

	return Plan{
		MaxProduct:     int64(n),
		OverflowLength: int64(rlimit / 6),
	}
}
