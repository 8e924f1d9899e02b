package stats

// Op is a named aggregation over a numeric column. The set is closed;
// tools accept only these names.
type Op string

const (
	OpMean   Op = "mean"
	OpSum    Op = "sum"
	OpCount  Op = "count"
	OpMin    Op = "min"
	OpMax    Op = "max"
	OpMedian Op = "median"
)

// Ops lists the legal aggregation names in the order the tool schema
// advertises them.
var Ops = []Op{OpMean, OpSum, OpCount, OpMin, OpMax, OpMedian}

// ParseOp maps a requested operation name to an Op. Unknown names fall
// back to OpMean: agent callers routinely invent near-miss names like
// "average", and the lenient default keeps the call useful instead of
// bouncing it.
func ParseOp(name string) Op {
	for _, op := range Ops {
		if Op(name) == op {
			return op
		}
	}
	return OpMean
}

// Apply runs the aggregation over the values. Count is the only Op
// defined on an empty slice; callers reject empty inputs before
// aggregating.
func (op Op) Apply(xs []float64) float64 {
	switch op {
	case OpSum:
		var sum float64
		for _, x := range xs {
			sum += x
		}
		return sum
	case OpCount:
		return float64(len(xs))
	case OpMin:
		return Min(xs)
	case OpMax:
		return Max(xs)
	case OpMedian:
		return Median(xs)
	default:
		return Mean(xs)
	}
}
