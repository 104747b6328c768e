// pkg/strength/tiers.go

package strength

// Tier is a discrete strength bucket over adjusted entropy bits.
type Tier int

const (
	VeryWeak Tier = iota
	Weak
	Fair
	Good
	Strong
	Excellent
)

// Half-open tier boundaries: [0,25) VeryWeak, [25,50) Weak, [50,75) Fair,
// [75,100) Good, [100,125) Strong, [125,∞) Excellent.
var tierBoundaries = []float64{25, 50, 75, 100, 125}

func (t Tier) String() string {
	switch t {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Fair:
		return "fair"
	case Good:
		return "good"
	case Strong:
		return "strong"
	case Excellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// Classify maps adjusted entropy bits onto a tier.
func Classify(bits float64) Tier {
	for i, upper := range tierBoundaries {
		if bits < upper {
			return Tier(i)
		}
	}
	return Excellent
}
