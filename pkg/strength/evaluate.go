// pkg/strength/evaluate.go

package strength

import (
	"math"
)

const (
	// RecommendedMinLength is the floor below which the length advisory fires.
	RecommendedMinLength = 12

	// commonEntropyCeiling caps the score of exact dictionary matches: a
	// well-known password never leaves very-weak territory, whatever the
	// formula says.
	commonEntropyCeiling = 10

	sequencePenaltyCap    = 0.5
	commonPasswordPenalty = 0.5
	keyboardPenalty       = 0.4
)

// diversityBonuses is indexed by the number of character classes present.
// Below eight characters the bonus never applies.
var diversityBonuses = [5]float64{0, 0, 0.08, 0.18, 0.28}

// Report is the full strength assessment for one password.
type Report struct {
	RawEntropyBits      float64  `json:"raw_entropy_bits"`
	AdjustedEntropyBits float64  `json:"adjusted_entropy_bits"`
	Tier                Tier     `json:"-"`
	TierLabel           string   `json:"tier"`
	CrackTime           string   `json:"crack_time"`
	CommonPassword      bool     `json:"common_password"`
	Recommendations     []string `json:"recommendations,omitempty"`
}

// Evaluate scores password against a pool of poolSize characters using the
// default attack rate. Pure and deterministic; an empty password or a
// degenerate pool size yields a zero-entropy report, never an error.
func Evaluate(password string, poolSize int) Report {
	return EvaluateWithRate(password, poolSize, DefaultAttackRate)
}

// EvaluateWithRate is Evaluate with an explicit attacker guess rate in
// guesses per second.
func EvaluateWithRate(password string, poolSize int, attackRate float64) Report {
	var raw float64
	if len(password) > 0 && poolSize > 1 {
		raw = float64(len(password)) * math.Log2(float64(poolSize))
	}

	adjusted := raw * (1 - sequencePenalty(password)) * (1 + diversityBonus(password))
	if adjusted < 0 {
		adjusted = 0
	}

	common := IsCommonPassword(password)
	if common {
		adjusted *= 1 - commonPasswordPenalty
	}
	if hasKeyboardFragment(password) {
		adjusted *= 1 - keyboardPenalty
	}
	if common && adjusted > commonEntropyCeiling {
		adjusted = commonEntropyCeiling
	}

	tier := Classify(adjusted)
	return Report{
		RawEntropyBits:      raw,
		AdjustedEntropyBits: adjusted,
		Tier:                tier,
		TierLabel:           tier.String(),
		CrackTime:           CrackTime(adjusted, attackRate),
		CommonPassword:      common,
		Recommendations:     recommendations(password, poolSize, tier, common),
	}
}

// sequencePenalty scans every overlapping three-character window for a
// strictly monotonic run of consecutive character codes (step ±1, either
// direction) and returns min(hits/windows, 0.5). Byte codes are used: pools
// are ASCII, and "XYZ" is as much a run as "abc", while "999" is not.
func sequencePenalty(password string) float64 {
	windows := len(password) - 2
	if windows < 1 {
		return 0
	}

	hits := 0
	for i := 0; i < windows; i++ {
		a, b, c := password[i], password[i+1], password[i+2]
		ascending := b == a+1 && c == b+1
		descending := b == a-1 && c == b-1
		if ascending || descending {
			hits++
		}
	}

	penalty := float64(hits) / float64(windows)
	if penalty > sequencePenaltyCap {
		penalty = sequencePenaltyCap
	}
	return penalty
}

// diversityBonus rewards mixing character classes, but only once the
// password is long enough (≥ 8) for diversity to mean anything.
func diversityBonus(password string) float64 {
	if len(password) < 8 {
		return 0
	}
	return diversityBonuses[countClasses(password)]
}

func countClasses(password string) int {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for i := 0; i < len(password); i++ {
		switch c := password[i]; {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	classes := 0
	for _, present := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if present {
			classes++
		}
	}
	return classes
}

// InferPoolSize reconstructs the plausible pool size for an externally
// supplied password from the character classes it exhibits. Used when a
// caller scores a typed-in password with no known generation config.
func InferPoolSize(password string) int {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for i := 0; i < len(password); i++ {
		switch c := password[i]; {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= '0' && c <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	size := 0
	if hasLower {
		size += 26
	}
	if hasUpper {
		size += 26
	}
	if hasDigit {
		size += 10
	}
	if hasSymbol {
		size += 32
	}
	return size
}
