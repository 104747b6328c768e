// pkg/strength/recommend.go

package strength

// recommendations produces the ordered advisory list. Advisory text only; no
// rule here affects scoring or control flow.
//
// The symbol and reduced-pool rules are derived from the password and the
// declared pool size rather than from the generation config, so that scoring
// a generated password and scoring an arbitrary typed-in one go through the
// same pure function.
func recommendations(password string, poolSize int, tier Tier, common bool) []string {
	var recs []string

	if len(password) > 0 && len(password) < RecommendedMinLength {
		recs = append(recs, "Use at least 12 characters; length is the dominant strength factor.")
	}
	if tier <= Weak {
		recs = append(recs, "Increase length or enable more character classes to leave the weak range.")
	}
	if countClasses(password) > 0 && !hasSymbolClass(password) && len(password) < 16 {
		recs = append(recs, "Add symbols, or compensate for their absence with 16+ characters.")
	}
	if poolSize > 1 && poolSize < InferPoolSize(password) && len(password) < 14 {
		recs = append(recs, "A reduced character pool (excluded look-alikes) is best paired with 14+ characters.")
	}
	if common {
		recs = append(recs, "This is a well-known password; never use it anywhere.")
	}

	return recs
}

func hasSymbolClass(password string) bool {
	for i := 0; i < len(password); i++ {
		c := password[i]
		isLower := c >= 'a' && c <= 'z'
		isUpper := c >= 'A' && c <= 'Z'
		isDigit := c >= '0' && c <= '9'
		if !isLower && !isUpper && !isDigit {
			return true
		}
	}
	return false
}
