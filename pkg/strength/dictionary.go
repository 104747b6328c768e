// pkg/strength/dictionary.go

package strength

import "strings"

// commonPasswords is the fixed dictionary of well-known weak passwords,
// matched case-insensitively against the whole password. Immutable after
// init; safe for unrestricted concurrent reads.
var commonPasswords = func() map[string]struct{} {
	list := []string{
		"password",
		"passw0rd",
		"123456",
		"12345678",
		"123456789",
		"12345",
		"1234",
		"qwerty",
		"abc123",
		"football",
		"baseball",
		"monkey",
		"letmein",
		"dragon",
		"111111",
		"123123",
		"696969",
		"iloveyou",
		"trustno1",
		"sunshine",
		"master",
		"welcome",
		"shadow",
		"ashley",
		"michael",
		"superman",
		"batman",
		"princess",
		"starwars",
		"admin",
		"login",
		"hunter2",
	}
	m := make(map[string]struct{}, len(list))
	for _, p := range list {
		m[p] = struct{}{}
	}
	return m
}()

// keyboardFragments are adjacency runs and dictionary fragments whose
// presence anywhere in the password triggers the flat pattern penalty.
var keyboardFragments = []string{
	"qwerty",
	"asdf",
	"zxcv",
	"qazwsx",
	"wasd",
	"12345",
	"1234",
	"abc123",
	"pass",
	"word",
	"admin",
	"login",
}

// IsCommonPassword reports whether password is an exact (case-insensitive)
// member of the weak-password dictionary.
func IsCommonPassword(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}

func hasKeyboardFragment(password string) bool {
	lowered := strings.ToLower(password)
	for _, frag := range keyboardFragments {
		if strings.Contains(lowered, frag) {
			return true
		}
	}
	return false
}
