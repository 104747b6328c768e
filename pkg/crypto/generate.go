// pkg/crypto/generate.go

package crypto

import (
	"crypto/rand"
	"encoding/binary"

	cerr "github.com/cockroachdb/errors"

	"github.com/keysmith/keysmith/pkg/charset"
	"github.com/keysmith/keysmith/pkg/keysmith_err"
)

// randomUint32 draws four bytes from the OS entropy source. A read failure
// surfaces as ErrRandomnessUnavailable; there is no PRNG fallback.
func randomUint32() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, cerr.WithHint(
			cerr.WithSecondaryError(keysmith_err.ErrRandomnessUnavailable, err),
			"the operating system entropy source could not be read")
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// GeneratePassword draws one uniform 32-bit value per output position and
// maps it onto the pool by modulo reduction.
//
// Modulo reduction is slightly biased whenever the pool size does not divide
// 2^32. For pools of at most a few hundred symbols the bias is below one part
// in 2^24 per draw, which is statistically undetectable; it is accepted and
// documented here rather than rejected-sampled away.
func GeneratePassword(pool charset.Pool, length int) (string, error) {
	if pool.Size() == 0 {
		return "", cerr.AssertionFailedf("generate called with an empty pool")
	}
	if length <= 0 {
		return "", cerr.AssertionFailedf("generate called with length %d", length)
	}

	out := make([]byte, length)
	for i := range out {
		v, err := randomUint32()
		if err != nil {
			return "", err
		}
		out[i] = pool.Char(int(v % uint32(pool.Size())))
	}
	return string(out), nil
}
