package crypto

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// cryptoSource implements Source using crypto/rand. rand.Int rejects
// out-of-range samples, so results carry no modulo bias.
type cryptoSource struct{}

// CryptoSource returns a Source backed by crypto/rand. It is safe for
// concurrent use.
func CryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
