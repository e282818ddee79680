package dycktesting

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// The RNG is seeded from Seed. It is normal to force it to some fixed
	// value so that the generated shapes are the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	logger.New("INFO")
	return TestContext{
		Log:  logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		T:    t,
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomTree returns a random shape with between minLeaves and maxLeaves
// leaves, inclusive, and its leaf count.
func (c *TestContext) RandomTree(minLeaves, maxLeaves int) (*big.Int, int) {
	n := minLeaves + c.Rand.Intn(maxLeaves-minLeaves+1)
	return RandomTree(c.Rand, n), n
}

// Words splits s into big endian 32 bit words, at least min of them. Three
// or more words always produce an unbounded encoding.
func Words(s *big.Int, min int) []uint32 {
	n := (s.BitLen() + 31) / 32
	if n < min {
		n = min
	}
	words := make([]uint32, n)
	x := new(big.Int).Set(s)
	mask := big.NewInt(1<<32 - 1)
	for i := n - 1; i >= 0; i-- {
		words[i] = uint32(new(big.Int).And(x, mask).Uint64())
		x.Rsh(x, 32)
	}
	return words
}
