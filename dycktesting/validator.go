package dycktesting

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"lukechampine.com/uint128"

	"github.com/forestrie/go-dyck/internal/bitsplit"
	"github.com/forestrie/go-dyck/uint512"
)

var ErrMaxLeavesRange = errors.New("dycktesting: max leaves out of range")

// MaxValidatorLeaves bounds the enumerated corpus. The number of shapes grows
// with the Catalan numbers, 14 leaves is already several million shapes.
const MaxValidatorLeaves = 14

type Representation string

const (
	ReprUint8   Representation = "uint8"
	ReprUint16  Representation = "uint16"
	ReprUint32  Representation = "uint32"
	ReprUint64  Representation = "uint64"
	ReprUint    Representation = "uint"
	ReprUint128 Representation = "uint128"
	ReprUint512 Representation = "uint512"
	ReprBig     Representation = "big"
)

func AllRepresentations() []Representation {
	return []Representation{
		ReprUint8, ReprUint16, ReprUint32, ReprUint64, ReprUint,
		ReprUint128, ReprUint512, ReprBig,
	}
}

// Width returns the bit width of the representation, 0 for unbounded.
func (r Representation) Width() int {
	switch r {
	case ReprUint8:
		return 8
	case ReprUint16:
		return 16
	case ReprUint32:
		return 32
	case ReprUint64:
		return 64
	case ReprUint:
		return bitsplit.Width[uint]()
	case ReprUint128:
		return 128
	case ReprUint512:
		return uint512.Bits
	}
	return 0
}

type Mismatch struct {
	Representation Representation
	// Structure is the offending shape in base 2
	Structure string
	Got       int
	Want      int
	Reason    string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s: got %d, want %d (%s)", m.Representation, m.Structure, m.Got, m.Want, m.Reason)
}

type Report struct {
	// Shapes is the size of the corpus, enumerated and random
	Shapes     int
	Checked    map[Representation]int
	Elapsed    map[Representation]time.Duration
	Mismatches []Mismatch
}

func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Validator drives every enumerated shape, and optionally random shapes too
// large to enumerate, through each representation of the split scan. Each
// result is compared against ReferenceSplit and both halves are checked for
// being well formed and for recombining to the original.
type Validator struct {
	opts ValidatorOptions
}

// NewValidator logs to the process wide logger unless WithLogger is given.
// If that has not been configured with logger.New, logging is disabled.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		opts: ValidatorOptions{
			MaxLeaves:       10,
			Representations: AllRepresentations(),
		},
	}
	for _, o := range opts {
		o(&v.opts)
	}
	if v.opts.Log == nil {
		if logger.Sugar == nil {
			logger.New("NOOP")
		}
		v.opts.Log = logger.Sugar.WithServiceName("validator")
	}
	return v
}

func (v *Validator) Run() (Report, error) {
	if v.opts.MaxLeaves < 0 || v.opts.MaxLeaves > MaxValidatorLeaves {
		return Report{}, fmt.Errorf("%w: %d, want 0 to %d", ErrMaxLeavesRange, v.opts.MaxLeaves, MaxValidatorLeaves)
	}
	log := v.opts.Log

	shapes := AllTrees(v.opts.MaxLeaves)
	corpus := make([]*big.Int, 0, len(shapes)+v.opts.RandomShapes)
	for _, s := range shapes {
		corpus = append(corpus, new(big.Int).SetUint64(s))
	}
	r := rand.New(rand.NewSource(v.opts.Seed))
	for i := 0; i < v.opts.RandomShapes; i++ {
		// 33 leaves and up no longer fit in 64 bits
		corpus = append(corpus, RandomTree(r, 33+r.Intn(uint512.Bits/2-32)))
	}

	want := make([]int, len(corpus))
	for i, s := range corpus {
		want[i] = referencePos(s)
	}

	report := Report{
		Shapes:  len(corpus),
		Checked: map[Representation]int{},
		Elapsed: map[Representation]time.Duration{},
	}
	log.Infof("validating %d shapes (max leaves %d, random %d)", len(corpus), v.opts.MaxLeaves, v.opts.RandomShapes)

	for _, repr := range v.opts.Representations {
		var res result
		switch repr {
		case ReprUint8:
			res = driveNative[uint8](corpus, want)
		case ReprUint16:
			res = driveNative[uint16](corpus, want)
		case ReprUint32:
			res = driveNative[uint32](corpus, want)
		case ReprUint64:
			res = driveNative[uint64](corpus, want)
		case ReprUint:
			res = driveNative[uint](corpus, want)
		case ReprUint128:
			in, w := fitting(corpus, want, 128, func(b *big.Int) uint128.Uint128 {
				// FromBig modifies its argument
				return uint128.FromBig(new(big.Int).Set(b))
			})
			res = drive(bitsplit.Uint128Ops{}, in, w, func(s uint128.Uint128) string { return s.Big().Text(2) })
		case ReprUint512:
			in, w := fitting(corpus, want, uint512.Bits, uint512.FromBig)
			res = drive(bitsplit.Uint512Ops{}, in, w, func(s uint512.Uint512) string { return s.Text(2) })
		case ReprBig:
			res = drive(bitsplit.BigOps{}, corpus, want, func(s *big.Int) string { return s.Text(2) })
		default:
			log.Infof("skipping unknown representation %q", repr)
			continue
		}

		for i := range res.mismatches {
			res.mismatches[i].Representation = repr
			log.Debugf("mismatch: %v", res.mismatches[i])
		}
		report.Checked[repr] = res.checked
		report.Elapsed[repr] = res.elapsed
		report.Mismatches = append(report.Mismatches, res.mismatches...)

		log.Infof("%s: %d shapes in %v, %d mismatches", repr, res.checked, res.elapsed, len(res.mismatches))
	}
	return report, nil
}

func referencePos(s *big.Int) int {
	pos, ok := ReferenceSplit(s)
	if !ok {
		return -1
	}
	return pos
}

type result struct {
	checked    int
	elapsed    time.Duration
	mismatches []Mismatch
}

func fitting[T any](corpus []*big.Int, want []int, width int, conv func(*big.Int) T) ([]T, []int) {
	var in []T
	var w []int
	for i, s := range corpus {
		if s.BitLen() > width {
			continue
		}
		in = append(in, conv(s))
		w = append(w, want[i])
	}
	return in, w
}

func driveNative[W bitsplit.Word](corpus []*big.Int, want []int) result {
	in, w := fitting(corpus, want, bitsplit.Width[W](), func(b *big.Int) W { return W(b.Uint64()) })
	return drive(bitsplit.NativeOps[W]{}, in, w, func(s W) string {
		return new(big.Int).SetUint64(uint64(s)).Text(2)
	})
}

// drive times the scan over the whole corpus first, then checks the results.
func drive[T any, O bitsplit.Ops[T]](o O, corpus []T, want []int, text func(T) string) result {
	got := make([]int, len(corpus))

	start := time.Now()
	for i, s := range corpus {
		pos, ok := bitsplit.Split(o, s)
		if !ok {
			pos = -1
		}
		got[i] = pos
	}
	res := result{checked: len(corpus), elapsed: time.Since(start)}

	for i, s := range corpus {
		if got[i] != want[i] {
			res.mismatches = append(res.mismatches, Mismatch{
				Structure: text(s), Got: got[i], Want: want[i], Reason: "split position"})
			continue
		}
		if got[i] < 0 {
			continue
		}
		left, right := bitsplit.Decompose(o, s, got[i])
		if !bitsplit.WellFormed(o, left) || !bitsplit.WellFormed(o, right) {
			res.mismatches = append(res.mismatches, Mismatch{
				Structure: text(s), Got: got[i], Want: want[i], Reason: "unbalanced halves"})
			continue
		}
		joined := bitsplit.Combine(o, left, right)
		if !o.IsZero(o.Xor(joined, s)) {
			res.mismatches = append(res.mismatches, Mismatch{
				Structure: text(s), Got: got[i], Want: want[i], Reason: "round trip"})
		}
	}
	return res
}
