package gen

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/wildfunctions/random_art/pkg/art"
	"github.com/wildfunctions/random_art/pkg/expr"
)

// EarlyStop is the chance, at every level, that a terminal is produced
// before the depth cap is reached.
const EarlyStop = 0.1

// opKind enumerates the nine operators the generator picks from.
type opKind int

const (
	kindAdd opKind = iota
	kindMult
	kindMod
	kindDiv
	kindSqrt
	kindSin
	kindCos
	kindAverage
	kindMix
	numKinds
)

var binaryKinds = map[opKind]expr.BinaryOp{
	kindAdd:     expr.OpAdd,
	kindMult:    expr.OpMult,
	kindMod:     expr.OpMod,
	kindDiv:     expr.OpDiv,
	kindAverage: expr.OpAverage,
}

var unaryKinds = map[opKind]expr.UnaryOp{
	kindSqrt: expr.OpSqrt,
	kindSin:  expr.OpSin,
	kindCos:  expr.OpCos,
}

// Generator builds random expression trees from one seeded stream.
// It is not safe for concurrent use: every draw advances shared state.
type Generator struct {
	rng  *rand.Rand
	seed uint64
}

// SeedFromString hashes seed text to a stable 64-bit seed.
func SeedFromString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// New creates a generator seeded from seed text.
func New(seed string) *Generator {
	return NewFromUint64(SeedFromString(seed))
}

// NewFromUint64 creates a generator from a numeric seed. The 64-bit seed
// is stretched into a ChaCha8 key with a PCG stream.
func NewFromUint64(seed uint64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewChaCha8(expandSeed(seed))),
		seed: seed,
	}
}

func expandSeed(seed uint64) [32]byte {
	var key [32]byte
	pcg := rand.NewPCG(seed, 0)
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], pcg.Uint64())
	}
	return key
}

// Seed returns the numeric seed the stream was built from.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Tree builds one random tree with at most depth levels of operators.
// depth <= 0 always yields a terminal.
func (g *Generator) Tree(depth int) expr.Node {
	if depth <= 0 || g.rng.Float64() < EarlyStop {
		return g.terminal()
	}

	kind := opKind(g.rng.IntN(int(numKinds)))
	switch kind {
	case kindSqrt, kindSin, kindCos:
		return &expr.UnaryNode{
			Op:    unaryKinds[kind],
			Child: g.Tree(depth - 1),
		}
	case kindMix:
		a := g.Tree(depth - 1)
		b := g.Tree(depth - 1)
		c := g.Tree(depth - 1)
		d := g.Tree(depth - 1)
		return &expr.MixNode{A: a, B: b, C: c, D: d}
	default:
		left := g.Tree(depth - 1)
		right := g.Tree(depth - 1)
		return &expr.BinaryNode{
			Op:    binaryKinds[kind],
			Left:  left,
			Right: right,
		}
	}
}

// terminal picks x, y, t or a constant in [-1, 1] with equal chance.
func (g *Generator) terminal() expr.Node {
	switch g.rng.IntN(4) {
	case 0:
		return &expr.VarNode{Axis: expr.AxisX}
	case 1:
		return &expr.VarNode{Axis: expr.AxisY}
	case 2:
		return &expr.VarNode{Axis: expr.AxisT}
	default:
		return &expr.ConstNode{Val: g.rng.Float64()*2 - 1}
	}
}

// Channels draws the R, G and B trees in that order from the same stream.
func (g *Generator) Channels(depth int) art.Channels {
	r := g.Tree(depth)
	gr := g.Tree(depth)
	b := g.Tree(depth)
	return art.Channels{R: r, G: gr, B: b}
}
