// Package pga implements a 2D projective geometric algebra kernel: sparse
// multivector arithmetic over Cl(2,0,1) (signature e0^2=0, e1^2=1, e2^2=1),
// and the typed points/lines built on top of it. The algebra gives the
// contour assembler and the interior probe a numerically uniform way to
// intersect, join and orient lines instead of ad hoc slope/intercept math.
package pga

// Blade is a basis-blade key: a 3-bit mask over the generators {e0, e1, e2},
// bit i set meaning e(i) participates in the blade. The eight possible keys
// are exactly the eight blades of Cl(2,0,1): 1 scalar, 3 vectors, 3
// bivectors, 1 trivector.
type Blade uint8

const (
	BladeScalar Blade = 0
	BladeE0     Blade = 1 << 0
	BladeE1     Blade = 1 << 1
	BladeE2     Blade = 1 << 2
	BladeE0E1   Blade = BladeE0 | BladeE1
	BladeE0E2   Blade = BladeE0 | BladeE2
	BladeE1E2   Blade = BladeE1 | BladeE2
	BladeE012   Blade = BladeE0 | BladeE1 | BladeE2
)

// Grade returns the number of generators present in the blade.
func (b Blade) Grade() int {
	n := 0
	for v := b; v != 0; v >>= 1 {
		n += int(v & 1)
	}
	return n
}

// GVec is a sparse multivector: a map from basis blade to coefficient.
// Absent keys mean zero. Values are immutable once built; every algebra
// operation below returns a fresh GVec.
type GVec map[Blade]float64

// addVal inserts-or-sums a scalar at blade k into v, returning the updated
// map. A result that is exactly zero is dropped so that GVec values
// carry no inert zero entries.
func addVal(v GVec, k Blade, x float64) GVec {
	if v == nil {
		v = GVec{}
	}
	sum := v[k] + x
	if sum == 0 {
		delete(v, k)
	} else {
		v[k] = sum
	}
	return v
}

// clone returns a shallow copy of v.
func clone(v GVec) GVec {
	out := make(GVec, len(v))
	for k, x := range v {
		out[k] = x
	}
	return out
}

// isEmpty reports whether v carries no non-zero blades.
func isEmpty(v GVec) bool {
	return len(v) == 0
}

// wedgeSign returns the sign of reordering the concatenation of a's set
// bits (ascending) followed by b's set bits (ascending) into fully sorted
// order, i.e. the parity of the number of (x in a, y in b) pairs with
// x > y. a and b must be disjoint.
func wedgeSign(a, b Blade) int {
	inversions := 0
	for y := 0; y < 3; y++ {
		if b&(1<<y) == 0 {
			continue
		}
		for x := y + 1; x < 3; x++ {
			if a&(1<<x) != 0 {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}
	return -1
}

// wedge computes the outer product a^b: anticommutative, grade-raising.
// Two basis blades that share a generator wedge to zero.
func wedge(a, b GVec) GVec {
	out := GVec{}
	for ka, xa := range a {
		for kb, xb := range b {
			if ka&kb != 0 {
				continue // shared generator: wedges to zero
			}
			sign := wedgeSign(ka, kb)
			out = addVal(out, ka|kb, float64(sign)*xa*xb)
		}
	}
	return out
}

// squareNorm returns the scalar blade*blade for a single basis blade under
// this algebra's signature. Any blade touching e0 (which squares to zero)
// has squared norm zero; otherwise it is the sign picked up by reversing
// the blade's generators to square it, (-1)^(g*(g-1)/2).
func squareNorm(k Blade) float64 {
	if k&BladeE0 != 0 {
		return 0
	}
	g := k.Grade()
	if (g*(g-1)/2)%2 == 0 {
		return 1
	}
	return -1
}

// dot computes the scalar-extracting inner product a.b: the grade-0 part
// of the geometric product, used to test parallelism between two lines.
// Only matching blades contribute (the geometric product of two distinct
// basis blades never fully contracts to a scalar).
func dot(a, b GVec) GVec {
	var sum float64
	for k, xa := range a {
		if xb, ok := b[k]; ok {
			sum += xa * xb * squareNorm(k)
		}
	}
	out := GVec{}
	return addVal(out, BladeScalar, sum)
}

// dualTable maps each blade to its complement and the sign of the dual
// map, chosen so dual(dual(x)) == x for every grade (the pair (BladeE0,
// BladeE1E2) is the one case where that sign is negative rather than
// positive, per the algebra's note on e0's dual).
var dualTable = map[Blade]struct {
	comp Blade
	sign float64
}{
	BladeScalar: {BladeE012, 1},
	BladeE012:   {BladeScalar, 1},
	BladeE0:     {BladeE1E2, -1},
	BladeE1E2:   {BladeE0, -1},
	BladeE1:     {BladeE0E2, 1},
	BladeE0E2:   {BladeE1, 1},
	BladeE2:     {BladeE0E1, 1},
	BladeE0E1:   {BladeE2, 1},
}

// dual swaps each blade X for its complement with the sign from dualTable.
func dual(v GVec) GVec {
	out := GVec{}
	for k, x := range v {
		e := dualTable[k]
		out = addVal(out, e.comp, e.sign*x)
	}
	return out
}

// scalarize splits v into its scalar part and the remainder without it.
func scalarize(v GVec) (float64, GVec) {
	s := v[BladeScalar]
	rest := clone(v)
	delete(rest, BladeScalar)
	return s, rest
}

// divVecScalar divides every coefficient of v by s.
func divVecScalar(v GVec, s float64) GVec {
	out := GVec{}
	for k, x := range v {
		out = addVal(out, k, x/s)
	}
	return out
}

// addVecPair adds two multivectors pointwise.
func addVecPair(a, b GVec) GVec {
	out := clone(a)
	for k, x := range b {
		out = addVal(out, k, x)
	}
	return out
}
