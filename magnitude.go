package num2text

import (
	"fmt"
	"math/big"
)

// MagnitudeModel describes how a locale slices an integer into groups and
// which scale word names each slice. Scales[0] names the units level and is
// usually empty. Boundaries holds the decimal exponent at which each level
// starts; when nil, levels are GroupSize digits apart.
//
// Values are built with NewMagnitudeModel and are immutable afterwards.
type MagnitudeModel struct {
	GroupSize  int
	Scales     []string
	Boundaries []int

	powers []*big.Int
}

// ScalePair is one (power, key) entry of a magnitude model.
type ScalePair struct {
	Exponent int
	Power    *big.Int
	Key      string
}

// NumberGroup is one slice of an integer. Nested is set when the slice is
// wider than one group (the unbounded top level, or a long-scale tier) and
// has been decomposed again; Value is then zero and Nested carries the digits.
type NumberGroup struct {
	Value        int
	Level        int
	TrailingZero bool
	Nested       []NumberGroup
}

// NewMagnitudeModel validates and freezes a magnitude model.
func NewMagnitudeModel(groupSize int, scales []string, boundaries []int) (*MagnitudeModel, error) {
	if groupSize < 1 || groupSize > 6 {
		return nil, fmt.Errorf("num2text: group size %d out of range", groupSize)
	}
	if len(scales) < 2 {
		return nil, fmt.Errorf("num2text: magnitude model needs at least two levels")
	}

	if boundaries == nil {
		boundaries = make([]int, len(scales))
		for i := range boundaries {
			boundaries[i] = i * groupSize
		}
	}
	if len(boundaries) != len(scales) {
		return nil, fmt.Errorf("num2text: %d boundaries for %d scale levels", len(boundaries), len(scales))
	}
	if boundaries[0] != 0 {
		return nil, fmt.Errorf("num2text: first boundary must be 0, got %d", boundaries[0])
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] <= boundaries[i-1] {
			return nil, fmt.Errorf("num2text: boundaries must be strictly increasing at level %d", i)
		}
	}
	if boundaries[1] > groupSize {
		return nil, fmt.Errorf("num2text: units level is %d digits wide, group size is %d", boundaries[1], groupSize)
	}
	for i := 1; i < len(scales); i++ {
		if scales[i] == "" {
			return nil, fmt.Errorf("num2text: scale level %d has no key", i)
		}
	}

	m := &MagnitudeModel{
		GroupSize:  groupSize,
		Scales:     append([]string(nil), scales...),
		Boundaries: append([]int(nil), boundaries...),
		powers:     make([]*big.Int, len(boundaries)),
	}
	for i, exp := range m.Boundaries {
		m.powers[i] = pow10(exp)
	}
	return m, nil
}

// MustMagnitudeModel is like NewMagnitudeModel but panics on error.
func MustMagnitudeModel(groupSize int, scales []string, boundaries []int) *MagnitudeModel {
	m, err := NewMagnitudeModel(groupSize, scales, boundaries)
	if err != nil {
		panic(err)
	}
	return m
}

// Levels returns the number of scale levels.
func (m *MagnitudeModel) Levels() int {
	return len(m.Scales)
}

// Width returns the digit width of level, or 0 for the unbounded top level.
func (m *MagnitudeModel) Width(level int) int {
	if level < 0 || level >= len(m.Boundaries)-1 {
		return 0
	}
	return m.Boundaries[level+1] - m.Boundaries[level]
}

// Pairs lists the scale levels from the units level upwards.
func (m *MagnitudeModel) Pairs() []ScalePair {
	out := make([]ScalePair, len(m.Scales))
	for i, key := range m.Scales {
		out[i] = ScalePair{
			Exponent: m.Boundaries[i],
			Power:    new(big.Int).Set(m.powers[i]),
			Key:      key,
		}
	}
	return out
}

// GroupLimit is 10^GroupSize, the exclusive bound of a plain group value.
func (m *MagnitudeModel) GroupLimit() int {
	limit := 1
	for i := 0; i < m.GroupSize; i++ {
		limit *= 10
	}
	return limit
}

// Decompose splits n (sign ignored) into groups, most significant first. The
// units group is always present; zero groups are kept and marked
// TrailingZero. Any level whose value reaches 10^GroupSize is decomposed
// again through the same model and returned in Nested.
func (m *MagnitudeModel) Decompose(n *big.Int) []NumberGroup {
	rest := new(big.Int).Abs(n)
	limit := big.NewInt(int64(m.GroupLimit()))

	var groups []NumberGroup
	for level := 0; level < len(m.Scales); level++ {
		var slice *big.Int
		top := level == len(m.Scales)-1
		if top {
			slice = rest
			rest = new(big.Int)
		} else {
			divisor := pow10(m.Width(level))
			slice = new(big.Int)
			rest.QuoRem(rest, divisor, slice)
		}

		group := NumberGroup{Level: level}
		if slice.Cmp(limit) >= 0 {
			group.Nested = m.Decompose(slice)
		} else {
			group.Value = int(slice.Int64())
			group.TrailingZero = group.Value == 0
		}
		groups = append(groups, group)

		if rest.Sign() == 0 {
			break
		}
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return groups
}

// Reassemble is the inverse of Decompose.
func (m *MagnitudeModel) Reassemble(groups []NumberGroup) *big.Int {
	total := new(big.Int)
	for _, g := range groups {
		var v *big.Int
		if g.Nested != nil {
			v = m.Reassemble(g.Nested)
		} else {
			v = big.NewInt(int64(g.Value))
		}
		if g.Level < len(m.powers) {
			v.Mul(v, m.powers[g.Level])
		}
		total.Add(total, v)
	}
	return total
}

// Lowest returns the value of the least significant plain group, which
// drives agreement of the word that follows this group.
func (g NumberGroup) Lowest() int {
	if len(g.Nested) == 0 {
		return g.Value
	}
	return g.Nested[len(g.Nested)-1].Lowest()
}

// Compound reports whether the group carries non-zero digits above its
// lowest plain group.
func (g NumberGroup) Compound() bool {
	if len(g.Nested) == 0 {
		return false
	}
	for _, inner := range g.Nested[:len(g.Nested)-1] {
		if !inner.IsZero() {
			return true
		}
	}
	return g.Nested[len(g.Nested)-1].Compound()
}

// IsZero reports whether the group holds no digits.
func (g NumberGroup) IsZero() bool {
	if len(g.Nested) == 0 {
		return g.Value == 0
	}
	for _, inner := range g.Nested {
		if !inner.IsZero() {
			return false
		}
	}
	return true
}

func pow10(exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}

var shortScaleKeys = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion", "sextillion", "septillion", "octillion", "nonillion", "decillion",
}

// ShortScale returns the 3-digit model from units to decillion.
func ShortScale() *MagnitudeModel {
	return MustMagnitudeModel(3, shortScaleKeys, nil)
}
