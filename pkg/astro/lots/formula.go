// Package lots evaluates Hellenistic lots (Arabic parts): arithmetic
// combinations of planetary longitudes such as "Ascendant + Moon - Sun".
package lots

import (
	"strconv"
	"strings"

	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
)

// Ascendant always resolves to 0°; charts carry no house cusps yet.
const Ascendant = "Ascendant"

type Op int

const (
	Add Op = iota
	Subtract
)

func (o Op) String() string {
	if o == Subtract {
		return "-"
	}
	return "+"
}

// Operand is either a named point (planet or angle) or a constant in degrees.
type Operand struct {
	Ref      string
	Constant float64
	IsConst  bool
}

type Term struct {
	Op      Op
	Operand Operand
}

// Formula is a parsed lot formula.
type Formula struct {
	Source string
	Terms  []Term
}

// Positions maps a point name to its absolute longitude.
type Positions map[string]float64

// Parse splits a formula on whitespace. "+", "-" and "−" switch the current
// operation, which stays in effect until the next operator; every other
// token is an operand. Parse never fails: unknown names are kept as
// references and resolve to 0 at evaluation time.
func Parse(src string) Formula {
	f := Formula{Source: src}
	op := Add
	for _, tok := range strings.Fields(src) {
		switch tok {
		case "+":
			op = Add
		case "-", "−":
			op = Subtract
		default:
			if v, err := strconv.ParseFloat(tok, 64); err == nil {
				f.Terms = append(f.Terms, Term{Op: op, Operand: Operand{Constant: v, IsConst: true}})
				continue
			}
			f.Terms = append(f.Terms, Term{Op: op, Operand: Operand{Ref: tok}})
		}
	}
	return f
}

func (f Formula) String() string {
	var b strings.Builder
	for i, t := range f.Terms {
		if i > 0 || t.Op == Subtract {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.Op.String())
			b.WriteByte(' ')
		}
		if t.Operand.IsConst {
			b.WriteString(strconv.FormatFloat(t.Operand.Constant, 'f', -1, 64))
		} else {
			b.WriteString(t.Operand.Ref)
		}
	}
	return b.String()
}

type Evaluation struct {
	Degree       float64
	Sign         string
	DegreeInSign float64
	House        int
	// Unresolved lists references that were not found and counted as 0°.
	Unresolved []string
}

// Evaluate accumulates the terms left to right and normalizes the result
// into [0, 360). The house is the simplified floor(degree/30)+1.
func (f Formula) Evaluate(pos Positions) Evaluation {
	var (
		acc        float64
		unresolved []string
	)
	for _, t := range f.Terms {
		v, ok := t.Operand.resolve(pos)
		if !ok {
			unresolved = append(unresolved, t.Operand.Ref)
		}
		if t.Op == Subtract {
			acc -= v
		} else {
			acc += v
		}
	}

	deg := zodiac.Normalize(acc)
	return Evaluation{
		Degree:       deg,
		Sign:         zodiac.SignAt(deg),
		DegreeInSign: zodiac.DegreeInSign(deg),
		House:        zodiac.HouseAt(deg),
		Unresolved:   unresolved,
	}
}

func (o Operand) resolve(pos Positions) (float64, bool) {
	if o.IsConst {
		return o.Constant, true
	}
	if strings.EqualFold(o.Ref, Ascendant) {
		return 0, true
	}
	if v, ok := pos[o.Ref]; ok {
		return v, true
	}
	for name, v := range pos {
		if strings.EqualFold(name, o.Ref) {
			return v, true
		}
	}
	return 0, false
}
