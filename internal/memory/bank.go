// Package memory holds the calculator's named registers and the last answer.
package memory

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Scalars lists the numeric registers in keypad order.
var Scalars = []string{"A", "B", "C", "D", "E", "F", "X", "Y", "M"}

// Slots are the letters a matrix or vector can be saved under.
var Slots = []string{"A", "B", "C", "D"}

func IsScalarRegister(name string) bool {
	for _, s := range Scalars {
		if s == name {
			return true
		}
	}
	return false
}

func isSlot(name string) bool {
	for _, s := range Slots {
		if s == name {
			return true
		}
	}
	return false
}

// Bank is the register file. Registers are created at zero, overwritten by
// store and save operations and never removed.
type Bank struct {
	scalars    map[string]float64
	matrices   map[string]*mat.Dense
	vectors    map[string]*mat.VecDense
	lastAnswer string
}

func NewBank() *Bank {
	b := &Bank{
		scalars:    make(map[string]float64, len(Scalars)),
		matrices:   make(map[string]*mat.Dense),
		vectors:    make(map[string]*mat.VecDense),
		lastAnswer: "0",
	}
	for _, name := range Scalars {
		b.scalars[name] = 0
	}
	return b
}

func (b *Bank) Scalar(name string) (float64, bool) {
	v, ok := b.scalars[name]
	return v, ok
}

func (b *Bank) SetScalar(name string, v float64) error {
	if !IsScalarRegister(name) {
		return fmt.Errorf("unknown register %q", name)
	}
	b.scalars[name] = v
	return nil
}

// SaveMatrix stores rows as MatA..MatD and returns the register name.
func (b *Bank) SaveMatrix(slot string, rows [][]float64) (string, error) {
	if !isSlot(slot) {
		return "", fmt.Errorf("unknown matrix %q", slot)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", fmt.Errorf("matrix %s: no elements", slot)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return "", fmt.Errorf("matrix %s: row %d has %d columns, want %d", slot, i+1, len(row), cols)
		}
		data = append(data, row...)
	}
	name := "Mat" + slot
	b.matrices[name] = mat.NewDense(len(rows), cols, data)
	return name, nil
}

// SaveVector stores xs as VctA..VctD and returns the register name.
func (b *Bank) SaveVector(slot string, xs []float64) (string, error) {
	if !isSlot(slot) {
		return "", fmt.Errorf("unknown vector %q", slot)
	}
	if len(xs) == 0 {
		return "", fmt.Errorf("vector %s: no elements", slot)
	}
	name := "Vct" + slot
	b.vectors[name] = mat.NewVecDense(len(xs), append([]float64(nil), xs...))
	return name, nil
}

func (b *Bank) Matrix(name string) (*mat.Dense, bool) {
	m, ok := b.matrices[name]
	return m, ok
}

func (b *Bank) Vector(name string) (*mat.VecDense, bool) {
	v, ok := b.vectors[name]
	return v, ok
}

// Bindings returns every register by name, ready to be placed in an
// evaluation scope.
func (b *Bank) Bindings() map[string]any {
	out := make(map[string]any, len(b.scalars)+len(b.matrices)+len(b.vectors))
	for k, v := range b.scalars {
		out[k] = v
	}
	for k, m := range b.matrices {
		out[k] = m
	}
	for k, v := range b.vectors {
		out[k] = v
	}
	return out
}

func (b *Bank) LastAnswer() string {
	return b.lastAnswer
}

func (b *Bank) SetLastAnswer(s string) {
	b.lastAnswer = s
}

// AnswerValue is the last answer as a number, or 0 when it is not one.
func (b *Bank) AnswerValue() float64 {
	v, err := strconv.ParseFloat(b.lastAnswer, 64)
	if err != nil {
		return 0
	}
	return v
}
