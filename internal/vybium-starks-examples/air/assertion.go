package air

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// AssertionKind distinguishes the three assertion shapes
type AssertionKind int

const (
	// KindSingle pins one cell of the trace
	KindSingle AssertionKind = iota

	// KindPeriodic pins one column every Stride steps to the same value
	KindPeriodic

	// KindSequence pins one column every Stride steps to consecutive values
	// and must span the whole trace
	KindSequence
)

// String returns the kind name
func (k AssertionKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindPeriodic:
		return "periodic"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("AssertionKind(%d)", int(k))
	}
}

// Assertion is a boundary condition placed against a column of an execution
// trace. Assertions are immutable once created.
type Assertion struct {
	kind      AssertionKind
	column    int
	firstStep int
	stride    int
	values    []field.Element
}

// Single creates an assertion that the value in column at step equals value
func Single(column, step int, value field.Element) Assertion {
	if column < 0 || step < 0 {
		panic(fmt.Sprintf("assertion column and step must be non-negative, got column %d, step %d", column, step))
	}
	return Assertion{
		kind:      KindSingle,
		column:    column,
		firstStep: step,
		stride:    0,
		values:    []field.Element{value},
	}
}

// Periodic creates an assertion that column equals value at steps
// firstStep, firstStep+stride, firstStep+2*stride, ...
//
// Stride must be a power of 2 greater than 1 and firstStep must be smaller
// than stride.
func Periodic(column, firstStep, stride int, value field.Element) Assertion {
	validateStride(column, firstStep, stride)
	return Assertion{
		kind:      KindPeriodic,
		column:    column,
		firstStep: firstStep,
		stride:    stride,
		values:    []field.Element{value},
	}
}

// Sequence creates an assertion that column holds values[i] at step
// firstStep + i*stride. The assertion implies a trace of exactly
// len(values)*stride steps.
//
// Stride and len(values) must both be powers of 2 greater than 1, and
// firstStep must be smaller than stride.
func Sequence(column, firstStep, stride int, values []field.Element) Assertion {
	validateStride(column, firstStep, stride)
	if len(values) < 2 || !isPowerOfTwo(len(values)) {
		panic(fmt.Sprintf("number of asserted values must be a power of 2 greater than 1, got %d", len(values)))
	}
	return Assertion{
		kind:      KindSequence,
		column:    column,
		firstStep: firstStep,
		stride:    stride,
		values:    append([]field.Element(nil), values...),
	}
}

func validateStride(column, firstStep, stride int) {
	if column < 0 || firstStep < 0 {
		panic(fmt.Sprintf("assertion column and step must be non-negative, got column %d, step %d", column, firstStep))
	}
	if stride < 2 || !isPowerOfTwo(stride) {
		panic(fmt.Sprintf("stride must be a power of 2 greater than 1, got %d", stride))
	}
	if firstStep >= stride {
		panic(fmt.Sprintf("first step must be smaller than stride %d, got %d", stride, firstStep))
	}
}

// Kind returns the assertion shape
func (a Assertion) Kind() AssertionKind {
	return a.kind
}

// Column returns the index of the asserted column
func (a Assertion) Column() int {
	return a.column
}

// FirstStep returns the first asserted step
func (a Assertion) FirstStep() int {
	return a.firstStep
}

// Stride returns the distance between asserted steps (0 for single assertions)
func (a Assertion) Stride() int {
	return a.stride
}

// Values returns a copy of the asserted values
func (a Assertion) Values() []field.Element {
	return append([]field.Element(nil), a.values...)
}

// Check validates that the assertion can be placed against a trace of the
// given width and length.
//
// Checks run in this order and only the first violation is reported:
// width, power-of-two length, then the exact length for sequence assertions
// or the minimum length for single and periodic assertions.
// The returned error is always an *AssertionError.
func (a Assertion) Check(traceWidth, traceLength int) error {
	if a.column >= traceWidth {
		return &AssertionError{Kind: TraceWidthTooShort, Expected: a.column + 1, Actual: traceWidth}
	}

	if err := CheckTraceLength(traceLength); err != nil {
		return err
	}

	switch a.kind {
	case KindSequence:
		expected := len(a.values) * a.stride
		if expected != traceLength {
			return &AssertionError{Kind: TraceLengthNotExact, Expected: expected, Actual: traceLength}
		}
	case KindPeriodic:
		required := a.firstStep + 1
		if a.stride > required {
			required = a.stride
		}
		if required > traceLength {
			return &AssertionError{Kind: TraceLengthTooShort, Expected: required, Actual: traceLength}
		}
	default:
		if a.firstStep >= traceLength {
			return &AssertionError{Kind: TraceLengthTooShort, Expected: a.firstStep + 1, Actual: traceLength}
		}
	}

	return nil
}

// CheckTraceLength validates the trace length independently of any
// assertion. It can be run once per trace.
func CheckTraceLength(traceLength int) error {
	if !isPowerOfTwo(traceLength) {
		return &AssertionError{Kind: TraceLengthNotPowerOfTwo, Actual: traceLength}
	}
	return nil
}

// Steps returns every step the assertion pins in a trace of the given length.
// The assertion must have passed Check for that length.
func (a Assertion) Steps(traceLength int) []int {
	if a.kind == KindSingle {
		return []int{a.firstStep}
	}
	steps := make([]int, 0, traceLength/a.stride)
	for step := a.firstStep; step < traceLength; step += a.stride {
		steps = append(steps, step)
	}
	return steps
}

// ValueAt returns the value the assertion expects at step, and false if the
// assertion does not cover that step
func (a Assertion) ValueAt(step int) (field.Element, bool) {
	switch a.kind {
	case KindSingle:
		if step == a.firstStep {
			return a.values[0], true
		}
	case KindPeriodic:
		if step >= a.firstStep && (step-a.firstStep)%a.stride == 0 {
			return a.values[0], true
		}
	case KindSequence:
		if step >= a.firstStep && (step-a.firstStep)%a.stride == 0 {
			i := (step - a.firstStep) / a.stride
			if i < len(a.values) {
				return a.values[i], true
			}
		}
	}
	return field.Zero, false
}

// String returns a human-readable representation of the assertion
func (a Assertion) String() string {
	switch a.kind {
	case KindSingle:
		return fmt.Sprintf("trace(%d, %d) == %d", a.column, a.firstStep, a.values[0].Value())
	case KindPeriodic:
		return fmt.Sprintf("trace(%d, %d + k*%d) == %d", a.column, a.firstStep, a.stride, a.values[0].Value())
	default:
		return fmt.Sprintf("trace(%d, %d + k*%d) == values[k] (%d values)", a.column, a.firstStep, a.stride, len(a.values))
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
