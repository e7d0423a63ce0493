package stark

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-starks-examples/internal/vybium-starks-examples/air"
)

// MinTraceLength is the shortest trace the engine can prove; one transition
// needs two rows
const MinTraceLength = 2

// ExecutionTrace is a rectangular table of field elements stored column by
// column. Rows are steps of the computation, columns are registers.
type ExecutionTrace struct {
	columns [][]field.Element
}

// NewExecutionTrace wraps column-major trace data. All columns must have the
// same length and that length must be a power of 2.
func NewExecutionTrace(columns [][]field.Element) (*ExecutionTrace, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("execution trace must have at least one column")
	}

	length := len(columns[0])
	for i, column := range columns {
		if len(column) != length {
			return nil, fmt.Errorf("column %d has %d rows, expected %d", i, len(column), length)
		}
	}

	if err := air.CheckTraceLength(length); err != nil {
		return nil, err
	}

	return &ExecutionTrace{columns: columns}, nil
}

// FillTrace builds a trace of the given shape. init sets the first row and
// update turns the row at step into the row at step+1 in place.
func FillTrace(width, length int, init func(state []field.Element), update func(step int, state []field.Element)) (*ExecutionTrace, error) {
	if width <= 0 {
		return nil, fmt.Errorf("trace width must be positive, got %d", width)
	}
	if err := air.CheckTraceLength(length); err != nil {
		return nil, err
	}

	columns := make([][]field.Element, width)
	for i := range columns {
		columns[i] = make([]field.Element, length)
	}

	state := make([]field.Element, width)
	for i := range state {
		state[i] = field.Zero
	}
	init(state)
	for step := 0; step < length; step++ {
		for col := 0; col < width; col++ {
			columns[col][step] = state[col]
		}
		if step < length-1 {
			update(step, state)
		}
	}

	return &ExecutionTrace{columns: columns}, nil
}

// Width returns the number of columns
func (t *ExecutionTrace) Width() int {
	return len(t.columns)
}

// Length returns the number of rows
func (t *ExecutionTrace) Length() int {
	return len(t.columns[0])
}

// Get returns the value in column at step
func (t *ExecutionTrace) Get(column, step int) field.Element {
	return t.columns[column][step]
}

// Row returns a copy of the row at step
func (t *ExecutionTrace) Row(step int) []field.Element {
	row := make([]field.Element, len(t.columns))
	for col := range t.columns {
		row[col] = t.columns[col][step]
	}
	return row
}

// LastRow returns a copy of the final row
func (t *ExecutionTrace) LastRow() []field.Element {
	return t.Row(t.Length() - 1)
}
