package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	tbl := NewTable("STEP", "RESULT").
		Row("package.json", "created").
		Row("scripts", "added")

	out := tbl.String()

	assert.Contains(t, out, "STEP")
	assert.Contains(t, out, "RESULT")
	assert.Contains(t, out, "package.json")
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "added")
}

func TestTable_Empty(t *testing.T) {
	tbl := NewTable("A", "B")

	out := tbl.String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "B")
}
