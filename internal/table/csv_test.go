package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := " 科目 ,期初余额,期末余额\n货币资金,100000,120000\n应付账款,50000,60000\n"

	tbl, err := ReadCSV(strings.NewReader(in), "bs")
	require.NoError(t, err)

	assert.Equal(t, []string{"科目", "期初余额", "期末余额"}, tbl.Columns, "headers are trimmed")
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "货币资金", tbl.Rows[0]["科目"])
	assert.Equal(t, "120000", tbl.Rows[0]["期末余额"])
	assert.True(t, tbl.HasColumn("科目"))
	assert.False(t, tbl.HasColumn("金额"))
}

func TestReadCSV_ShortRowsPadded(t *testing.T) {
	in := "a,b,c\n1,2\n"

	tbl, err := ReadCSV(strings.NewReader(in), "t")
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "", tbl.Rows[0]["c"])
}

func TestReadCSV_Empty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""), "t")
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestRegistry_UnknownExtension(t *testing.T) {
	_, err := DefaultRegistry().Open("statements.pdf", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no reader for "pdf"`)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(CSVReader{})
	assert.Panics(t, func() { r.Register(CSVReader{}) })
}

func TestErrorMessages(t *testing.T) {
	missing := &MissingColumnError{Table: "balance sheet", Column: "期末余额"}
	assert.Equal(t, `balance sheet: required column "期末余额" not found`, missing.Error())

	coercion := &TypeCoercionError{Table: "bs", Row: 3, Column: "金额", Value: "abc"}
	assert.Contains(t, coercion.Error(), "row 3")
	assert.Contains(t, coercion.Error(), `"abc"`)
}
