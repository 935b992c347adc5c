package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(l ...string) io.Reader {
	return strings.NewReader(strings.Join(l, "\n") + "\n")
}

func run(t *testing.T, in io.Reader) (*result.Collection, string) {
	t.Helper()
	var out bytes.Buffer
	coll, err := NewSession(in, &out, detailing.DefaultPolicy(), result.NewCollection()).Run()
	require.NoError(t, err)
	return coll, out.String()
}

func TestPrompter_Positive(t *testing.T) {
	var out bytes.Buffer
	p := New(lines("abc", "-3", "0", "12.5"), &out)

	v, err := p.Positive("d: ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)
	assert.Equal(t, 3, strings.Count(out.String(), "Please enter a valid positive number."))
}

func TestPrompter_RejectsNonFinite(t *testing.T) {
	var out bytes.Buffer
	p := New(lines("nan", "inf", "-inf", "+Inf", "0", "2"), &out)

	v, err := p.NonNegative("w: ")
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 4, strings.Count(out.String(), "Please enter a number of zero or more."))

	out.Reset()
	p = New(lines("NaN", "Infinity", "4000"), &out)
	v, err = p.Positive("L: ")
	require.NoError(t, err)
	assert.Equal(t, 4000.0, v)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a valid positive number."))
}

func TestPrompter_Back(t *testing.T) {
	p := New(lines("BACK"), io.Discard)
	_, err := p.Positive("d: ")
	assert.ErrorIs(t, err, ErrBack)

	p = New(strings.NewReader(""), io.Discard)
	_, err = p.Text("name: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Choices(t *testing.T) {
	p := New(lines("3", "4", "x", "", "N"), io.Discard)

	legs, err := p.OneOf("legs: ", 2, 4, 6)
	require.NoError(t, err)
	assert.Equal(t, 4, legs)

	yes, err := p.YesNo("ok? ")
	require.NoError(t, err)
	assert.False(t, yes)
}

func TestSession_TopSteel(t *testing.T) {
	coll, out := run(t, lines(
		"1", "B1", "4000", "2",
		"300", "450",
		"230", "300",
		"1", "12", "3",
		"6",
	))
	require.Equal(t, 1, coll.Len())
	rec := coll.Records()[0].(result.BeamBar)
	assert.Equal(t, result.TopSteel, rec.Category())
	assert.Equal(t, "B1", rec.BeamNo)
	assert.Equal(t, 5016.0, rec.CuttingLength)
	assert.Contains(t, out, "Added 1 record(s)")
}

func TestSession_BackDiscardsFlow(t *testing.T) {
	coll, out := run(t, lines("2", "B1", "4000", "back", "6"))
	assert.Zero(t, coll.Len())
	assert.Contains(t, out, "Discarded")
}

func TestSession_InvalidInputReprompts(t *testing.T) {
	coll, out := run(t, lines(
		"4", "B1",
		"3", "2", // legs
		"-5", "abc", "230",
		"450", "4000",
		"1", "150",
		"8",
		"6",
	))
	require.Equal(t, 1, coll.Len())
	rec := coll.Records()[0].(result.Stirrup)
	assert.Equal(t, 26, rec.Count)
	assert.Contains(t, out, "Please enter one of 2, 4, 6.")
	assert.Equal(t, 2, strings.Count(out, "Please enter a valid positive number."))
}

func TestSession_CantileverAndSlab(t *testing.T) {
	coll, _ := run(t, lines(
		"3", "C1", "2", "2000", "1", "16", "2",
		"5", "1", "3000", "4000", "3000", "1000", "230", "230", "150", "150", "1", "10", "1",
		"6",
	))
	require.Equal(t, 2, coll.Len())
	recs := coll.Records()
	assert.Equal(t, 2300.0, recs[0].CutLength())
	assert.Equal(t, 27, recs[1].(result.SlabBars).MainBars)
}

func TestSession_CalculationErrorKeepsCollection(t *testing.T) {
	coll, out := run(t, lines(
		"2", "B2", "3000", "0", "1", "10", "2",
		"5", "2",
		"6",
	))
	assert.Equal(t, 1, coll.Len())
	assert.Equal(t, 1, strings.Count(out, "Error: "))
	assert.Contains(t, out, "unsupported configuration")
}

func TestSession_SlabRepromptsLongerSpan(t *testing.T) {
	coll, out := run(t, lines(
		"5", "1", "4000",
		"3000", "5000",
		"3000", "1000", "230", "230", "150", "150", "1", "10", "1",
		"6",
	))
	require.Equal(t, 1, coll.Len())
	rec := coll.Records()[0].(result.SlabBars)
	// floor(5000/150 + 1)
	assert.Equal(t, 34, rec.MainBars)
	assert.Equal(t, 1, strings.Count(out, "Span y must be at least span x (4000 mm)."))
	assert.NotContains(t, out, "Error: ")
}

func TestSession_EndOfInput(t *testing.T) {
	coll, _ := run(t, lines("1", "B1", "4000"))
	assert.Zero(t, coll.Len())
}
