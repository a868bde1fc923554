package prompt

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(lines ...string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(strings.Join(lines, "\n")+"\n"), out), out
}

func TestReadMenuChoice_AcceptsOneToThree(t *testing.T) {
	for _, want := range []int{1, 2, 3} {
		p, out := newTestPrompter(strconv.Itoa(want))

		got, err := p.ReadMenuChoice()

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotContains(t, out.String(), MenuError)
	}
}

func TestReadMenuChoice_RejectsThenAccepts(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	p, out := newTestPrompter("0", "4", "-1", "abc", "2")

	// --- Act ---
	got, err := p.ReadMenuChoice()

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 4, strings.Count(out.String(), MenuError))
	assert.Equal(t, 5, strings.Count(out.String(), "1 - Data Entry"), "menu is re-printed before every attempt")
}

func TestReadPlayerNumber(t *testing.T) {
	t.Parallel()

	for n := 1; n <= MaxPlayer; n++ {
		p, _ := newTestPrompter(strconv.Itoa(n))
		got, err := p.ReadPlayerNumber()
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	p, out := newTestPrompter("0", "13", "-5", "seven", " 7 ")
	got, err := p.ReadPlayerNumber()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 4, strings.Count(out.String(), PlayerError))
	assert.Equal(t, 5, strings.Count(out.String(), PlayerPrompt))
}

func TestReadAtBatsAndHits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		read     func(*Prompter) (int, error)
		errorMsg string
	}{
		{name: "at bats", read: (*Prompter).ReadAtBats, errorMsg: AtBatsError},
		{name: "hits", read: (*Prompter).ReadHits, errorMsg: HitsError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, out := newTestPrompter("-1", "2.5", "", "0")

			got, err := tc.read(p)

			require.NoError(t, err)
			assert.Equal(t, 0, got)
			assert.Equal(t, 3, strings.Count(out.String(), tc.errorMsg))
			assert.Contains(t, out.String(), "\n"+tc.errorMsg+"\n")
		})
	}
}

func TestReadContinue(t *testing.T) {
	t.Parallel()

	testCases := map[string]bool{
		"Y":   true,
		"y":   true,
		" y ": true,
		"N":   false,
		"yes": false,
		"":    false,
	}

	for input, want := range testCases {
		p, _ := newTestPrompter(input)
		got, err := p.ReadContinue()
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestRead_EndOfInput(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("abc\n"), io.Discard)

	_, err := p.ReadMenuChoice()
	require.ErrorIs(t, err, io.EOF)

	require.ErrorIs(t, p.WaitForEnter(), io.EOF)
	_, err = p.ReadContinue()
	require.ErrorIs(t, err, io.EOF)
}

func TestWaitForEnter_AcceptsAnyLine(t *testing.T) {
	t.Parallel()

	p, _ := newTestPrompter("whatever", "3")

	require.NoError(t, p.WaitForEnter())
	got, err := p.ReadMenuChoice()
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestReadMenuChoice_OverLongLineIsMalformedInput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Longer than bufio's default 64 KiB token size.
	p, out := newTestPrompter(strings.Repeat("x", 70000), "3")

	// --- Act ---
	got, err := p.ReadMenuChoice()

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, 1, strings.Count(out.String(), MenuError))
}

func TestReadLine_UnterminatedFinalLine(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("7\r\n12"), io.Discard)

	first, err := p.ReadPlayerNumber()
	require.NoError(t, err)
	second, err := p.ReadPlayerNumber()
	require.NoError(t, err)

	assert.Equal(t, []int{7, 12}, []int{first, second})
}
