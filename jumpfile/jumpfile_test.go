package jumpfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppath/gridgraph"
	"github.com/katalvlaran/jumppath/jumpfile"
)

const twoProblems = `3 3 0 0 2 2
1 1 1
1 1 1
1 1 1

1 1 0 0 0 0
0
0
this line is never read
`

func TestParse(t *testing.T) {
	problems, err := jumpfile.Parse(strings.NewReader(twoProblems))
	require.NoError(t, err)
	require.Len(t, problems, 2)

	assert.Equal(t, [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, problems[0].Matrix)
	assert.Equal(t, gridgraph.Pos{Row: 0, Col: 0}, problems[0].Start)
	assert.Equal(t, gridgraph.Pos{Row: 2, Col: 2}, problems[0].Goal)

	assert.Equal(t, [][]int{{0}}, problems[1].Matrix)
	assert.Equal(t, problems[1].Start, problems[1].Goal)
}

func TestParse_NoTerminator(t *testing.T) {
	problems, err := jumpfile.Parse(strings.NewReader("1 2 0 0 0 1\n1 0"))
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, [][]int{{1, 0}}, problems[0].Matrix)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  string
	}{
		{"ShortHeader", "2 2 0 0 1\n", "line 1"},
		{"BadHeader", "2 x 0 0 1 1\n", "line 1"},
		{"ZeroRows", "0 3 0 0 0 0\n", "line 1"},
		{"ShortRow", "2 2 0 0 1 1\n1 1\n1\n", "line 3"},
		{"BadCell", "1 2 0 0 0 1\n1 ?\n", "line 2"},
		{"Truncated", "\n3 1 0 0 2 0\n1\n", "line 3"},
		{"HugeRowCount", "9223372036854775807 1 0 0 0 0\n1\n0\n", "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := jumpfile.Parse(strings.NewReader(tc.input))
			require.ErrorIs(t, err, jumpfile.ErrMalformed)
			assert.ErrorIs(t, err, gridgraph.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestParse_NoProblems(t *testing.T) {
	for _, input := range []string{"", "\n\n", "0\n1 1 0 0 0 0\n0\n"} {
		_, err := jumpfile.Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, jumpfile.ErrNoProblems, "input %q", input)
	}
}

func TestWrite_ParsesBack(t *testing.T) {
	in := []jumpfile.Problem{
		{Matrix: [][]int{{2, 0, 1}, {1, 3, 0}}, Start: gridgraph.Pos{Row: 1, Col: 0}, Goal: gridgraph.Pos{Row: 0, Col: 2}},
		{Matrix: [][]int{{0}}},
	}
	var buf bytes.Buffer
	require.NoError(t, jumpfile.Write(&buf, in))
	assert.Equal(t, "2 3 1 0 0 2\n2 0 1\n1 3 0\n1 1 0 0 0 0\n0\n0\n", buf.String())

	out, err := jumpfile.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(twoProblems), 0o600))

	problems, err := jumpfile.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, problems, 2)

	_, err = jumpfile.ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProblem_Graph(t *testing.T) {
	problems, err := jumpfile.Parse(strings.NewReader(twoProblems))
	require.NoError(t, err)

	g, err := problems[0].Graph()
	require.NoError(t, err)
	assert.Equal(t, problems[0].String(), g.String())

	bad := jumpfile.Problem{Matrix: [][]int{{1}}, Goal: gridgraph.Pos{Row: 4}}
	_, err = bad.Graph()
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}
