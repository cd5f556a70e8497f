package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `
# the three-version scenario
v1 = empty add a 1
v2 = v1 add b 2
v3 = v2 remove a
keys v1
keys v2
keys v3
get v1 a     # still 1 after v3 has been derived
has v3 a
size v2
print v2
`

func TestScenarioScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdict.session")
	defer teardown()
	//
	var out bytes.Buffer
	s := New(&out, AutoCheck(true))
	require.NoError(t, s.Run(strings.NewReader(scenario)))
	assert.Equal(t, "[a]\n[a b]\n[b]\n1\nfalse\n2\n{a:1 b:2}\n", out.String())
	assert.Equal(t, []string{"empty", "v1", "v2", "v3"}, s.Names())
}

func TestAssignments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdict.session")
	defer teardown()
	//
	var out bytes.Buffer
	s := New(&out)
	require.NoError(t, s.Exec("v = empty add k x"))
	require.NoError(t, s.Exec("w = v touch"))
	require.NoError(t, s.Exec("u = w remove nope"))
	v, ok := s.Version("v")
	require.True(t, ok)
	u, _ := s.Version("u")
	assert.Equal(t, v, u, "removal of an absent key yields the same version")
	require.NoError(t, s.Exec("get u nope"))
	assert.Equal(t, "<absent>\n", out.String())
}

func TestStatsAndDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdict.session")
	defer teardown()
	//
	var out bytes.Buffer
	s := New(&out)
	require.NoError(t, s.Run(strings.NewReader("a = empty add x 1\nb = a add y 2\nstats a\n")))
	assert.Equal(t, "size=1 table=2 edits=2 rotations=0 distance=1\n", out.String())
	out.Reset()
	require.NoError(t, s.Exec("dump a"))
	assert.Contains(t, out.String(), "inserted(y, was absent)")
	out.Reset()
	require.NoError(t, s.Exec("check"))
	assert.Equal(t, "ok\n", out.String())
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdict.session")
	defer teardown()
	//
	s := New(&bytes.Buffer{})
	for _, c := range []struct {
		stmt string
		err  error
	}{
		{"x = nowhere add a 1", ErrUnknownVersion},
		{"empty = empty add a 1", ErrReadOnly},
		{"x = empty add a", ErrSyntax},
		{"x = empty", ErrSyntax},
		{"frobnicate empty", ErrSyntax},
		{"get empty", ErrSyntax},
		{"size ghost", ErrUnknownVersion},
	} {
		err := s.Exec(c.stmt)
		assert.ErrorIs(t, err, c.err, "statement %q", c.stmt)
	}
	err := s.Run(strings.NewReader("a = empty add k v\n\nkeys b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 10", "line numbers count across calls")
}
