package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScriptDeclareAndPostLines(t *testing.T) {
	src := `
# a comment
declare X real
declare Y real(0,10)
declare B boolean

post X + Y == 1
post X - Y == 1
`
	sc, err := parseScript(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, sc.declares, 3)
	require.Len(t, sc.posts, 2)
	require.Equal(t, "X", sc.declares[0].name)
	require.Equal(t, "Y", sc.declares[1].name)
	require.True(t, sc.declares[1].hasBounds)
	require.Equal(t, "B", sc.declares[2].name)
	require.True(t, sc.declares[2].bool)
	require.Equal(t, "X + Y == 1", sc.posts[0])
}

func TestParseScriptRejectsUnrecognizedStatement(t *testing.T) {
	_, err := parseScript(strings.NewReader("frobnicate X"))
	require.Error(t, err)
}
