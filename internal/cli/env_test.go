package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	e, err := LoadEnv()
	require.NoError(t, err)
	require.Equal(t, Env{Format: "term"}, e)

	t.Setenv("DATAGRID_FORMAT", "html")
	t.Setenv("DATAGRID_LIMIT", "25")
	t.Setenv("DATAGRID_DARK", "true")
	t.Setenv("DATAGRID_ENCODING", "iso-8859-1")
	e, err = LoadEnv()
	require.NoError(t, err)
	require.Equal(t, Env{Format: "html", Limit: 25, Dark: true, Encoding: "iso-8859-1"}, e)

	t.Setenv("DATAGRID_LIMIT", "many")
	e, err = LoadEnv()
	require.Error(t, err)
	require.Equal(t, Env{Format: "term"}, e)
}
