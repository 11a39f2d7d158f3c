package cli

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	global := flag.NewFlagSet("ledgerctl", flag.ContinueOnError)
	global.String("output", "term", "")

	root := NewApp(nil).Completion(global)

	assert.Contains(t, root.Flags, "output")
	require.Len(t, root.Sub, 4)
	for _, name := range []string{"normalize", "balance", "format", "import"} {
		assert.Contains(t, root.Sub, name)
	}

	normalize := root.Sub["normalize"]
	assert.Equal(t, flagValues["type"], normalize.Flags["type"])
	assert.Contains(t, normalize.Flags, "current")

	imp := root.Sub["import"]
	for _, name := range []string{"date", "amount", "credit", "debit", "description", "json-path"} {
		assert.Contains(t, imp.Flags, name)
	}
	assert.NotNil(t, imp.Args)
	assert.Nil(t, root.Sub["format"].Args)
}
