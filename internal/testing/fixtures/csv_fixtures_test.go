package fixtures

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	path := WriteCSV(t, "A,B,a@x.com,1,Go")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header+"\nA,B,a@x.com,1,Go\n", string(data))
}

func TestHeaderOnly(t *testing.T) {
	data, err := os.ReadFile(HeaderOnly(t))
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", string(data))
}
