package logisim

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportHeaderAndTokenCount(t *testing.T) {
	var img [256]byte
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, img))

	lines := strings.SplitN(buf.String(), "\n", 2)
	require.Equal(t, "v2.0 raw", lines[0])

	tokens := strings.Fields(lines[1])
	require.Len(t, tokens, 256)
	for _, tok := range tokens {
		require.Equal(t, "0", tok)
	}
}

func TestExportLowercaseNoPadding(t *testing.T) {
	var img [256]byte
	img[0] = 0xAB
	img[1] = 0x0F
	img[2] = 0x01

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, img))

	tokens := strings.Fields(strings.SplitN(buf.String(), "\n", 2)[1])
	require.Equal(t, "ab", tokens[0])
	require.Equal(t, "f", tokens[1])
	require.Equal(t, "1", tokens[2])
}
