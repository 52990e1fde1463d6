package ledger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSnapshotFormatsFourDecimalPlaces(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.Process(deposit(1, 1, 1.5)))
	require.NoError(t, e.Process(deposit(2, 2, 2.0)))

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, e.Snapshot()))

	want := "client, available, held, total, locked\n" +
		"1, 1.5000, 0.0000, 1.5000, false\n" +
		"2, 2.0000, 0.0000, 2.0000, false\n"
	assert.Equal(t, want, buf.String())
}
