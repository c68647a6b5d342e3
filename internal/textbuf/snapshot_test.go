package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	b := NewBuffer()
	b.SetTabColumns(4)
	b.SetWrapColumns(40)
	b.SetWordWrap(true)
	b.InsertText(0, []byte("hello\nworld"))

	snap := b.Snapshot()

	other := NewBuffer()
	other.Restore(snap)
	assert.Equal(t, "hello\nworld", string(other.GetText()))
	assert.Equal(t, snap.ID, other.ID())
}

func TestSnapshotSerializeDeserialize(t *testing.T) {
	b := NewBuffer()
	b.InsertText(0, []byte("some text\nacross lines"))
	snap := b.Snapshot()

	data := snap.Serialize()
	got, ok := DeserializeSnapshot(data)
	require.True(t, ok)
	assert.Equal(t, snap.ID, got.ID)
	assert.Equal(t, snap.Text, got.Text)
	assert.Equal(t, snap.TabColumns, got.TabColumns)
	assert.Equal(t, snap.WrapColumns, got.WrapColumns)
}

func TestDeserializeSnapshotRejectsGarbage(t *testing.T) {
	_, ok := DeserializeSnapshot([]byte("not a snapshot"))
	assert.False(t, ok)
}
