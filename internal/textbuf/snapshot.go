package textbuf

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// Snapshot is the opaque, serialisable buffer state spec.md §1's
// Non-goals allow ("no persistent on-disk format beyond an opaque
// serialisable snapshot"). It captures content, styling, and the modes
// that affect reflow, but not the undo history, cursor, or selection —
// those are session-local, not part of a buffer's persisted identity.
type Snapshot struct {
	ID          uuid.UUID
	Text        []byte
	Style       []byte // nil if the buffer was unstyled
	TabColumns  int
	WrapColumns int
	WordWrap    bool
	FixedWrap   bool
}

// Snapshot captures the buffer's current persisted state.
func (b *Buffer) Snapshot() Snapshot {
	s := Snapshot{
		ID:          b.id,
		Text:        b.GetText(),
		TabColumns:  b.tabColumns,
		WrapColumns: b.wrapColumns,
		WordWrap:    b.wordWrap,
		FixedWrap:   b.fixedWrap,
	}
	if b.styled {
		s.Style = make([]byte, b.length)
		for i := 0; i < b.length; i++ {
			s.Style[i] = b.StyleAt(i)
		}
	}
	return s
}

// Restore replaces the buffer's content and mode flags from a Snapshot,
// preserving the snapshot's session id.
func (b *Buffer) Restore(s Snapshot) {
	b.id = s.ID
	b.tabColumns = s.TabColumns
	b.wrapColumns = s.WrapColumns
	b.wordWrap = s.WordWrap
	b.fixedWrap = s.FixedWrap
	b.SetStyled(s.Style != nil)
	b.SetText(s.Text)
	if s.Style != nil {
		for i, st := range s.Style {
			b.changeStyleByte(i, st)
		}
	}
}

func (b *Buffer) changeStyleByte(pos int, style byte) {
	if b.styled {
		b.style[b.phys(pos)] = style
	}
}

const (
	snapMagic0 = 'G'
	snapMagic1 = 'M'
	snapVer    = 1
)

// Serialize encodes the snapshot as an opaque byte stream: a 16-byte
// session id, mode flags, then length-prefixed text and style blobs,
// little-endian throughout (the same convention internal/rex's program
// serialisation uses).
func (s Snapshot) Serialize() []byte {
	buf := make([]byte, 0, 32+len(s.Text)+len(s.Style))
	buf = append(buf, snapMagic0, snapMagic1, snapVer)
	idBytes, _ := s.ID.MarshalBinary()
	buf = append(buf, idBytes...)
	var flags byte
	if s.WordWrap {
		flags |= 1
	}
	if s.FixedWrap {
		flags |= 2
	}
	buf = append(buf, flags)
	buf = appendU32(buf, uint32(s.TabColumns))
	buf = appendU32(buf, uint32(s.WrapColumns))
	buf = appendU32(buf, uint32(len(s.Text)))
	buf = append(buf, s.Text...)
	buf = appendU32(buf, uint32(len(s.Style)))
	buf = append(buf, s.Style...)
	return buf
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// DeserializeSnapshot parses a byte stream produced by Serialize.
func DeserializeSnapshot(data []byte) (Snapshot, bool) {
	var s Snapshot
	if len(data) < 3+16+1+12 || data[0] != snapMagic0 || data[1] != snapMagic1 || data[2] != snapVer {
		return s, false
	}
	off := 3
	id, err := uuid.FromBytes(data[off : off+16])
	if err != nil {
		return s, false
	}
	s.ID = id
	off += 16
	flags := data[off]
	s.WordWrap = flags&1 != 0
	s.FixedWrap = flags&2 != 0
	off++
	readU32 := func() uint32 {
		v := binary.LittleEndian.Uint32(data[off:])
		off += 4
		return v
	}
	s.TabColumns = int(readU32())
	s.WrapColumns = int(readU32())
	tlen := int(readU32())
	if off+tlen > len(data) {
		return Snapshot{}, false
	}
	s.Text = append([]byte(nil), data[off:off+tlen]...)
	off += tlen
	if off+4 > len(data) {
		return Snapshot{}, false
	}
	slen := int(readU32())
	if off+slen > len(data) {
		return Snapshot{}, false
	}
	if slen > 0 {
		s.Style = append([]byte(nil), data[off:off+slen]...)
	}
	return s, true
}
