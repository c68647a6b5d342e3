package rex

import (
	"encoding/binary"
	"fmt"
)

// Instr is one instruction of a compiled Program. Fields are reused
// across Kinds the way wazero's interpreter reuses a single
// unionOperation{kind, us, rs, b1, b2, b3} struct for every WASM opcode;
// the comment on each Kind constant in opcode.go says which fields it
// reads.
type Instr struct {
	Kind Kind

	A      int // capture/counter index, repeat target, sub-program start, bound
	B      int // sub-program end (exclusive), counter bound
	Target int // jump / branch destination (instruction index)
	Min    int // KRepeatSimple lower bound
	Max    int // KRepeatSimple upper bound (sentinel means unbounded)

	Neg       bool // negate predicate / NotIn / case-insensitive / negative lookaround
	IncludeNL bool // negated predicate/class may still match '\n'
	Uni       bool // decode Bytes as UTF-8 runes rather than raw bytes
	Greed     Greed
	Pred      Pred

	Bytes []byte // literal run, 256-bit set (32 bytes), or class-list bytes
	Name  string // Unicode category or script name
	Rune  rune   // KChar literal value
}

// Program is an immutable, freely shareable compiled pattern (spec.md §5:
// "Compiled REX programs are immutable and freely shareable across
// threads for matching"). The zero value has no instructions;
// fallbackProgram builds the (KFail, KPass) program that Compile returns
// whenever it fails, so AMatch/Search remain safe to call per spec.md §4.1.
type Program struct {
	Instrs    []Instr
	NCapture  int // number of valid capture slots, including whole-match
	Mode      Mode
	reversed  bool
	srcLength int // length of the source pattern, for diagnostics only
}

// fallbackProgram is installed whenever compilation fails; it can never
// match (KFail always fails before the KPass is reached).
func fallbackProgram(mode Mode) *Program {
	return &Program{
		Instrs:   []Instr{{Kind: KFail}, {Kind: KPass}},
		NCapture: 1,
		Mode:     mode,
	}
}

// Empty reports whether p is the fallback "always fails" program,
// mirroring FXRex::empty().
func (p *Program) Empty() bool {
	return len(p.Instrs) == 2 && p.Instrs[0].Kind == KFail && p.Instrs[1].Kind == KPass
}

const (
	magicByte0 = 'R'
	magicByte1 = 'X'
	formatVer  = 1
)

// Serialize encodes the program as an opaque byte stream per spec.md
// §6.1. There is no prior art for this in original_source (FXRex never
// serializes its program); the format below is this module's own and is
// recorded as an Open Question resolution in DESIGN.md. Encoding is
// little-endian throughout, per spec.md §9's recommendation for any
// persisted format.
func (p *Program) Serialize() []byte {
	buf := make([]byte, 0, 16+len(p.Instrs)*24)
	buf = append(buf, magicByte0, magicByte1, formatVer)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(p.Mode))
	buf = append(buf, tmp[:]...)
	binary.LittleEndian.PutUint32(tmp[:], uint32(p.NCapture))
	buf = append(buf, tmp[:]...)
	binary.LittleEndian.PutUint32(tmp[:], uint32(len(p.Instrs)))
	buf = append(buf, tmp[:]...)
	for _, in := range p.Instrs {
		buf = append(buf, byte(in.Kind))
		var flags byte
		if in.Neg {
			flags |= 1
		}
		if in.IncludeNL {
			flags |= 2
		}
		if in.Uni {
			flags |= 4
		}
		buf = append(buf, flags, byte(in.Greed), byte(in.Pred))
		buf = appendInt32(buf, in.A)
		buf = appendInt32(buf, in.B)
		buf = appendInt32(buf, in.Target)
		buf = appendInt32(buf, in.Min)
		buf = appendInt32(buf, in.Max)
		buf = appendInt32(buf, int(in.Rune))
		buf = appendInt32(buf, len(in.Bytes))
		buf = append(buf, in.Bytes...)
		buf = appendInt32(buf, len(in.Name))
		buf = append(buf, in.Name...)
	}
	return buf
}

func appendInt32(buf []byte, v int) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(int32(v)))
	return append(buf, tmp[:]...)
}

// Deserialize parses a byte stream produced by Serialize.
func Deserialize(data []byte) (*Program, error) {
	if len(data) < 15 || data[0] != magicByte0 || data[1] != magicByte1 {
		return nil, fmt.Errorf("rex: not a serialized program")
	}
	if data[2] != formatVer {
		return nil, fmt.Errorf("rex: unsupported program format version %d", data[2])
	}
	off := 3
	readU32 := func() uint32 {
		v := binary.LittleEndian.Uint32(data[off:])
		off += 4
		return v
	}
	mode := Mode(readU32())
	ncap := int(readU32())
	n := int(readU32())
	p := &Program{Mode: mode, NCapture: ncap, Instrs: make([]Instr, n), reversed: mode.has(Reverse)}
	for i := 0; i < n; i++ {
		if off+7 > len(data) {
			return nil, fmt.Errorf("rex: truncated program")
		}
		var in Instr
		in.Kind = Kind(data[off])
		flags := data[off+1]
		in.Neg = flags&1 != 0
		in.IncludeNL = flags&2 != 0
		in.Uni = flags&4 != 0
		in.Greed = Greed(data[off+2])
		in.Pred = Pred(data[off+3])
		off += 4
		in.A = int(int32(readU32()))
		in.B = int(int32(readU32()))
		in.Target = int(int32(readU32()))
		in.Min = int(int32(readU32()))
		in.Max = int(int32(readU32()))
		in.Rune = rune(int32(readU32()))
		blen := int(readU32())
		if blen > 0 {
			if off+blen > len(data) {
				return nil, fmt.Errorf("rex: truncated program bytes")
			}
			in.Bytes = append([]byte(nil), data[off:off+blen]...)
			off += blen
		}
		nlen := int(readU32())
		if nlen > 0 {
			if off+nlen > len(data) {
				return nil, fmt.Errorf("rex: truncated program name")
			}
			in.Name = string(data[off : off+nlen])
			off += nlen
		}
		p.Instrs[i] = in
	}
	return p, nil
}
