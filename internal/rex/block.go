package rex

// block is a self-contained run of instructions whose Target/A/B
// "pointer" fields are relative to index 0 of the block itself (a
// pointer value equal to len(block) means "the instruction right after
// this block"). Building programs out of blocks and concatenating them
// with concat is this compiler's answer to spec.md §9's suggestion to
// "emit into a builder and resolve forward jumps via a pass-2 fixup
// table" instead of FXRex.cpp's in-place memmove/insert technique: each
// syntactic construct (an alternation, a quantified atom, a group) is
// compiled bottom-up into its own block with purely local offsets, and
// concat's only job is to add a constant shift to every pointer field
// as blocks are assembled into the final flat Program.
type block []Instr

// relocatable reports the pointer-valued fields (Target, and A/B when
// used as sub-program bounds or an atom index) instructions of this Kind
// carry, each in instruction-index units local to the Instr's block.
//
// Because concat applies this shift once per nesting level, the total
// shift an instruction accumulates by the time it reaches its final,
// fully-assembled block equals the absolute index its own immediate
// single()/literal block started at. An instruction built at local
// offset 0 of that block (a loop head, KRepeatSimple) can therefore
// author its pointer as the absolute local index it targets and the
// shift leaves it untouched. An instruction built at a nonzero offset
// must instead author its pointer as a delta from its own position
// (target-minus-self), so the accumulated shift lands it on the same
// absolute index.
func relocate(in *Instr, delta int) {
	switch in.Kind {
	case KJump, KBranch, KBranchRev, KCounterJumpLT:
		in.Target += delta
	case KAtomic, KLookahead, KLookbehind:
		in.A += delta
		in.B += delta
	case KRepeatSimple:
		in.A += delta
	}
}

func concat(blocks ...block) block {
	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	out := make(block, 0, total)
	offset := 0
	for _, b := range blocks {
		for _, in := range b {
			relocate(&in, offset)
			out = append(out, in)
		}
		offset += len(b)
	}
	return out
}

func single(in Instr) block { return block{in} }
