package insts

const (
	int24Modulo = 1 << 24
	int24Max    = 1<<23 - 1
)

// isBranchExchange checks for BX.
// Format: cond | 0001 0010 1111 1111 1111 0001 | Rm
func isBranchExchange(word uint32) bool {
	return word&0x0FFFFFF0 == 0x012FFF10
}

// decodeBranchExchange decodes BX.
func decodeBranchExchange(word uint32) BranchExchange {
	return BranchExchange{Rm: reg(word, 0)}
}

// isBranch checks for B and BL.
// Format: cond | 101 | L | offset24
func isBranch(word uint32) bool {
	return word&0x0E000000 == 0x0A000000
}

// decodeBranch decodes B and BL instructions.
func decodeBranch(word uint32) (Op, Branch) {
	link := flag(word, 24)                  // bit 24: 0=B, 1=BL
	offset := SignExtend24(word & 0xFFFFFF) // bits [23:0]

	if link {
		return OpBL, Branch{Offset: offset}
	}
	return OpB, Branch{Offset: offset}
}

// SignExtend24 interprets the low 24 bits of v as a two's-complement value.
// Bits above 23 are ignored.
func SignExtend24(v uint32) int32 {
	v &= 0xFFFFFF
	if v > int24Max {
		return int32(v) - int24Modulo
	}
	return int32(v)
}
