package insts

// isMultiply checks for MUL and MLA.
// Format: cond | 000000 | A | S | Rd | Rn | Rs | 1001 | Rm
func isMultiply(word uint32) bool {
	return word&0x0FC000F0 == 0x00000090
}

// decodeMultiply decodes MUL and MLA.
func decodeMultiply(word uint32) (Op, Multiply) {
	m := Multiply{
		Accumulate: flag(word, 21),
		SetFlags:   flag(word, 20),
		Rd:         reg(word, 16),
		Rn:         reg(word, 12),
		Rs:         reg(word, 8),
		Rm:         reg(word, 0),
	}

	if m.Accumulate {
		return OpMLA, m
	}
	return OpMUL, m
}

// isMultiplyLong checks for the 64-bit result multiplies.
// Format: cond | 00001 | U | A | S | RdHi | RdLo | Rs | 1001 | Rm
func isMultiplyLong(word uint32) bool {
	return word&0x0F8000F0 == 0x00800090
}

// decodeMultiplyLong decodes UMULL, UMLAL, SMULL and SMLAL.
func decodeMultiplyLong(word uint32) (Op, MultiplyLong) {
	m := MultiplyLong{
		Signed:     flag(word, 22),
		Accumulate: flag(word, 21),
		SetFlags:   flag(word, 20),
		RdHi:       reg(word, 16),
		RdLo:       reg(word, 12),
		Rs:         reg(word, 8),
		Rm:         reg(word, 0),
	}

	switch {
	case m.Signed && m.Accumulate:
		return OpSMLAL, m
	case m.Signed:
		return OpSMULL, m
	case m.Accumulate:
		return OpUMLAL, m
	default:
		return OpUMULL, m
	}
}

// isSwap checks for SWP.
// Format: cond | 00010 | B | 00 | Rn | Rd | 0000 1001 | Rm
func isSwap(word uint32) bool {
	return word&0x0FB00FF0 == 0x01000090
}

// decodeSwap decodes SWP and SWPB.
func decodeSwap(word uint32) Swap {
	return Swap{
		Byte: flag(word, 22),
		Rn:   reg(word, 16),
		Rd:   reg(word, 12),
		Rm:   reg(word, 0),
	}
}
