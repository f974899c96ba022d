package insts

// isSingleTransfer checks for LDR and STR.
// Format: cond | 01 | I | P | U | B | W | L | Rn | Rd | offset
//
// With I == 1 bit 4 must be clear; cond | 011 | xxxx xxxx xxxx xxxx xxx1 | xxxx
// is the architecturally undefined space.
func isSingleTransfer(word uint32) bool {
	if word&0x0C000000 != 0x04000000 {
		return false
	}
	return word&0x02000010 != 0x02000010
}

// decodeSingleTransfer decodes LDR and STR.
func decodeSingleTransfer(word uint32) (Op, SingleTransfer) {
	t := SingleTransfer{
		PreIndex:  flag(word, 24),
		Up:        flag(word, 23),
		Byte:      flag(word, 22),
		WriteBack: flag(word, 21),
		Rn:        reg(word, 16),
		Rd:        reg(word, 12),
	}

	if flag(word, 25) {
		t.Offset = Offset{
			Kind:  OffsetRegister,
			Rm:    reg(word, 0),
			Shift: uint8((word >> 4) & 0xFF),
		}
	} else {
		t.Offset = Offset{
			Kind: OffsetImmediate,
			Imm:  uint16(word & 0xFFF),
		}
	}

	if flag(word, 20) {
		return OpLDR, t
	}
	return OpSTR, t
}

// isHalfwordTransfer checks for the halfword and signed byte transfers.
// Register: cond | 000 | P | U | 0 | W | L | Rn | Rd | 0000 | 1 | S | H | 1 | Rm
// Immediate: cond | 000 | P | U | 1 | W | L | Rn | Rd | immHi | 1 | S | H | 1 | immLo
//
// SH == 00 belongs to multiply and swap. Stores only exist for SH == 01.
func isHalfwordTransfer(word uint32) bool {
	if word&0x0E000090 != 0x00000090 {
		return false
	}

	sh := (word >> 5) & 0x3
	load := flag(word, 20)
	if sh == 0 || (!load && sh != 0b01) {
		return false
	}

	if !flag(word, 22) && word&0x00000F00 != 0 {
		return false
	}
	return true
}

// decodeHalfwordTransfer decodes LDRH, STRH, LDRSB and LDRSH.
func decodeHalfwordTransfer(word uint32) (Op, HalfwordTransfer) {
	t := HalfwordTransfer{
		PreIndex:  flag(word, 24),
		Up:        flag(word, 23),
		Immediate: flag(word, 22),
		WriteBack: flag(word, 21),
		Rn:        reg(word, 16),
		Rd:        reg(word, 12),
	}

	if t.Immediate {
		t.Imm = uint8((word>>4)&0xF0 | word&0xF)
	} else {
		t.Rm = reg(word, 0)
	}

	sh := (word >> 5) & 0x3
	switch {
	case !flag(word, 20):
		return OpSTRH, t
	case sh == 0b01:
		return OpLDRH, t
	case sh == 0b10:
		return OpLDRSB, t
	default:
		return OpLDRSH, t
	}
}

// isBlockTransfer checks for LDM and STM.
// Format: cond | 100 | P | U | S | W | L | Rn | register list
func isBlockTransfer(word uint32) bool {
	return word&0x0E000000 == 0x08000000
}

// decodeBlockTransfer decodes LDM and STM.
func decodeBlockTransfer(word uint32) (Op, BlockTransfer) {
	t := BlockTransfer{
		PreIndex:  flag(word, 24),
		Up:        flag(word, 23),
		UserBank:  flag(word, 22),
		WriteBack: flag(word, 21),
		Rn:        reg(word, 16),
		Registers: uint16(word & 0xFFFF),
	}

	if flag(word, 20) {
		return OpLDM, t
	}
	return OpSTM, t
}
