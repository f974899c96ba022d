package insts

// isDataProcessing checks for data processing instructions.
// Format: cond | 00 | I | opcode | S | Rn | Rd | operand2
//
// Two sub-spaces sharing bits [27:26] == 00 are excluded:
//   - I == 0 with bit 7 and bit 4 set holds multiply, swap and halfword transfers.
//   - TST, TEQ, CMP and CMN with S == 0 hold the status register moves and BX.
func isDataProcessing(word uint32) bool {
	if word&0x0C000000 != 0 {
		return false
	}
	if word&0x02000090 == 0x00000090 {
		return false
	}
	if word&0x01900000 == 0x01000000 {
		return false
	}
	return true
}

// decodeDataProcessing decodes the sixteen ALU instructions.
func decodeDataProcessing(word uint32) (Op, DataProcessing) {
	opcode := (word >> 21) & 0xF // bits [24:21]

	dp := DataProcessing{
		Rd:       reg(word, 12),   // bits [15:12]
		SetFlags: flag(word, 20),  // bit 20
		Rn:       reg(word, 16),   // bits [19:16]
		Op2:      decodeOperand2(word),
	}

	return OpAND + Op(opcode), dp
}

// decodeOperand2 extracts the flexible second operand, selected by bit 25.
func decodeOperand2(word uint32) Operand2 {
	if flag(word, 25) {
		return Operand2{
			Kind:   Operand2Immediate,
			Imm:    uint8(word & 0xFF),        // bits [7:0]
			Rotate: uint8((word >> 8) & 0xF), // bits [11:8]
		}
	}

	return Operand2{
		Kind:  Operand2Register,
		Rm:    reg(word, 0),               // bits [3:0]
		Shift: uint8((word >> 4) & 0xFF), // bits [11:4]
	}
}

// isStatusRead checks for MRS.
// Format: cond | 00010 | P | 00 1111 | Rd | 0000 0000 0000
func isStatusRead(word uint32) bool {
	return word&0x0FBF0FFF == 0x010F0000
}

// decodeStatusRead decodes MRS.
func decodeStatusRead(word uint32) StatusRead {
	return StatusRead{
		SPSR: flag(word, 22),
		Rd:   reg(word, 12),
	}
}

// isStatusWrite checks for MSR.
// Register: cond | 00010 | P | 10 | mask | 1111 | 0000 0000 | Rm
// Immediate: cond | 00110 | P | 10 | mask | 1111 | rotate | imm8
func isStatusWrite(word uint32) bool {
	return word&0x0FB0FFF0 == 0x0120F000 || word&0x0FB0F000 == 0x0320F000
}

// decodeStatusWrite decodes MSR.
func decodeStatusWrite(word uint32) StatusWrite {
	return StatusWrite{
		SPSR:      flag(word, 22),
		FieldMask: uint8((word >> 16) & 0xF),
		Op2:       decodeOperand2(word),
	}
}
