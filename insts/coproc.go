package insts

// isCoprocTransfer checks for LDC and STC.
// Format: cond | 110 | P | U | N | W | L | Rn | CRd | CP# | offset
func isCoprocTransfer(word uint32) bool {
	return word&0x0E000000 == 0x0C000000
}

func decodeCoprocTransfer(word uint32) (Op, CoprocTransfer) {
	t := CoprocTransfer{
		PreIndex:  flag(word, 24),
		Up:        flag(word, 23),
		Long:      flag(word, 22),
		WriteBack: flag(word, 21),
		Rn:        reg(word, 16),
		CRd:       reg(word, 12),
		CPNum:     uint8((word >> 8) & 0xF),
		Offset:    uint8(word & 0xFF),
	}

	if flag(word, 20) {
		return OpLDC, t
	}
	return OpSTC, t
}

// isCoprocData checks for CDP.
// Format: cond | 1110 | CP Opc | CRn | CRd | CP# | CP | 0 | CRm
func isCoprocData(word uint32) bool {
	return word&0x0F000010 == 0x0E000000
}

func decodeCoprocData(word uint32) CoprocData {
	return CoprocData{
		CPOpc: uint8((word >> 20) & 0xF),
		CRn:   reg(word, 16),
		CRd:   reg(word, 12),
		CPNum: uint8((word >> 8) & 0xF),
		CP:    uint8((word >> 5) & 0x7),
		CRm:   reg(word, 0),
	}
}

// isCoprocRegister checks for MCR and MRC.
// Format: cond | 1110 | CP Opc | L | CRn | Rd | CP# | CP | 1 | CRm
func isCoprocRegister(word uint32) bool {
	return word&0x0F000010 == 0x0E000010
}

func decodeCoprocRegister(word uint32) (Op, CoprocRegister) {
	r := CoprocRegister{
		CPOpc: uint8((word >> 21) & 0x7),
		CRn:   reg(word, 16),
		Rd:    reg(word, 12),
		CPNum: uint8((word >> 8) & 0xF),
		CP:    uint8((word >> 5) & 0x7),
		CRm:   reg(word, 0),
	}

	if flag(word, 20) {
		return OpMRC, r
	}
	return OpMCR, r
}
