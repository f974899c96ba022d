package insts

// Op represents an ARM mnemonic.
type Op uint8

// ARM opcodes. The data processing opcodes are declared in the order of their
// 4-bit encoding so that OpAND+opcode selects the mnemonic.
const (
	OpUndefined Op = iota

	OpAND
	OpEOR
	OpSUB
	OpRSB
	OpADD
	OpADC
	OpSBC
	OpRSC
	OpTST
	OpTEQ
	OpCMP
	OpCMN
	OpORR
	OpMOV
	OpBIC
	OpMVN

	OpB
	OpBL
	OpBX

	OpMUL
	OpMLA
	OpUMULL
	OpUMLAL
	OpSMULL
	OpSMLAL

	OpLDR
	OpSTR
	OpLDRH
	OpSTRH
	OpLDRSB
	OpLDRSH
	OpLDM
	OpSTM
	OpSWP

	OpMRS
	OpMSR

	OpCDP
	OpLDC
	OpSTC
	OpMCR
	OpMRC

	OpSWI

	numOps
)

var opNames = [numOps]string{
	OpUndefined: "UNDEFINED",
	OpAND:       "AND",
	OpEOR:       "EOR",
	OpSUB:       "SUB",
	OpRSB:       "RSB",
	OpADD:       "ADD",
	OpADC:       "ADC",
	OpSBC:       "SBC",
	OpRSC:       "RSC",
	OpTST:       "TST",
	OpTEQ:       "TEQ",
	OpCMP:       "CMP",
	OpCMN:       "CMN",
	OpORR:       "ORR",
	OpMOV:       "MOV",
	OpBIC:       "BIC",
	OpMVN:       "MVN",
	OpB:         "B",
	OpBL:        "BL",
	OpBX:        "BX",
	OpMUL:       "MUL",
	OpMLA:       "MLA",
	OpUMULL:     "UMULL",
	OpUMLAL:     "UMLAL",
	OpSMULL:     "SMULL",
	OpSMLAL:     "SMLAL",
	OpLDR:       "LDR",
	OpSTR:       "STR",
	OpLDRH:      "LDRH",
	OpSTRH:      "STRH",
	OpLDRSB:     "LDRSB",
	OpLDRSH:     "LDRSH",
	OpLDM:       "LDM",
	OpSTM:       "STM",
	OpSWP:       "SWP",
	OpMRS:       "MRS",
	OpMSR:       "MSR",
	OpCDP:       "CDP",
	OpLDC:       "LDC",
	OpSTC:       "STC",
	OpMCR:       "MCR",
	OpMRC:       "MRC",
	OpSWI:       "SWI",
}

// String returns the mnemonic of the opcode.
func (op Op) String() string {
	if op >= numOps {
		return opNames[OpUndefined]
	}
	return opNames[op]
}

// IsDataProcessing reports whether op is one of the sixteen data processing mnemonics.
func (op Op) IsDataProcessing() bool {
	return op >= OpAND && op <= OpMVN
}

// Format represents an instruction encoding family.
type Format uint8

// Instruction formats.
const (
	FormatUndefined         Format = iota
	FormatBranchExchange           // BX
	FormatBranch                   // B, BL
	FormatDataProcessing           // ALU operations
	FormatMultiply                 // MUL, MLA
	FormatMultiplyLong             // UMULL, UMLAL, SMULL, SMLAL
	FormatSwap                     // SWP
	FormatHalfwordTransfer         // LDRH, STRH, LDRSB, LDRSH
	FormatStatusRead               // MRS
	FormatStatusWrite              // MSR
	FormatSingleTransfer           // LDR, STR
	FormatBlockTransfer            // LDM, STM
	FormatCoprocTransfer           // LDC, STC
	FormatCoprocData               // CDP
	FormatCoprocRegister           // MCR, MRC
	FormatSoftwareInterrupt        // SWI

	numFormats
)

var formatNames = [numFormats]string{
	FormatUndefined:         "undefined",
	FormatBranchExchange:    "branch-exchange",
	FormatBranch:            "branch",
	FormatDataProcessing:    "data-processing",
	FormatMultiply:          "multiply",
	FormatMultiplyLong:      "multiply-long",
	FormatSwap:              "swap",
	FormatHalfwordTransfer:  "halfword-transfer",
	FormatStatusRead:        "status-read",
	FormatStatusWrite:       "status-write",
	FormatSingleTransfer:    "single-transfer",
	FormatBlockTransfer:     "block-transfer",
	FormatCoprocTransfer:    "coproc-transfer",
	FormatCoprocData:        "coproc-data",
	FormatCoprocRegister:    "coproc-register",
	FormatSoftwareInterrupt: "software-interrupt",
}

func (f Format) String() string {
	if f >= numFormats {
		return formatNames[FormatUndefined]
	}
	return formatNames[f]
}
