// Package insts provides AArch32 (ARM state) instruction definitions and decoding.
//
// This package decodes a 32-bit ARM machine-code word into a structured
// instruction: a condition code plus an operation tag and its operands. It covers
// every ARMv4T instruction family:
//   - Data Processing: AND, EOR, SUB, RSB, ADD, ADC, SBC, RSC, TST, TEQ, CMP, CMN, ORR, MOV, BIC, MVN
//   - Branch instructions: B, BL, BX
//   - Multiply: MUL, MLA, UMULL, UMLAL, SMULL, SMLAL
//   - Loads and stores: LDR, STR, LDRH, STRH, LDRSB, LDRSH, LDM, STM, SWP
//   - Status register moves: MRS, MSR
//   - Coprocessor: CDP, LDC, STC, MCR, MRC
//   - Software interrupt: SWI
//
// Words that match no family decode to OpUndefined with an Undefined payload
// carrying the raw word. Decoding never fails and never panics.
//
// Usage:
//
//	inst := insts.Decode(0xE0835004) // ADD R5, R3, R4
//	dp := inst.Args.(insts.DataProcessing)
//	fmt.Printf("Op: %v, Rd: %d, Rn: %d, Rm: %d\n", inst.Op, dp.Rd, dp.Rn, dp.Op2.Rm)
package insts
