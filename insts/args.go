package insts

// Register is an ARM register number. Every register field in the encoding is
// four bits wide, so a decoded Register is always in [0, 15].
type Register uint8

// Well-known register aliases.
const (
	RegSP Register = 13
	RegLR Register = 14
	RegPC Register = 15
)

// Args is the operand payload of a decoded instruction. The concrete type is
// determined by the instruction's Format.
type Args interface {
	isArgs()
}

// Operand2Kind selects the addressing mode of a data processing second operand.
type Operand2Kind uint8

// Operand2 kinds.
const (
	Operand2Register  Operand2Kind = iota // Rm with a shift descriptor
	Operand2Immediate                     // 8-bit immediate with a rotate amount
)

// ShiftType represents a shift type for register operands.
type ShiftType uint8

// Shift types.
const (
	ShiftLSL ShiftType = 0b00 // Logical shift left
	ShiftLSR ShiftType = 0b01 // Logical shift right
	ShiftASR ShiftType = 0b10 // Arithmetic shift right
	ShiftROR ShiftType = 0b11 // Rotate right
)

// Operand2 is the flexible second operand of data processing and MSR instructions.
//
// The decoder only extracts raw fields. Applying the shift or the rotation is
// the consumer's job; the helper methods below do the field arithmetic for it.
type Operand2 struct {
	Kind Operand2Kind

	// Register form
	Rm    Register // bits [3:0]
	Shift uint8    // bits [11:4], raw shift descriptor

	// Immediate form
	Imm    uint8 // bits [7:0]
	Rotate uint8 // bits [11:8], rotate right by 2*Rotate
}

// ShiftType returns the shift type held in the shift descriptor (bits [6:5]).
func (o Operand2) ShiftType() ShiftType {
	return ShiftType((o.Shift >> 1) & 0x3)
}

// ShiftByRegister reports whether the shift amount comes from a register (bit 4).
func (o Operand2) ShiftByRegister() bool {
	return o.Shift&0x1 == 1
}

// ShiftAmount returns the 5-bit immediate shift amount (bits [11:7]).
// Only meaningful when ShiftByRegister is false.
func (o Operand2) ShiftAmount() uint8 {
	return o.Shift >> 3
}

// ShiftRegister returns Rs (bits [11:8]).
// Only meaningful when ShiftByRegister is true.
func (o Operand2) ShiftRegister() Register {
	return Register(o.Shift >> 4)
}

// Value returns the immediate rotated right by 2*Rotate within 32 bits.
// Only meaningful for the immediate form.
func (o Operand2) Value() uint32 {
	r := uint32(o.Rotate) * 2
	v := uint32(o.Imm)
	return v>>r | v<<((32-r)&31)
}

// DataProcessing holds the operands of AND, EOR, SUB, RSB, ADD, ADC, SBC, RSC,
// TST, TEQ, CMP, CMN, ORR, MOV, BIC and MVN.
//
// SetFlags is reported as encoded. TST, TEQ, CMP and CMN always have it set in
// a valid encoding; the decoder does not normalize it.
type DataProcessing struct {
	Rd       Register // bits [15:12]
	SetFlags bool     // bit 20
	Rn       Register // bits [19:16]
	Op2      Operand2 // bits [11:0], kind from bit 25
}

// Branch holds the operand of B and BL.
//
// Offset is the sign-extended 24-bit field in words. It is not scaled to bytes
// and does not include the +8 pipeline adjustment; the target address is
// PC + 8 + Offset*4, computed by the consumer.
type Branch struct {
	Offset int32
}

// BranchExchange holds the operand of BX.
type BranchExchange struct {
	Rm Register // bits [3:0]
}

// OffsetKind selects the offset form of a single data transfer.
type OffsetKind uint8

// Offset kinds.
const (
	OffsetImmediate OffsetKind = iota // 12-bit unsigned immediate
	OffsetRegister                    // Rm shifted by an immediate amount
)

// Offset is the offset operand of LDR and STR.
type Offset struct {
	Kind OffsetKind

	Imm uint16 // bits [11:0], immediate form

	Rm    Register // bits [3:0], register form
	Shift uint8    // bits [11:4], register form shift descriptor (bit 4 is always 0)
}

// ShiftType returns the shift type applied to Rm.
func (o Offset) ShiftType() ShiftType {
	return ShiftType((o.Shift >> 1) & 0x3)
}

// ShiftAmount returns the immediate shift amount applied to Rm.
func (o Offset) ShiftAmount() uint8 {
	return o.Shift >> 3
}

// SingleTransfer holds the operands of LDR and STR.
type SingleTransfer struct {
	PreIndex  bool     // bit 24: add offset before transfer
	Up        bool     // bit 23: add (true) or subtract offset
	Byte      bool     // bit 22: byte (true) or word quantity
	WriteBack bool     // bit 21: write address back into Rn
	Rn        Register // bits [19:16], base
	Rd        Register // bits [15:12], source/destination
	Offset    Offset
}

// HalfwordTransfer holds the operands of LDRH, STRH, LDRSB and LDRSH.
type HalfwordTransfer struct {
	PreIndex  bool     // bit 24
	Up        bool     // bit 23
	Immediate bool     // bit 22: immediate (true) or register offset
	WriteBack bool     // bit 21
	Rn        Register // bits [19:16]
	Rd        Register // bits [15:12]
	Imm       uint8    // bits [11:8]:[3:0], immediate offset
	Rm        Register // bits [3:0], register offset
}

// BlockTransfer holds the operands of LDM and STM.
type BlockTransfer struct {
	PreIndex  bool     // bit 24
	Up        bool     // bit 23
	UserBank  bool     // bit 22: PSR load or force user bank
	WriteBack bool     // bit 21
	Rn        Register // bits [19:16]
	Registers uint16   // bits [15:0], bit n set means Rn is transferred
}

// Count returns the number of registers in the register list.
func (b BlockTransfer) Count() int {
	n := 0
	for r := b.Registers; r != 0; r &= r - 1 {
		n++
	}
	return n
}

// Contains reports whether register r is in the register list.
func (b BlockTransfer) Contains(r Register) bool {
	return r < 16 && b.Registers&(1<<r) != 0
}

// Multiply holds the operands of MUL and MLA.
type Multiply struct {
	Accumulate bool     // bit 21
	SetFlags   bool     // bit 20
	Rd         Register // bits [19:16]
	Rn         Register // bits [15:12], accumulator
	Rs         Register // bits [11:8]
	Rm         Register // bits [3:0]
}

// MultiplyLong holds the operands of UMULL, UMLAL, SMULL and SMLAL.
type MultiplyLong struct {
	Signed     bool     // bit 22
	Accumulate bool     // bit 21
	SetFlags   bool     // bit 20
	RdHi       Register // bits [19:16]
	RdLo       Register // bits [15:12]
	Rs         Register // bits [11:8]
	Rm         Register // bits [3:0]
}

// Swap holds the operands of SWP.
type Swap struct {
	Byte bool     // bit 22
	Rn   Register // bits [19:16], address
	Rd   Register // bits [15:12], destination
	Rm   Register // bits [3:0], source
}

// StatusRead holds the operands of MRS.
type StatusRead struct {
	SPSR bool     // bit 22: SPSR (true) or CPSR
	Rd   Register // bits [15:12]
}

// StatusWrite holds the operands of MSR.
type StatusWrite struct {
	SPSR      bool     // bit 22
	FieldMask uint8    // bits [19:16]: c, x, s, f field enables
	Op2       Operand2 // register (shift always 0) or rotated immediate
}

// CoprocData holds the operands of CDP.
type CoprocData struct {
	CPOpc uint8    // bits [23:20]
	CRn   Register // bits [19:16]
	CRd   Register // bits [15:12]
	CPNum uint8    // bits [11:8]
	CP    uint8    // bits [7:5]
	CRm   Register // bits [3:0]
}

// CoprocTransfer holds the operands of LDC and STC.
type CoprocTransfer struct {
	PreIndex  bool     // bit 24
	Up        bool     // bit 23
	Long      bool     // bit 22: transfer length (N bit)
	WriteBack bool     // bit 21
	Rn        Register // bits [19:16]
	CRd       Register // bits [15:12]
	CPNum     uint8    // bits [11:8]
	Offset    uint8    // bits [7:0], in words
}

// CoprocRegister holds the operands of MCR and MRC.
type CoprocRegister struct {
	CPOpc uint8    // bits [23:21]
	CRn   Register // bits [19:16]
	Rd    Register // bits [15:12]
	CPNum uint8    // bits [11:8]
	CP    uint8    // bits [7:5]
	CRm   Register // bits [3:0]
}

// SoftwareInterrupt holds the operand of SWI.
type SoftwareInterrupt struct {
	Comment uint32 // bits [23:0], ignored by the processor
}

// Undefined is the payload of words that match no instruction family.
type Undefined struct {
	Word uint32
}

func (DataProcessing) isArgs()    {}
func (Branch) isArgs()            {}
func (BranchExchange) isArgs()    {}
func (SingleTransfer) isArgs()    {}
func (HalfwordTransfer) isArgs()  {}
func (BlockTransfer) isArgs()     {}
func (Multiply) isArgs()          {}
func (MultiplyLong) isArgs()      {}
func (Swap) isArgs()              {}
func (StatusRead) isArgs()        {}
func (StatusWrite) isArgs()       {}
func (CoprocData) isArgs()        {}
func (CoprocTransfer) isArgs()    {}
func (CoprocRegister) isArgs()    {}
func (SoftwareInterrupt) isArgs() {}
func (Undefined) isArgs()         {}
