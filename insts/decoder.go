package insts

// Instruction represents a decoded ARM instruction.
type Instruction struct {
	Raw    uint32 // The instruction word as fetched
	Cond   Cond   // Condition code, bits [31:28]
	Op     Op     // Operation code
	Format Format // Encoding family
	Args   Args   // Operand payload; concrete type follows Format
}

// Undefined reports whether the word matched no instruction family.
func (i Instruction) Undefined() bool {
	return i.Op == OpUndefined
}

// Conditional reports whether the instruction executes only under a flag condition.
// AL and the reserved NV encoding are not conditional.
func (i Instruction) Conditional() bool {
	return i.Cond != CondAL && !i.Cond.Reserved()
}

// Decoder decodes ARM machine code into instructions.
//
// A Decoder holds no state. One value may be shared by any number of goroutines.
type Decoder struct{}

// NewDecoder creates a new ARM instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes a 32-bit ARM instruction word. It is total: a word that
// matches no family yields OpUndefined with an Undefined payload.
func (d *Decoder) Decode(word uint32) Instruction {
	inst := Instruction{
		Raw:    word,
		Cond:   DecodeCond(word),
		Format: Classify(word),
	}

	switch inst.Format {
	case FormatBranchExchange:
		inst.Op, inst.Args = OpBX, decodeBranchExchange(word)
	case FormatBranch:
		inst.Op, inst.Args = decodeBranch(word)
	case FormatDataProcessing:
		inst.Op, inst.Args = decodeDataProcessing(word)
	case FormatMultiply:
		inst.Op, inst.Args = decodeMultiply(word)
	case FormatMultiplyLong:
		inst.Op, inst.Args = decodeMultiplyLong(word)
	case FormatSwap:
		inst.Op, inst.Args = OpSWP, decodeSwap(word)
	case FormatHalfwordTransfer:
		inst.Op, inst.Args = decodeHalfwordTransfer(word)
	case FormatStatusRead:
		inst.Op, inst.Args = OpMRS, decodeStatusRead(word)
	case FormatStatusWrite:
		inst.Op, inst.Args = OpMSR, decodeStatusWrite(word)
	case FormatSingleTransfer:
		inst.Op, inst.Args = decodeSingleTransfer(word)
	case FormatBlockTransfer:
		inst.Op, inst.Args = decodeBlockTransfer(word)
	case FormatCoprocTransfer:
		inst.Op, inst.Args = decodeCoprocTransfer(word)
	case FormatCoprocData:
		inst.Op, inst.Args = OpCDP, decodeCoprocData(word)
	case FormatCoprocRegister:
		inst.Op, inst.Args = decodeCoprocRegister(word)
	case FormatSoftwareInterrupt:
		inst.Op, inst.Args = OpSWI, SoftwareInterrupt{Comment: word & 0xFFFFFF}
	default:
		inst.Format = FormatUndefined
		inst.Op, inst.Args = OpUndefined, Undefined{Word: word}
	}

	return inst
}

// DecodeAll decodes a sequence of instruction words.
func (d *Decoder) DecodeAll(words []uint32) []Instruction {
	out := make([]Instruction, len(words))
	for i, w := range words {
		out[i] = d.Decode(w)
	}
	return out
}

var defaultDecoder Decoder

// Decode decodes a single instruction word with a shared Decoder.
func Decode(word uint32) Instruction {
	return defaultDecoder.Decode(word)
}

// Classify returns the instruction family of word.
//
// Every test compares the complete set of fixed bits of its family, so at most
// one family matches any word. The order below is the architectural priority
// order; anything left over is FormatUndefined.
func Classify(word uint32) Format {
	switch {
	case isBranchExchange(word):
		return FormatBranchExchange
	case isBranch(word):
		return FormatBranch
	case isDataProcessing(word):
		return FormatDataProcessing
	case isMultiply(word):
		return FormatMultiply
	case isMultiplyLong(word):
		return FormatMultiplyLong
	case isSwap(word):
		return FormatSwap
	case isHalfwordTransfer(word):
		return FormatHalfwordTransfer
	case isStatusRead(word):
		return FormatStatusRead
	case isStatusWrite(word):
		return FormatStatusWrite
	case isSingleTransfer(word):
		return FormatSingleTransfer
	case isBlockTransfer(word):
		return FormatBlockTransfer
	case isCoprocTransfer(word):
		return FormatCoprocTransfer
	case isCoprocData(word):
		return FormatCoprocData
	case isCoprocRegister(word):
		return FormatCoprocRegister
	case isSoftwareInterrupt(word):
		return FormatSoftwareInterrupt
	default:
		return FormatUndefined
	}
}

// isSoftwareInterrupt checks for SWI.
// Format: cond | 1111 | comment
func isSoftwareInterrupt(word uint32) bool {
	return word&0x0F000000 == 0x0F000000
}

// flag reports whether bit n of word is set.
func flag(word uint32, n uint) bool {
	return (word>>n)&0x1 == 1
}

// reg extracts the 4-bit register field whose lowest bit is lo.
func reg(word uint32, lo uint) Register {
	return Register((word >> lo) & 0xF)
}
