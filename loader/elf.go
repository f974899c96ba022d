// Package loader provides program image loading for 32-bit ARM code.
package loader

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnmapped is returned when a read falls outside every loaded segment.
var ErrUnmapped = errors.New("address not mapped")

// SegmentFlags represents memory protection flags for a segment.
type SegmentFlags uint32

const (
	// SegmentFlagExecute indicates the segment is executable.
	SegmentFlagExecute SegmentFlags = 1 << iota
	// SegmentFlagWrite indicates the segment is writable.
	SegmentFlagWrite
	// SegmentFlagRead indicates the segment is readable.
	SegmentFlagRead
)

// Segment represents a loadable segment of a program image.
type Segment struct {
	// VirtAddr is the virtual address where this segment should be loaded.
	VirtAddr uint64
	// Data contains the segment contents from the file.
	Data []byte
	// MemSize is the size in memory (may be larger than len(Data) for BSS).
	MemSize uint64
	// Flags contains the segment protection flags.
	Flags SegmentFlags
}

// Contains reports whether the n bytes starting at addr lie inside the segment.
func (s *Segment) Contains(addr, n uint64) bool {
	return addr >= s.VirtAddr && addr-s.VirtAddr+n <= s.MemSize
}

// Range is a half-open address interval [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// Program represents a loaded program image.
type Program struct {
	// EntryPoint is the virtual address where execution should begin.
	EntryPoint uint64
	// Segments contains all loadable segments of the image.
	Segments []Segment
	// ByteOrder is the byte order instruction words are stored in.
	ByteOrder binary.ByteOrder
}

// Load parses a 32-bit ARM ELF executable.
func Load(path string) (*Program, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ELF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if f.Class != elf.ELFCLASS32 {
		return nil, fmt.Errorf("not a 32-bit ELF file")
	}

	if f.Machine != elf.EM_ARM {
		return nil, fmt.Errorf("not an ARM ELF file (machine type: %v)", f.Machine)
	}

	prog := &Program{
		EntryPoint: f.Entry,
		ByteOrder:  f.ByteOrder,
	}

	for _, phdr := range f.Progs {
		if phdr.Type != elf.PT_LOAD {
			continue
		}

		data := make([]byte, phdr.Filesz)
		if phdr.Filesz > 0 {
			n, err := phdr.ReadAt(data, 0)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("failed to read segment at 0x%x: %w", phdr.Vaddr, err)
			}
			if uint64(n) != phdr.Filesz {
				return nil, fmt.Errorf("short read for segment at 0x%x: got %d bytes, expected %d",
					phdr.Vaddr, n, phdr.Filesz)
			}
		}

		var flags SegmentFlags
		if phdr.Flags&elf.PF_X != 0 {
			flags |= SegmentFlagExecute
		}
		if phdr.Flags&elf.PF_W != 0 {
			flags |= SegmentFlagWrite
		}
		if phdr.Flags&elf.PF_R != 0 {
			flags |= SegmentFlagRead
		}

		prog.Segments = append(prog.Segments, Segment{
			VirtAddr: phdr.Vaddr,
			Data:     data,
			MemSize:  phdr.Memsz,
			Flags:    flags,
		})
	}

	return prog, nil
}

// LoadRaw wraps a flat little-endian binary (a ROM dump, a BIOS image) as a
// single executable segment at base.
func LoadRaw(path string, base uint64) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw image: %w", err)
	}

	return &Program{
		EntryPoint: base,
		ByteOrder:  binary.LittleEndian,
		Segments: []Segment{{
			VirtAddr: base,
			Data:     data,
			MemSize:  uint64(len(data)),
			Flags:    SegmentFlagRead | SegmentFlagExecute,
		}},
	}, nil
}

// ReadWord returns the 32-bit word at addr in the image's byte order.
// Bytes past a segment's file data but inside its memory size read as zero.
func (p *Program) ReadWord(addr uint64) (uint32, error) {
	for i := range p.Segments {
		seg := &p.Segments[i]
		if !seg.Contains(addr, 4) {
			continue
		}

		var buf [4]byte
		off := addr - seg.VirtAddr
		if off < uint64(len(seg.Data)) {
			copy(buf[:], seg.Data[off:])
		}
		return p.ByteOrder.Uint32(buf[:]), nil
	}

	return 0, fmt.Errorf("read at 0x%X: %w", addr, ErrUnmapped)
}

// ExecutableRanges returns the address ranges of executable segments that
// hold file data, in segment order.
func (p *Program) ExecutableRanges() []Range {
	var ranges []Range
	for _, seg := range p.Segments {
		if seg.Flags&SegmentFlagExecute == 0 || len(seg.Data) == 0 {
			continue
		}
		ranges = append(ranges, Range{
			Start: seg.VirtAddr,
			End:   seg.VirtAddr + uint64(len(seg.Data)),
		})
	}
	return ranges
}
