// Package predecode provides a decoded-instruction cache using Akita cache components.
//
// A fetch stage that revisits the same code (loops, hot functions) can look up
// the decoded form of a word by address instead of decoding it again. Lines
// are filled by reading words from a WordSource and decoding each with
// insts.Decode.
package predecode

import (
	"errors"
	"fmt"

	akitacache "github.com/sarchlab/akita/v4/mem/cache"

	"github.com/sarchlab/armdec/insts"
)

// ErrMisaligned is returned when a fetch address is not a multiple of 4.
var ErrMisaligned = errors.New("misaligned instruction address")

// WordSource supplies raw instruction words by address.
type WordSource interface {
	ReadWord(addr uint64) (uint32, error)
}

// Statistics holds cache performance statistics.
type Statistics struct {
	Fetches   uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns Hits/Fetches, or 0 before the first fetch.
func (s Statistics) HitRate() float64 {
	if s.Fetches == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Fetches)
}

type entry struct {
	inst insts.Instruction
	err  error
}

// Cache holds decoded instructions indexed by fetch address.
//
// A Cache is not safe for concurrent use; it belongs to a single fetch stage.
type Cache struct {
	config Config

	// Akita cache directory for tag/LRU management
	directory *akitacache.DirectoryImpl

	// Decoded lines, indexed by (setID * ways + wayID)
	lines [][]entry

	source  WordSource
	decoder *insts.Decoder
	stats   Statistics
}

// New creates a cache with the given geometry over source.
func New(config Config, source WordSource) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid predecode config: %w", err)
	}

	lines := make([][]entry, config.Sets*config.Ways)
	for i := range lines {
		lines[i] = make([]entry, config.LineWords)
	}

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			config.Sets,
			config.Ways,
			config.LineBytes(),
			akitacache.NewLRUVictimFinder(),
		),
		lines:   lines,
		source:  source,
		decoder: insts.NewDecoder(),
	}, nil
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

func (c *Cache) lineAddr(addr uint64) uint64 {
	lineBytes := uint64(c.config.LineBytes())
	return addr / lineBytes * lineBytes
}

func (c *Cache) lineIndex(block *akitacache.Block) int {
	return block.SetID*c.config.Ways + block.WayID
}

// Fetch returns the decoded instruction at addr.
func (c *Cache) Fetch(addr uint64) (insts.Instruction, error) {
	if addr%4 != 0 {
		return insts.Instruction{}, fmt.Errorf("fetch at 0x%X: %w", addr, ErrMisaligned)
	}

	c.stats.Fetches++

	base := c.lineAddr(addr)
	slot := (addr - base) / 4

	block := c.directory.Lookup(0, base)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)

		e := c.lines[c.lineIndex(block)][slot]
		return e.inst, e.err
	}

	c.stats.Misses++

	line, err := c.fill(base)
	if err != nil {
		return insts.Instruction{}, err
	}

	e := line[slot]
	return e.inst, e.err
}

// fill decodes the line starting at base into a victim block.
func (c *Cache) fill(base uint64) ([]entry, error) {
	victim := c.directory.FindVictim(base)
	if victim == nil {
		return nil, fmt.Errorf("no victim block for line 0x%X", base)
	}

	if victim.IsValid {
		c.stats.Evictions++
	}

	line := c.lines[c.lineIndex(victim)]
	for i := range line {
		addr := base + uint64(i)*4

		word, err := c.source.ReadWord(addr)
		if err != nil {
			line[i] = entry{err: fmt.Errorf("fetch at 0x%X: %w", addr, err)}
			continue
		}
		line[i] = entry{inst: c.decoder.Decode(word)}
	}

	victim.Tag = base
	victim.IsValid = true
	victim.IsDirty = false
	c.directory.Visit(victim)

	return line, nil
}

// Invalidate drops the line holding addr, e.g. after the code there was rewritten.
func (c *Cache) Invalidate(addr uint64) {
	block := c.directory.Lookup(0, c.lineAddr(addr))
	if block != nil && block.IsValid {
		block.IsValid = false
	}
}

// Reset invalidates every line and clears statistics.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}
