// Package main provides armdecode, a command line front-end for the ARM decoder.
//
// It decodes instruction words given on the command line, or every word of the
// executable segments of an ARM ELF file or flat binary image, and prints the
// decoded fields one instruction per line.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/log"

	"github.com/sarchlab/armdec/insts"
	"github.com/sarchlab/armdec/loader"
	"github.com/sarchlab/armdec/predecode"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var (
	wordsMode   = flag.Bool("words", false, "Treat arguments as hexadecimal instruction words")
	rawMode     = flag.Bool("raw", false, "Treat the input as a flat little-endian binary")
	baseAddr    = flag.Uint64("base", 0, "Load address of a flat binary")
	configPath  = flag.String("config", "", "Path to predecode cache configuration JSON file")
	jsonOutput  = flag.Bool("json", false, "Print one JSON object per instruction")
	verbose     = flag.Bool("v", false, "Verbose output")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("armdecode %s\n", versionString(version, commit, date))
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: armdecode [options] <program.elf | image.bin>\n")
		fmt.Fprintf(os.Stderr, "       armdecode -words <hex word>...\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := newLogger(*verbose)
	out := newPrinter(os.Stdout, *jsonOutput)

	var err error
	if *wordsMode {
		err = decodeWords(out, flag.Args())
	} else {
		var prog *loader.Program
		prog, err = loadProgram(logger, flag.Arg(0), *rawMode, *baseAddr)
		if err == nil {
			err = decodeProgram(logger, out, prog, *configPath)
		}
	}

	if err != nil {
		logger.Error("Decoding failed", log.Err(err))
		os.Exit(1)
	}
}

// newLogger creates a logger that includes debug output when verbose is set.
func newLogger(verbose bool) *log.Logger {
	cfg := log.DefaultConfig()
	if verbose {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

// versionString formats the version with a shortened commit hash, if known.
func versionString(version, commit, date string) string {
	s := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		s += fmt.Sprintf(" (%s)", commit)
	}
	if date != "" && !strings.Contains(date, "unknown") {
		s += ", built " + date
	}
	return s
}

// decodeWords decodes each argument as a hexadecimal instruction word.
func decodeWords(out *printer, args []string) error {
	for _, arg := range args {
		word, err := parseWord(arg)
		if err != nil {
			return err
		}

		if err := out.print(nil, insts.Decode(word)); err != nil {
			return err
		}
	}
	return nil
}

func loadProgram(logger *log.Logger, path string, raw bool, base uint64) (*loader.Program, error) {
	var (
		prog *loader.Program
		err  error
	)
	if raw {
		prog, err = loader.LoadRaw(path, base)
	} else {
		prog, err = loader.Load(path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded program",
		log.String("path", path),
		log.Hex("entry", prog.EntryPoint),
		log.Int("segments", len(prog.Segments)))

	return prog, nil
}

// decodeProgram decodes every aligned word of the executable ranges of prog
// through a predecode cache.
func decodeProgram(logger *log.Logger, out *printer, prog *loader.Program, configPath string) error {
	config := predecode.DefaultConfig()
	if configPath != "" {
		var err error
		config, err = predecode.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	cache, err := predecode.New(*config, prog)
	if err != nil {
		return err
	}

	geometry := cache.Config()
	logger.Debug("Predecode cache",
		log.Int("sets", geometry.Sets),
		log.Int("ways", geometry.Ways),
		log.Int("line_words", geometry.LineWords))

	undefined := 0
	for _, r := range prog.ExecutableRanges() {
		logger.Debug("Decoding range",
			log.Hex("start", r.Start),
			log.Hex("end", r.End))

		for addr := (r.Start + 3) &^ 3; addr+4 <= r.End; addr += 4 {
			inst, err := cache.Fetch(addr)
			if err != nil {
				return err
			}
			if inst.Undefined() {
				undefined++
			}

			a := addr
			if err := out.print(&a, inst); err != nil {
				return err
			}
		}
	}

	stats := cache.Stats()
	logger.Debug("Predecode statistics",
		log.Int("fetches", int(stats.Fetches)),
		log.Int("hits", int(stats.Hits)),
		log.Int("misses", int(stats.Misses)),
		log.Int("evictions", int(stats.Evictions)),
		log.String("hit_rate", fmt.Sprintf("%.3f", stats.HitRate())))
	if undefined > 0 {
		logger.Warn("Undefined instructions in executable segments", log.Int("count", undefined))
	}

	return nil
}

// parseWord parses a hexadecimal word with an optional 0x prefix.
// Underscores may be used as digit separators.
func parseWord(s string) (uint32, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	digits = strings.ReplaceAll(digits, "_", "")

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid instruction word %q: %w", s, err)
	}
	return uint32(v), nil
}

// record is the JSON form of one decoded instruction.
type record struct {
	Addr   string     `json:"addr,omitempty"`
	Word   string     `json:"word"`
	Cond   string     `json:"cond"`
	Op     string     `json:"op"`
	Format string     `json:"format"`
	Args   insts.Args `json:"args"`
}

type printer struct {
	w    io.Writer
	json bool
	enc  *json.Encoder
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	return &printer{w: w, json: asJSON, enc: json.NewEncoder(w)}
}

func (p *printer) print(addr *uint64, inst insts.Instruction) error {
	if p.json {
		rec := record{
			Word:   fmt.Sprintf("%08X", inst.Raw),
			Cond:   inst.Cond.String(),
			Op:     inst.Op.String(),
			Format: inst.Format.String(),
			Args:   inst.Args,
		}
		if addr != nil {
			rec.Addr = fmt.Sprintf("%08X", *addr)
		}
		return p.enc.Encode(rec)
	}

	prefix := ""
	if addr != nil {
		prefix = fmt.Sprintf("%08X  ", *addr)
	}
	_, err := fmt.Fprintf(p.w, "%s%08X  %-2s  %-9s %-18s %+v\n",
		prefix, inst.Raw, inst.Cond, inst.Op, inst.Format, inst.Args)
	return err
}
