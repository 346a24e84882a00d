// seehuhn.de/go/sysfont - font substitution for PDF renderers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/sysfont"
	"seehuhn.de/go/sysfont/match"
	"seehuhn.de/go/sysfont/registry"
	"seehuhn.de/go/sysfont/tools/internal/buildinfo"
	"seehuhn.de/go/sysfont/tools/internal/profile"
)

var (
	dirs     stringList
	fontMaps stringList

	noGoFonts  = flag.Bool("nogo", false, "do not use the built-in Go fonts")
	weightArg  = flag.Int("weight", 0, "requested font `weight` (default from the name, or 400)")
	italicArg  = flag.Bool("italic", false, "request an italic font")
	fixedArg   = flag.Bool("fixed", false, "request a fixed-pitch font")
	serifArg   = flag.Bool("serif", false, "request a font with serifs")
	charsetArg = flag.String("charset", "ANSI", "requested `charset`, by name or number")
	langArg    = flag.String("lang", "", "choose the charset for a BCP 47 `language` tag")
	listFlag   = flag.Bool("list", false, "list the installed fonts")
	rankFlag   = flag.Bool("rank", false, "show all candidates, best first")
	tableFlag  = flag.Bool("table", false, "print the charset font table")
	outArg     = flag.String("o", "", "write the font data to `file` (\"-\" for stdout)")
	tagArg     = flag.String("t", "", "write only the given font `table`, e.g. \"head\"")
	verbose    = flag.Bool("v", false, "log the matching process to stderr")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Var(&dirs, "dir", "scan font `directory` (may be repeated)")
	flag.Var(&fontMaps, "fontmap", "read font map `file` (may be repeated)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "sysfont-match \u2014 find substitutes for non-embedded PDF fonts\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("sysfont-match"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  sysfont-match [options] <font name>...\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  font name  a face name or PDF BaseFont name, e.g. \"Arial,Bold\"\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sysfont-match Helvetica-BoldOblique\n")
		fmt.Fprintf(os.Stderr, "  sysfont-match -lang zh-Hans -rank SimSun\n")
		fmt.Fprintf(os.Stderr, "  sysfont-match -o arial.ttf ABCDEF+ArialMT\n")
	}
	flag.Parse()

	if flag.NArg() < 1 && !*listFlag && !*tableFlag {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		sysfont.SetLogger(slog.New(h))
	}

	cs, err := requestedCharset()
	if err != nil {
		return err
	}

	if *tableFlag {
		printTable()
	}

	opt := &registry.Options{
		FontMaps:  fontMaps,
		NoGoFonts: *noGoFonts,
	}
	if len(dirs) > 0 {
		opt.Dirs = dirs
	}
	r := registry.New(opt)
	defer r.UninstallAndRelease()

	if *listFlag {
		for _, f := range r.InstalledFonts() {
			fmt.Printf("%-40s %s\n", f.FaceName, f.Charset)
		}
	}

	if *outArg != "" && flag.NArg() != 1 {
		return errors.New("-o requires exactly one font name")
	}

	for _, name := range flag.Args() {
		desc := descriptor(name, cs)
		if *rankFlag {
			err = rank(r, desc)
		} else {
			err = show(r, name, desc)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func requestedCharset() (sysfont.Charset, error) {
	if *langArg != "" {
		tag, err := language.Parse(*langArg)
		if err != nil {
			return 0, err
		}
		return sysfont.CharsetForLanguage(tag), nil
	}
	cs, ok := sysfont.ParseCharset(*charsetArg)
	if !ok {
		return 0, fmt.Errorf("unknown charset %q", *charsetArg)
	}
	return cs, nil
}

// descriptor builds a font request from a PDF font name and the command
// line flags.  Flags override the style found in the name.
func descriptor(name string, cs sysfont.Charset) *sysfont.Descriptor {
	desc := sysfont.ParseBaseFont(name).Descriptor(cs)
	if *weightArg != 0 {
		desc.Weight = *weightArg
	}
	if *italicArg {
		desc.Italic = true
	}
	if *fixedArg {
		desc.PitchFamily |= sysfont.FixedPitch
	}
	if *serifArg {
		desc.PitchFamily |= sysfont.Roman
	}
	return desc
}

func show(r *registry.Registry, name string, desc *sysfont.Descriptor) error {
	table := sysfont.WholeFile
	if *tagArg != "" {
		if len(*tagArg) > 4 {
			return fmt.Errorf("invalid table name %q", *tagArg)
		}
		table = sysfont.MakeTag(*tagArg)
	}

	font, err := r.LoadBaseFont(name, desc.Charset, table)
	if err != nil {
		return err
	}

	kind := "substitute"
	if font.Exact {
		kind = "exact"
	}
	fmt.Printf("%s -> %s (%s, %s, %d bytes)\n",
		name, font.FaceName, kind, font.Charset, len(font.Data))

	if *outArg == "" {
		return nil
	}
	return writeData(*outArg, font.Data)
}

func writeData(fname string, data []byte) error {
	var w io.Writer
	if fname == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write font data to a terminal")
		}
		w = os.Stdout
	} else {
		fd, err := os.Create(fname)
		if err != nil {
			return err
		}
		defer fd.Close()
		w = fd
	}
	_, err := w.Write(data)
	return err
}

func rank(r *registry.Registry, desc *sysfont.Descriptor) error {
	e, ok := r.Current().(*match.Engine)
	if !ok {
		return errors.New("ranking needs the built-in provider")
	}
	fmt.Println(desc)
	for i, c := range e.Rank(desc) {
		fmt.Printf("%3d  %-40s %-10s %d\n", i+1, c.Face.Name, c.Name, c.Score)
	}
	return nil
}

func printTable() {
	for _, e := range sysfont.DefaultTTFMap() {
		if !e.Charset.IsValid() {
			break
		}
		fmt.Printf("%-20s %s\n", e.Charset, e.FontName)
	}
}
