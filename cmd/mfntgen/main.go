// mfntgen converts ttf, otf and bdf font files into the compact MFNT
// containers consumed by the microfont runtime.
//
// Sample usage:
//
//	mfntgen FreeSans.ttf 23 freesans.mfnt
//
// This creates a font with nominal height 23 pixels and the default
// printable ASCII charset (32-126 inclusive); unsupported characters
// render as '?'. See mfntgen --help for the available options.
package main

import "os"
import "fmt"
import "bytes"
import "strings"

import "github.com/jessevdk/go-flags"
import "github.com/npillmayer/schuko/schukonf/testconfig"
import "github.com/npillmayer/schuko/tracing"
import "github.com/npillmayer/schuko/tracing/gologadapter"
import "github.com/npillmayer/schuko/tracing/trace2go"

import "github.com/mfnt/microfont/builder"

// tracer traces with key 'microfont.build'
func tracer() tracing.Trace {
	return tracing.Select("microfont.build")
}

type options struct {
	Fixed        bool   `short:"f" long:"fixed" description:"Fixed width (monospaced) font"`
	Reverse      bool   `short:"r" long:"reverse" description:"Bit reversal within output bytes"`
	Smallest     int    `short:"s" long:"smallest" default:"32" description:"Ordinal value of smallest character"`
	Largest      int    `short:"l" long:"largest" default:"126" description:"Ordinal value of largest character"`
	ErrChar      int    `short:"e" long:"errchar" default:"63" description:"Ordinal value of the fallback character"`
	Charset      string `short:"c" long:"charset" description:"Character set, e.g. 1234567890: to restrict for a clock display"`
	CharsetFile  string `short:"k" long:"charset-file" description:"File containing the character set, e.g. a cyrillic subset"`
	StrictHeight bool   `long:"strict-height" description:"Fail if a bitmap font's native size differs from the requested height"`
	Debug        bool   `short:"d" long:"debug" description:"Trace the build at debug level"`

	Args struct {
		Infile  string `positional-arg-name:"infile" description:"Input font file (.ttf, .otf or .bdf)"`
		Height  int    `positional-arg-name:"height" description:"Font height in pixels"`
		Outfile string `positional-arg-name:"outfile" description:"Output font file (.mfnt)"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, isFlagsErr := err.(*flags.Error); isFlagsErr && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	setupTracing(opts.Debug)
	if err := run(opts); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(1)
	}
	fmt.Println(opts.Args.Outfile, "written successfully.")
}

func setupTracing(debug bool) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	level := "Info"
	if debug { level = "Debug" }
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.microfont.build": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func run(opts options) error {
	if !strings.HasSuffix(strings.ToLower(opts.Args.Outfile), ".mfnt") {
		return fmt.Errorf("output filename must have a .mfnt extension")
	}
	if opts.ErrChar < 0 || opts.ErrChar > 255 {
		return fmt.Errorf("--errchar must be between 0 and 255")
	}
	if opts.Smallest < 0 {
		return fmt.Errorf("--smallest must be >= 0")
	}
	if opts.Largest > 0xFFFF {
		return fmt.Errorf("--largest must be <= 65535")
	}

	rast, err := openRasterizer(opts.Args.Infile)
	if err != nil { return err }

	charset, err := assembleCharset(opts)
	if err != nil { return err }

	fontBuilder := builder.New(rast, charset)
	fontBuilder.SetMonospaced(opts.Fixed)
	fontBuilder.SetBitReversal(opts.Reverse)
	fontBuilder.SetStrictHeight(opts.StrictHeight)

	var buf bytes.Buffer
	metrics, err := fontBuilder.Build(opts.Args.Height, &buf)
	if err != nil {
		return fmt.Errorf("building %s: %w", opts.Args.Infile, err)
	}
	tracer().Infof("writing %d bytes, height %d, baseline %d", buf.Len(), metrics.Height, metrics.Ascent)
	return os.WriteFile(opts.Args.Outfile, buf.Bytes(), 0644)
}

// Picks the rasterizer matching the input file's extension.
func openRasterizer(path string) (builder.Rasterizer, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".ttf"),
		strings.HasSuffix(strings.ToLower(path), ".otf"):
		sfntFont, err := builder.ParseFromPath(path)
		if err != nil { return nil, err }
		return builder.NewOutlineRasterizer(sfntFont), nil
	case strings.HasSuffix(strings.ToLower(path), ".bdf"):
		return builder.ParseBDFFromPath(path)
	default:
		return nil, fmt.Errorf("font file should be a ttf, otf or bdf file")
	}
}

func assembleCharset(opts options) (builder.Charset, error) {
	fallback := rune(opts.ErrChar)
	chars := opts.Charset
	if opts.CharsetFile != "" {
		content, err := os.ReadFile(opts.CharsetFile)
		if err != nil { return builder.Charset{}, err }
		chars = string(content)
	}
	if chars != "" {
		if opts.Smallest != int(builder.MinChar) || opts.Largest != int(builder.MaxChar) {
			tracer().Infof("explicit charset given, smallest and largest values ignored")
		}
		return builder.CharsetFromString(fallback, chars), nil
	}
	return builder.RangeCharset(fallback, rune(opts.Smallest), rune(opts.Largest)), nil
}
