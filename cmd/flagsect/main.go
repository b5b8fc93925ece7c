package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	intersect "github.com/dkorbel/flag-intersect-go"
)

// go run . flags/fr.png flags/nl.png
// go run . flags/fr.png flags/de.png flags/be.png
// go run . flags/fr.png flags/nl.png -tolerance 30 -out output/result.png
// go run . flags/fr.bmp flags/de.bmp -white-bg

func main() {
	output := flag.String("out", "", "Output path (defaults to <dir>/<a>_AND_<b>...<ext>)")
	tolerance := flag.Int("tolerance", intersect.DefaultTolerance,
		"Max Euclidean RGB distance for two pixels to match (0 = exact)")
	whiteBG := flag.Bool("white-bg", false,
		"Fill non-matching pixels with white instead of transparency")
	configPath := flag.String("config", "", "Optional TOML config with default settings")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] FLAG FLAG [FLAG...]\n\n"+
				"Perform a pixel-wise logical AND on two or more flag images.\n"+
				"Matching pixels keep the first flag's colour; differing pixels\n"+
				"become transparent (or white).\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) < 2 {
		fmt.Fprintln(os.Stderr, "Error: at least 2 flag images are required.")
		flag.Usage()
		os.Exit(1)
	}

	conf := defaultConfig()
	if *configPath != "" {
		var err error
		conf, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Explicit flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tolerance":
			conf.Tolerance = *tolerance
		case "white-bg":
			conf.WhiteBG = *whiteBG
		}
	})
	if conf.Tolerance < 0 {
		fmt.Fprintf(os.Stderr, "Error: tolerance must be non-negative, got %d\n", conf.Tolerance)
		os.Exit(1)
	}

	// Validate every input before loading anything.
	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !info.Mode().IsRegular() {
			fmt.Fprintf(os.Stderr, "Error: not a file: %s\n", path)
			os.Exit(1)
		}
	}

	outPath := *output
	if outPath == "" {
		outPath = deriveOutputPath(conf.OutputDir, paths)
	}
	format := intersect.FormatForPath(outPath)

	fmt.Printf("Loading %d flags at native resolution...\n", len(paths))
	images := make([]*intersect.Raster, len(paths))
	for i, path := range paths {
		img, err := intersect.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		images[i] = img
		fmt.Printf("  %s: %dx%d\n", filepath.Base(path), img.Width(), img.Height())
	}

	fmt.Printf("Computing intersection of %d flags (tolerance=%d)...\n", len(paths), conf.Tolerance)
	opts := intersect.Options{Tolerance: conf.Tolerance}
	if conf.WhiteBG {
		opts.Fill = intersect.FillWhite
	}
	result, err := intersect.IntersectMany(images, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saving result to: %s\n", outPath)
	if err := intersect.Save(result, outPath, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stat := intersect.Stats(result)
	fmt.Printf("Done. %d / %d pixels matched (%.1f%%).\n", stat.Kept, stat.Total, stat.Pct)
}

// deriveOutputPath joins all flag stems with _AND_ and reuses the first
// input's extension, e.g. output/fr_AND_nl.png.
func deriveOutputPath(dir string, paths []string) string {
	stems := make([]string, len(paths))
	for i, path := range paths {
		base := filepath.Base(path)
		stems[i] = strings.TrimSuffix(base, filepath.Ext(base))
	}
	ext := filepath.Ext(paths[0])
	if ext == "" {
		ext = ".png"
	}
	return filepath.Join(dir, strings.Join(stems, "_AND_")+ext)
}
