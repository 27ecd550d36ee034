package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/julius-app/icongen"
	"github.com/julius-app/icongen/utils"
	"golang.org/x/term"
)

const helpBanner = `
┬┌─┐┌─┐┌┐┌┌─┐┌─┐┌┐┌
││  │ │││││ ┬├┤ │││
┴└─┘└─┘┘└┘└─┘└─┘┘└┘

Application icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source = flag.String("svg", "", "Vector source file or URL (the built-in design is used when empty)")
	size   = flag.Int("size", 512, "Master icon size in pixels")
	outDir = flag.String("out", ".", "Output directory")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		utils.DisableColors()
	}

	if *size <= 0 {
		log.Fatal(utils.DecorateText("The icon size must be a positive integer!", utils.ErrorMessage))
	}
	if *size < icongen.MaxSize(icongen.ICNS) {
		fmt.Fprintln(os.Stderr, utils.DecorateText(
			fmt.Sprintf("Warning: a %dpx master degrades the icon sizes above it, %dpx or larger is recommended.",
				*size, icongen.MaxSize(icongen.ICNS)), utils.StatusMessage))
	}

	proc := icongen.NewProcessor(artwork(*source), *size)

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ICONGEN", utils.StatusMessage),
		utils.DecorateText("⇢ rendering the icon master...", utils.DefaultMessage),
	)
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*80)
	spinner.Start()

	now := time.Now()
	master, err := proc.Master()
	spinner.Stop()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to render the master raster: %s", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf(
			utils.DecorateText("Unable to create the output directory: %s", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	outputs := []struct {
		name   string
		encode func(io.Writer) error
	}{
		{"icon.png", func(w io.Writer) error { return proc.WritePNG(w, master) }},
		{"icon.ico", func(w io.Writer) error { return icongen.Encode(w, master, icongen.ICO) }},
		{"icon.icns", func(w io.Writer) error { return icongen.Encode(w, master, icongen.ICNS) }},
	}

	for _, output := range outputs {
		path := filepath.Join(*outDir, output.name)
		if err := writeAtomic(path, output.encode); err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to generate %s: %s", utils.ErrorMessage),
				path, utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", utils.DecorateText("✔", utils.SuccessMessage), path)
	}

	fmt.Fprintf(os.Stdout, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// artwork selects the artwork source: a vector asset when one is provided,
// otherwise the built-in procedural design.
func artwork(src string) icongen.Artwork {
	if src == "" {
		return icongen.NewSnake()
	}

	path := src
	if utils.IsValidUrl(src) {
		tmp, err := utils.DownloadSVG(src)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to download the vector source: %s", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		defer os.Remove(tmp)
		path = tmp
	}

	art, err := icongen.LoadSVG(path)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to load the vector source: %s", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	return art
}

// writeAtomic encodes the output into a temporary file and renames it into
// place, so a failed run never leaves a partial icon file behind.
func writeAtomic(path string, encode func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".icongen-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
