/*
Package icongen renders the application icon design into a high resolution
master raster and packages it into the ICO and ICNS icon container formats.

The master image is composed of a dark rounded-rectangle background plate and
an artwork layer, which is either a rasterized SVG source or the built-in
procedurally drawn design. Every icon size bundled into the containers is
derived from the master by downscaling.

The package provides a command line interface, to check the supported commands type:

	$ icongen --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/julius-app/icongen"
	)

	func main() {
		proc := icongen.NewProcessor(icongen.NewSnake(), 512)

		master, err := proc.Master()
		if err != nil {
			log.Fatal(err)
		}

		out, err := os.Create("icon.icns")
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()

		if err := icongen.Encode(out, master, icongen.ICNS); err != nil {
			log.Fatal(err)
		}
	}
*/
package icongen
