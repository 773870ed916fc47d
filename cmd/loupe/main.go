// Command loupe is a terminal viewer for large text files. The file is
// mapped into memory and its line index is built on a background goroutine,
// so scrolling works immediately while the status bar totals catch up.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phroun/loupe"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: user config dir)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loupe: %v\n", err)
		os.Exit(1)
	}

	file, err := loupe.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loupe: %v\n", err)
		os.Exit(1)
	}
	file.Start()

	v, err := newViewer(file, path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loupe: %v\n", err)
		os.Exit(1)
	}
	v.run()
}
