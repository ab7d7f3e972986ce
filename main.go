package main

import (
	"flag"
	"fmt"
	"os"

	"aurad/internal/di"
	"aurad/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug mode")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "aurad: %s\n", err)
		os.Exit(1)
	}
}
