package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"magnifier/viewer"
)

// Version is set by ldflags during build.
var Version = "dev"

const usage = "magnifier <--image path_to_image> [--scale scale] [--radius radius] [--brightness brightness]"

type cli struct {
	LogLevel string           `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"MAGNIFIER_LOG_LEVEL"`
	Version  kong.VersionFlag `help:"Print version information"`

	viewer.CLICmd `embed:""`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	switch os.Args[1] {
	case "--help", "-h", "help":
		fmt.Println(usage)
		return
	}

	var c cli
	kong.Parse(&c,
		kong.Name("magnifier"),
		kong.Description("Show an image dimmed, with a magnifying glass following the pointer."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Debug("running", "config", c.CLICmd)

	if err := c.Run(slog.Default()); err != nil {
		slog.Error("magnifier failed", "error", err)
		os.Exit(1)
	}
}
