package main

import (
	"github.com/haytac/emoji-stripper/internal/cli"
	"github.com/haytac/emoji-stripper/internal/logging"
)

func main() {
	// Basic logger until PersistentPreRunE applies the loaded config.
	logging.Setup(logging.Config{Level: "info", Console: true, TimeFormat: "15:04:05"})
	cli.Execute()
}
