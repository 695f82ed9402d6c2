package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"reversi-tui/internal/console"
	"reversi-tui/internal/tui"
)

func main() {
	plain := flag.Bool("plain", getenb("REVERSI_PLAIN", false), "line-oriented console instead of the full-screen UI")
	hints := flag.Bool("hints", getenb("REVERSI_HINTS", true), "show legal moves for the side to move")
	flag.Parse()

	if *plain {
		if err := console.Run(os.Stdin, os.Stdout, console.Options{Hints: *hints}); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := tui.Run(tui.Options{Hints: *hints}); err != nil {
		log.Fatal(err)
	}
}

func getenb(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
