package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// The writer has already printed its own failure message.
		if !errors.Is(err, errGenerate) {
			log.Error(err)
		}
		os.Exit(1)
	}
}
