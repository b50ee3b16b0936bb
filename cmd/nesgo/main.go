// Command nesgo plays an iNES ROM.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/dstq/nesgo/nes"
	"github.com/dstq/nesgo/ui"
)

var (
	width  = flag.Int("width", 256*3, "window width in pixels")
	height = flag.Int("height", 240*3, "window height in pixels")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	args := flag.Args()
	if len(args) != 1 {
		glog.Exitf("usage: nesgo [flags] <rom.nes>")
	}

	rom, err := os.ReadFile(args[0])
	if err != nil {
		glog.Exitf("nesgo: %v", err)
	}

	frames := make(chan []byte, 1)
	console, err := nes.NewConsole(rom, ui.FrameCallback(frames))
	if err != nil {
		glog.Exitf("nesgo: %v", err)
	}
	console.Reset()

	stopAudio, err := ui.StartAudio(console)
	if err != nil {
		glog.Exitf("nesgo: %v", err)
	}
	defer stopAudio()

	ui.Start(console, frames, *width, *height)
}
