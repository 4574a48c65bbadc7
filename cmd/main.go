package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/segments/glcore"
	"github.com/richinsley/segments/glfwcontext"
	"github.com/richinsley/segments/options"
	"github.com/richinsley/segments/renderer"
	"github.com/richinsley/segments/resolver"
	"github.com/richinsley/segments/shader"
	"github.com/richinsley/segments/translator"
)

func runSegments(opts *options.Options) {
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	window, err := glfwcontext.New(glfwcontext.Config{
		Width:        *opts.Width,
		Height:       *opts.Height,
		Title:        *opts.Title,
		SwapInterval: *opts.SwapInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Shutdown()

	device, err := glcore.Init()
	if err != nil {
		log.Fatalf("Failed to initialize OpenGL: %v", err)
	}

	desc := shader.Default
	if *opts.ShaderDir != "" {
		desc = desc.WithSourceDir(*opts.ShaderDir)
	}
	if err := desc.Validate(); err != nil {
		log.Fatalf("Invalid shader table: %v", err)
	}

	var tr resolver.Translator
	if *opts.Translate {
		tr, err = translator.New(context.Background(), false)
		if err != nil {
			log.Fatalf("Failed to start shader translator: %v", err)
		}
	}

	shaders, err := resolver.Resolve(device, desc, tr)
	if err != nil {
		log.Fatalf("Failed to build shader programs: %v", err)
	}

	r, err := renderer.New(device, window, shaders, opts.Scene())
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	if err := r.Run(); err != nil {
		log.Fatalf("Rendering failed: %v", err)
	}
}

func init() {
	runtime.LockOSThread()
}

// quietExit reports whether a parse error was a -h request the flag package
// already answered with usage.
func quietExit(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

func main() {
	opts, err := options.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if quietExit(err) {
			os.Exit(0)
		}
		log.Fatalf("Invalid options: %v", err)
	}
	if *opts.Help {
		fmt.Println("Segments: click to draw lines, space flips the arc, backspace cycles the")
		fmt.Println("polygon mode, arrow keys rotate, scroll zooms, escape quits")
		opts.PrintDefaults()
		return
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	level := slog.LevelInfo
	if *opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	runSegments(opts)
}
