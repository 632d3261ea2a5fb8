// Command llamaparse sends PDF files to the LlamaParse cloud API and writes
// the extracted text or markdown to stdout, or to per-file outputs with -out.
// Usage: llamaparse [flags] file.pdf [file.pdf ...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	llamaparse "github.com/janus-dev87/llama-parse"
	"github.com/janus-dev87/llama-parse/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	format := flag.String("format", cfg.ResultFormat, "result format: text or markdown")
	outDir := flag.String("out", cfg.OutputDir, "directory for per-file results (stdout when empty)")
	concurrency := flag.Int("concurrency", cfg.Concurrency, "number of files parsed in parallel")
	verbose := flag.Bool("verbose", cfg.Verbose, "log parsing progress")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		return fmt.Errorf("usage: llamaparse [flags] file.pdf [file.pdf ...]")
	}
	if *concurrency < 1 {
		*concurrency = 1
	}

	client, err := llamaparse.New(llamaparse.Config{
		APIKey:        cfg.APIKey,
		BaseURL:       cfg.BaseURL,
		ResultType:    llamaparse.ResultType(*format),
		CheckInterval: time.Duration(cfg.CheckIntervalSecs) * time.Second,
		MaxTimeout:    time.Duration(cfg.MaxTimeoutSecs) * time.Second,
		Verbose:       *verbose,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Each file is an independent job; fan out with bounded concurrency.
	sem := make(chan struct{}, *concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for _, path := range paths {
		path := path

		sem <- struct{}{} // acquire
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }() // release

			docs, err := client.LoadDataContext(ctx, path, nil)
			if err != nil {
				log.Printf("WARN: %s: %v", path, err)
				mu.Lock()
				failures++
				mu.Unlock()
				return
			}

			mu.Lock()
			defer mu.Unlock()
			for _, doc := range docs {
				if err := emit(*outDir, path, *format, doc.Text); err != nil {
					log.Printf("WARN: %s: %v", path, err)
					failures++
				}
			}
		}()
	}
	wg.Wait()

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed", failures, len(paths))
	}
	return nil
}

// emit writes one parsed result either to stdout or to outDir with the
// source file's name and an extension matching the format.
func emit(outDir, srcPath, format, text string) error {
	if outDir == "" {
		fmt.Println(text)
		return nil
	}

	ext := ".txt"
	if format == "markdown" {
		ext = ".md"
	}
	name := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath)) + ext

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return os.WriteFile(filepath.Join(outDir, name), []byte(text), 0o644)
}
