package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/todos"
)

func main() {
	count := flag.Int("count", 100000, "Number of todos to generate")
	page := flag.Uint("page", 100, "Page size used when walking the list")
	flag.Parse()

	if *count <= 0 || *page == 0 {
		fmt.Fprintln(os.Stderr, "count and page must be positive")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	service, err := todos.New(todos.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	// 1. Add
	fmt.Printf("Adding %d todos...\n", *count)
	start := time.Now()
	for i := 0; i < *count; i++ {
		service.Add(fmt.Sprintf("todo %d", i))
	}
	addDuration := time.Since(start)

	// 2. Remove every other todo so pages straddle gaps
	start = time.Now()
	for id := uint32(2); id <= uint32(*count); id += 2 {
		service.Remove(id)
	}
	removeDuration := time.Since(start)

	// 3. Walk every page
	start = time.Now()
	seen := 0
	for offset := uint32(0); ; offset += uint32(*page) {
		items := service.List(offset, uint32(*page))
		if len(items) == 0 {
			break
		}
		seen += len(items)
	}
	listDuration := time.Since(start)

	// 4. Glob scan
	start = time.Now()
	matched, err := service.Match("todo *1", 0, uint32(*count))
	if err != nil {
		panic(err)
	}
	matchDuration := time.Since(start)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d todos, page %d):\n", *count, *page)
	fmt.Printf("  Add:    %v\n", addDuration)
	fmt.Printf("  Remove: %v\n", removeDuration)
	fmt.Printf("  List:   %v (Items: %d)\n", listDuration, seen)
	fmt.Printf("  Match:  %v (Items: %d)\n", matchDuration, len(matched))
	fmt.Printf("--------------------------------------------------\n")
}
