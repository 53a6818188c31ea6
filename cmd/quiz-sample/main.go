package main

import (
	"flag"
	"fmt"
	"os"

	"textquiz/internal/quiz"
)

func main() {
	out := flag.String("out", "sample-quiz.txt", "path of the starter quiz file to create")
	flag.Parse()

	if err := quiz.WriteSample(*out); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote sample quiz to %s\n", *out)
}
