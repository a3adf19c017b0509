package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/talentdesk/recruitsync/internal/cli"
	"github.com/talentdesk/recruitsync/pkg/recruit"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(recruit.ExitPanic)
		}
	}()

	if os.Getenv("RECRUITSYNC_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(recruit.ExitCodeForError(err))
	}
}
