package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/yungbote/trackwise-backend/internal/app"
	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/trackwise-backend/internal/pkg/errors"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var trackID, moduleID, quizID uint
	var depthName string
	var answers bool
	fs.UintVar(&trackID, "track", 0, "track id to print")
	fs.UintVar(&moduleID, "module", 0, "module id to print")
	fs.UintVar(&quizID, "quiz", 0, "quiz id to print")
	fs.StringVar(&depthName, "depth", "full", "shallow | with_children | full")
	fs.BoolVar(&answers, "answers", false, "include the answer key when printing a quiz")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	depth, ok := learning.ParseDepth(depthName)
	if !ok {
		fmt.Fprintf(stderr, "unknown depth %q\n", depthName)
		return exitUsage
	}

	application, err := app.New()
	if err != nil {
		fmt.Fprintf(stderr, "init app: %v\n", err)
		return exitFailure
	}
	defer application.Close()

	dbc := dbctx.Background()
	catalog := application.Services.Catalog

	var out any
	switch {
	case quizID != 0 && answers:
		out, err = catalog.QuizAnswerKey(dbc, quizID)
	case quizID != 0:
		out, err = catalog.Quiz(dbc, quizID, depth)
	case moduleID != 0:
		out, err = catalog.Module(dbc, moduleID, depth)
	case trackID != 0:
		out, err = catalog.Track(dbc, trackID, depth)
	default:
		out, err = catalog.ListTracks(dbc)
	}
	if err != nil {
		application.Log.Warn("Catalog lookup failed", "error", err)
		fmt.Fprintf(stderr, "lookup: %v\n", err)
		if errors.Is(err, apperrors.ErrNotFound) {
			return exitNotFound
		}
		return exitFailure
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(stderr, "encode: %v\n", err)
		return exitFailure
	}
	return exitOK
}
