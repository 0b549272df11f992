// Command sketchreplay replays a script of canonical editor events against
// the polygon-editing engine and prints the resulting geometry as JSON.
// It exercises the engine without a display and doubles as a debugging tool
// for event sequences reported from the UI.
//
// Script format, one event per line ('#' starts a comment):
//
//	commit X Y
//	press X Y
//	move X Y
//	release
//	undo
//	redo
//	clear
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"polysketch/internal/editor"
	"polysketch/pkg/geometry"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	scriptPath := flag.String("script", "", "event script to replay (default: stdin)")
	verbose := flag.Bool("v", false, "log every event and its outcome")
	flag.Parse()

	var in io.Reader = os.Stdin
	if *scriptPath != "" {
		f, err := os.Open(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to open script: %v", err)
		}
		defer f.Close()
		in = f
	}

	ctrl := editor.New()
	applied, noops, err := replay(ctrl, in, *verbose)
	if err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
	log.Printf("Replayed %d events (%d no-ops)", applied+noops, noops)

	snap := ctrl.Snapshot()
	out := result{Committed: snap.Committed, Active: snap.Active}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(data))
}

type result struct {
	Committed []editor.Polygon `json:"committed"`
	Active    editor.Polygon   `json:"active"`
}

// replay feeds every scripted event to the controller and counts accepted
// events and defined no-ops.
func replay(ctrl *editor.Controller, in io.Reader, verbose bool) (applied, noops int, err error) {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		changed, err := apply(ctrl, strings.Fields(line))
		if err != nil {
			return applied, noops, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if changed {
			applied++
		} else {
			noops++
		}
		if verbose {
			log.Printf("line %d: %q changed=%v", lineNo, line, changed)
		}
	}
	return applied, noops, scanner.Err()
}

func apply(ctrl *editor.Controller, fields []string) (bool, error) {
	verb := fields[0]
	switch verb {
	case "commit", "press", "move":
		p, err := parsePoint(fields)
		if err != nil {
			return false, err
		}
		switch verb {
		case "commit":
			return ctrl.Commit(p), nil
		case "press":
			return ctrl.StartDrag(p), nil
		default:
			return ctrl.MoveDrag(p), nil
		}
	case "release":
		return ctrl.EndDrag(), nil
	case "undo":
		return ctrl.Undo(), nil
	case "redo":
		return ctrl.Redo(), nil
	case "clear":
		return ctrl.Clear(), nil
	}
	return false, fmt.Errorf("unknown event %q", verb)
}

func parsePoint(fields []string) (geometry.Point2D, error) {
	if len(fields) != 3 {
		return geometry.Point2D{}, fmt.Errorf("%s wants X Y, got %d args", fields[0], len(fields)-1)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("bad X %q", fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return geometry.Point2D{}, fmt.Errorf("bad Y %q", fields[2])
	}
	return geometry.NewPoint2D(x, y), nil
}
