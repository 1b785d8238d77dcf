package mapfile

import (
	"bufio"
	"os"
	"strings"
)

// OutputPath returns the conventional `<map>.out` path for a given map
// file path.
func OutputPath(mapPath string) string {
	return mapPath + ".out"
}

// WriteLog writes lines (one per tick, plus the final result line as
// produced by engine.Result.String()) to the map's .out file.
func WriteLog(mapPath string, lines []string) error {
	f, err := os.Create(OutputPath(mapPath))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// JoinedLog renders lines as they would appear in the .out file, for
// callers that want the text without touching disk (e.g. the render
// subcommand reading a log back in, or tests).
func JoinedLog(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
