// Command tanksim runs, tournaments, and replays tank-combat matches
// against the map file format internal/mapfile understands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
