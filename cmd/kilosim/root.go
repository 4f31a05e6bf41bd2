// Package main provides the kilosim command line tool. It runs a swarm of
// simulated kilobots whose control logic lives in an external behavior
// executable.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kilosim",
	Short: "kilosim runs swarms of robots controlled by external behavior processes.",
	Long: `kilosim runs swarms of simulated kilobots. Each robot's control logic ` +
		`is an external executable that the simulator spawns once and then ` +
		`single-steps through a shared memory region and a stop/continue ` +
		`signaling handshake, one control step per simulation tick.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func main() {
	// Optional environment defaults, e.g. KILOSIM_BEHAVIOR.
	_ = godotenv.Load()

	Execute()
}
