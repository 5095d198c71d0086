// ABOUTME: Entry point for sarplan CLI
// ABOUTME: Command-line tool for SAR equipment procurement planning

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rescueops/sar-equipment-planner/cmd/sarplan/cmd"
	"github.com/rescueops/sar-equipment-planner/logger"
)

func main() {
	// Optional .env for local runs
	_ = godotenv.Load()

	logger.Init()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
