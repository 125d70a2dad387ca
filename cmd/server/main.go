package main

//	@title			ProSolve API
//	@version		1.0
//	@description	Scenario planning: tasks, archived sessions, day history and LLM analysis.
//	@schemes		http https
//	@BasePath		/

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "prosolve",
		Short:   "ProSolve scenario planning API",
		Version: Version,
		// bare invocation serves
		RunE: runServe,
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
