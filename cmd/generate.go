package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kondate/internal/catalog"
	"kondate/internal/factories"
)

var (
	generateCount  int
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Writes a synthetic sample catalog",
	Long: `generate emits a synthetic catalog in the exact text format the parser
consumes, useful for demos and for load-testing the decision engine.`,
	Run: func(cmd *cobra.Command, args []string) {
		mf := &factories.MenuRecordFactory{}
		text := catalog.Render(mf.CreateCatalog(generateCount))

		if generateOutput == "" {
			fmt.Print(text)
			return
		}
		if err := os.WriteFile(generateOutput, []byte(text), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s\n", generateCount, generateOutput)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&generateCount, "count", 20, "Number of rows to generate")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "Destination file (default stdout)")
}
