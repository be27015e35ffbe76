// Command jobjotter scores a résumé against a job description from the
// command line, without running the API.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "jobjotter",
	Short:         "Résumé vs job description matching",
	Long:          "jobjotter scores how well a résumé matches a job description using skill and keyword vocabularies, and exports the result as JSON or HTML.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var vocabularyFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&vocabularyFile, "vocabulary", "", "Path to a YAML vocabulary file (defaults to VOCABULARY_FILE, then the built-in vocabulary)")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func vocabularyPath() string {
	if vocabularyFile != "" {
		return vocabularyFile
	}
	return os.Getenv("VOCABULARY_FILE")
}
