package main

import (
	"github.com/spf13/cobra"

	"jobjotter/internal/bootstrap"
	"jobjotter/internal/matching"
)

var vocabularyCmd = &cobra.Command{
	Use:   "vocabulary",
	Short: "Print the active vocabulary as YAML",
	Long:  "Print the vocabulary the matcher would use, as YAML. The output can be edited and passed back with --vocabulary.",
	RunE:  runVocabulary,
}

func init() {
	rootCmd.AddCommand(vocabularyCmd)
}

func runVocabulary(cmd *cobra.Command, _ []string) error {
	vocab, err := bootstrap.LoadVocabulary(vocabularyPath())
	if err != nil {
		return err
	}
	// Normalize through the engine so the output shows what is actually matched.
	data, err := matching.New(vocab).Vocabulary().YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
