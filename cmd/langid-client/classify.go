package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	classifier string
	hint       string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify one text",
	Long:  `Classify the arguments joined by spaces, or stdin when no arguments are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if len(args) == 0 {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			text = string(b)
		}
		resp, err := dialer().Do(Request{Text: text, Classifier: classifier, Hint: hint})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp)
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifier, "classifier", "c", "", "backend token (alt selects the alternate backend)")
	classifyCmd.Flags().StringVarP(&hint, "hint", "l", "", "language hint, e.g. de")
	rootCmd.AddCommand(classifyCmd)
}
