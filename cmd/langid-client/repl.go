package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	replAlt  string
	replHint string
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Send every input line to the default backend, the alternate, and the alternate with a hint",
	Long: `Reads lines from stdin until EOF or "quit". Each line is sent three times on
three connections: default backend, alternate backend, alternate backend with --hint.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return repl(dialer(), cmd.InOrStdin(), cmd.OutOrStdout(), replAlt, replHint)
	},
}

func init() {
	replCmd.Flags().StringVar(&replAlt, "alt", "alt", "classifier token of the alternate backend")
	replCmd.Flags().StringVarP(&replHint, "hint", "l", "de", "hint sent with the third request")
	rootCmd.AddCommand(replCmd)
}

func repl(c Client, in io.Reader, out io.Writer, alt, hint string) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, ">> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}
		for _, step := range []struct {
			label string
			req   Request
		}{
			{"", Request{Text: line}},
			{alt + ": ", Request{Text: line, Classifier: alt}},
			{alt + " + langhint: ", Request{Text: line, Classifier: alt, Hint: hint}},
		} {
			resp, err := c.Do(step.req)
			if err != nil {
				fmt.Fprintf(out, "%serror: %v\n", step.label, err)
				continue
			}
			fmt.Fprintln(out, step.label+resp)
		}
	}
}
