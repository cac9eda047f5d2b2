package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coltc/internal/diagfmt"
	"coltc/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file" + driver.SourceExt,
	Short: "Tokenize a colt source file",
	Long:  `Tokenize breaks down a colt source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().Bool("comments", false, "keep comment tokens in the stream")
	tokenizeCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	keepComments, _ := cmd.Flags().GetBool("comments")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	result, err := driver.Tokenize(path, driver.Options{
		MaxDiagnostics: maxDiagnostics,
		KeepComments:   keepComments,
		Log:            newLogger(cmd),
		Timings:        timings,
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
		err := diagfmt.Diagnostics(os.Stderr, result.Path, result.Bag.Items(),
			result.Buffer.Lines(), opts)
		if err != nil {
			return err
		}
	}

	out := os.Stdout
	var outFile *os.File
	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		outFile, err = os.Create(outPath)
		if err != nil {
			return err
		}
		out = outFile
	}

	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, out)}
		err = diagfmt.TokensPretty(out, result.Buffer, opts)
	case "json":
		err = diagfmt.TokensJSON(out, result.Path, result.Buffer)
	case "msgpack":
		err = diagfmt.TokensMsgpack(out, result.Path, result.Buffer)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if outFile != nil {
		if cerr := outFile.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}

	if timings {
		fmt.Fprintf(os.Stderr, "%s: total %.2f ms\n", result.Path, result.Timing.TotalMS)
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: %d diagnostics", result.Path, result.Bag.Len())
	}
	return nil
}
