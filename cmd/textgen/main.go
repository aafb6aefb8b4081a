// SPDX-License-Identifier: MIT

// Command textgen reads a corpus from stdin and writes t characters of
// pseudo-random text with the same order-k statistics.
//
//	textgen [--seed N] [--alphabet N] [--dump] <k> <t> < corpus.txt
//
// The output starts with the first k characters of the corpus.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kgram/markov"
	"github.com/katalvlaran/kgram/textgen"
)

var flags = struct {
	seed     int64
	alphabet int
	dump     bool
}{}

var rootCmd = &cobra.Command{
	Use:   "textgen <k> <t>",
	Short: "Generate text from an order-k character Markov model",
	Long: `
Read a corpus from stdin, build an order-k Markov model over its
characters and print t characters of generated text to stdout.
The first k characters of the corpus seed the output.`,
	Args:          cobra.ExactArgs(2),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().Int64VarP(&flags.seed, "seed", "s", 0,
		"random seed for a reproducible run (default: time based)")
	rootCmd.Flags().IntVar(&flags.alphabet, "alphabet", markov.ASCII,
		"alphabet size; 256 accepts any byte")
	rootCmd.Flags().BoolVar(&flags.dump, "dump", false,
		"print the model to stderr before generating")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("textgen: ")
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("k: %w", err)
	}
	t, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("t: %w", err)
	}
	if flags.alphabet < 1 || flags.alphabet > markov.Bytes {
		return fmt.Errorf("--alphabet %d: must be in [1, %d]", flags.alphabet, markov.Bytes)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}
	text := string(data)

	m, err := markov.Build(text, k, markov.WithAlphabet(flags.alphabet))
	if err != nil {
		return err
	}
	log.Printf("model: order=%d kgrams=%d observations=%d", m.Order(), m.Len(), m.Observations())
	if flags.dump {
		fmt.Fprint(os.Stderr, m)
	}

	seed := flags.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	g, err := textgen.New(m, textgen.WithSeed(seed))
	if err != nil {
		return err
	}

	start, err := textgen.Seed(text, k)
	if err != nil {
		return err
	}
	if err := g.Stream(os.Stdout, start, t); err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout)
	return err
}
