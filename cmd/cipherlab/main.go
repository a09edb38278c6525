// main.go sets up the cipherlab command-line interface using Cobra: a
// root command with encode/decode/visualize/analyze/presets
// subcommands over the same cipher registry the server exposes.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cipherlab-go/internal/analysis"
	"github.com/cipherlab-go/internal/cipher"
)

var version = "dev" // set by the linker

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

// key material flags shared by the cipher subcommands
var (
	flagFamily     string
	flagText       string
	flagKeyword    string
	flagKeyword2   string
	flagShift      int
	flagRails      int
	flagMatrix     string
	flagOrder      string
	flagPad        string
	flagPreset     string
	flagSeed       uint64
	flagMultiplier uint64
	flagIncrement  uint64
	flagModulus    uint64
)

func init() {
	rootCmd = newRootCmd()
}

// newRootCmd creates and configures the root cobra command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cipherlab",
		Short: "Classical ciphers and cryptanalysis for the terminal.",
		Long: `cipherlab runs the classical cipher library from the command line:
substitution (caesar, vigenere, beaufort, autokey), polygraphic
(playfair, hill), transposition (railfence, columnar, myszkowski,
doublecolumnar), super encryption, one-time pad, and an LCG stream
cipher, plus ciphertext statistics.

Text comes from --text or stdin:
  cipherlab encode --family vigenere --keyword LEMON --text ATTACKATDAWN
  echo HELLO | cipherlab encode --family caesar --shift 3`,
	}

	cmd.AddCommand(newTransformCmd("encode"))
	cmd.AddCommand(newTransformCmd("decode"))
	cmd.AddCommand(visualizeCmd())
	cmd.AddCommand(analyzeCmd())
	cmd.AddCommand(presetsCmd())

	cmd.Version = version
	return cmd
}

// addKeyFlags registers the shared key material flags on a subcommand.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagFamily, "family", "", "cipher family (see 'cipherlab encode --help')")
	cmd.Flags().StringVar(&flagText, "text", "", "input text; stdin when omitted")
	cmd.Flags().StringVar(&flagKeyword, "keyword", "", "keyword key")
	cmd.Flags().StringVar(&flagKeyword2, "keyword2", "", "second keyword (doublecolumnar, super)")
	cmd.Flags().IntVar(&flagShift, "shift", 0, "caesar shift")
	cmd.Flags().IntVar(&flagRails, "rails", 0, "rail fence rail count")
	cmd.Flags().StringVar(&flagMatrix, "matrix", "", "hill matrix, row-major comma-separated (e.g. 3,3,2,5)")
	cmd.Flags().StringVar(&flagOrder, "order", "", "super cipher stage order: substitution-first or transposition-first")
	cmd.Flags().StringVar(&flagPad, "pad", "", "one-time pad key")
	cmd.Flags().StringVar(&flagPreset, "preset", "", "LCG preset name")
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "LCG seed")
	cmd.Flags().Uint64Var(&flagMultiplier, "multiplier", 0, "LCG multiplier")
	cmd.Flags().Uint64Var(&flagIncrement, "increment", 0, "LCG increment")
	cmd.Flags().Uint64Var(&flagModulus, "modulus", 0, "LCG modulus")
	cmd.MarkFlagRequired("family")
}

// keySpec assembles a KeySpec from the flags.
func keySpec() cipher.KeySpec {
	return cipher.KeySpec{
		Keyword:    flagKeyword,
		Keyword2:   flagKeyword2,
		Shift:      flagShift,
		Rails:      flagRails,
		Matrix:     flagMatrix,
		Order:      flagOrder,
		Pad:        flagPad,
		Preset:     flagPreset,
		Seed:       flagSeed,
		Multiplier: flagMultiplier,
		Increment:  flagIncrement,
		Modulus:    flagModulus,
	}
}

// inputText returns --text, or stdin when the flag is empty.
func inputText() (string, error) {
	if flagText != "" {
		return flagText, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func newTransformCmd(op string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op,
		Short: strings.ToUpper(op[:1]) + op[1:] + " text with a cipher family",
		RunE: func(cmd *cobra.Command, args []string) error {
			ci, err := cipher.New(cipher.Family(flagFamily), keySpec())
			if err != nil {
				return err
			}
			text, err := inputText()
			if err != nil {
				return err
			}
			var out string
			if op == "encode" {
				out, err = ci.Encode(text)
			} else {
				out, err = ci.Decode(text)
			}
			if err != nil {
				return err
			}
			fmt.Println(out)
			if adv, ok := ci.(cipher.Advisor); ok {
				for _, w := range adv.Advisories() {
					fmt.Fprintln(os.Stderr, "warning:", w)
				}
			}
			return nil
		},
	}
	addKeyFlags(cmd)
	return cmd
}

func visualizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Show the intermediate steps of an encode as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ci, err := cipher.New(cipher.Family(flagFamily), keySpec())
			if err != nil {
				return err
			}
			text, err := inputText()
			if err != nil {
				return err
			}
			viz, err := ci.Visualize(text)
			if err != nil {
				return err
			}
			return printJSON(viz)
		},
	}
	addKeyFlags(cmd)
	return cmd
}

func analyzeCmd() *cobra.Command {
	var minLen int
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute ciphertext statistics (IC, chi-squared, entropy, key length)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := flagText
			if text == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				text = strings.TrimRight(string(data), "\n")
			}
			return printJSON(analysis.AnalyzeText(text, minLen))
		},
	}
	cmd.Flags().StringVar(&flagText, "text", "", "ciphertext; stdin when omitted")
	cmd.Flags().IntVar(&minLen, "min-len", 0, "minimum length before reporting (default 20)")
	return cmd
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named LCG parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cipher.Presets())
		},
	}
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
