package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"GoCaesar/internal/cipher"
	"GoCaesar/internal/config"
	"GoCaesar/internal/frequency"
	"GoCaesar/internal/lexicon"
	"GoCaesar/internal/ranker"
	"GoCaesar/internal/remote"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	// Global flags.
	verbose    bool
	configPath string
	lang       string
	key        int

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "caesar",
	Short: "Break, apply, and analyze Caesar shift ciphers",
	Long: `caesar recovers plaintext from shift-ciphered text without the key.

It brute-forces all 26 shifts, scores each candidate against a known-word
list for the chosen language, and reports the ranked results. Latin,
Cyrillic, Greek, and Arabic letters each shift within their own alphabet;
everything else passes through untouched.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			zc.Level = zap.NewAtomicLevelAt(parseLogLevel(cfg.Logging.Level))
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var crackCmd = &cobra.Command{
	Use:   "crack [ciphertext]",
	Short: "Brute-force a ciphertext and print the ranked candidates",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCrack,
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [plaintext]",
	Short: "Shift a text forward by --key",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if strings.TrimSpace(text) == "" {
			return errors.New("plain text is required")
		}
		fmt.Fprintln(cmd.OutOrStdout(), cipher.Encrypt(text, key))
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [ciphertext]",
	Short: "Shift a text back by --key",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if strings.TrimSpace(text) == "" {
			return errors.New("cipher text is required")
		}
		fmt.Fprintln(cmd.OutOrStdout(), cipher.Decrypt(text, key))
		return nil
	},
}

var freqCmd = &cobra.Command{
	Use:   "freq [ciphertext]",
	Short: "Frequency analysis: guess the key from letter statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFreq,
}

func runCrack(cmd *cobra.Command, args []string) error {
	ciphertext := strings.Join(args, " ")
	if strings.TrimSpace(ciphertext) == "" {
		return errors.New("cipher text is required")
	}

	hint := lang
	if hint == "" {
		hint = cfg.Analysis.DefaultLang
	}

	breaker := newBreaker()
	analysis := breaker.Analyze(ciphertext, hint)

	out := cmd.OutOrStdout()
	if analysis.Key != nil {
		fmt.Fprintf(out, "best key:   %d\n", *analysis.Key)
	} else {
		fmt.Fprintln(out, "best key:   none (no alphabetic content)")
	}
	fmt.Fprintf(out, "plaintext:  %s\n", analysis.PlainText)
	fmt.Fprintf(out, "score:      %.4f\n\n", analysis.Score)
	fmt.Fprintln(out, "top candidates:")
	for i, c := range analysis.Candidates {
		fmt.Fprintf(out, "  [%d] key=%-2d score=%.4f  %s\n", i+1, c.Key, c.Score, c.Plaintext)
	}
	return nil
}

func runFreq(cmd *cobra.Command, args []string) error {
	ciphertext := strings.Join(args, " ")
	if strings.TrimSpace(ciphertext) == "" {
		return errors.New("cipher text is required")
	}

	hint := lang
	if hint == "" {
		hint = cfg.Analysis.DefaultLang
	}

	plain, k := frequency.DecryptByGuess(ciphertext, hint)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "guessed key: %d\n", k)
	fmt.Fprintf(out, "plaintext:   %s\n", plain)
	fmt.Fprintf(out, "chi-squared: %.4f\n", frequency.ChiSquared(plain, hint))
	fmt.Fprintf(out, "entropy:     %.4f bits/rune\n", frequency.Entropy(ciphertext))
	fmt.Fprintf(out, "bigrams:     %.1f log-prob\n", frequency.BigramLogLikelihood(plain))
	return nil
}

// newBreaker assembles the local engine, wrapped by the remote client when
// one is configured. The remote path falls back to local transparently.
func newBreaker() remote.Breaker {
	local := ranker.New(lexicon.NewScorer(lexicon.NewRegistry()))
	if !cfg.Remote.Enabled || cfg.Remote.BaseURL == "" {
		return local
	}
	timeout := config.Duration(cfg.Remote.Timeout, 0)
	return remote.NewClient(cfg.Remote.BaseURL, timeout, local, logger)
}

func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "", "language hint (en, fr, auto)")

	encryptCmd.Flags().IntVarP(&key, "key", "k", 3, "shift key")
	decryptCmd.Flags().IntVarP(&key, "key", "k", 3, "shift key")

	rootCmd.AddCommand(crackCmd, encryptCmd, decryptCmd, freqCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
