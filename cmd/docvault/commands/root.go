package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"docvault/internal/config"
	"docvault/internal/domain"
	"docvault/internal/logging"
	"docvault/internal/store"
)

var (
	filePath   string
	password   string
	iterations int
	digest     string
	algorithm  string
	configPath string
	verbose    bool
	debug      bool

	log logging.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "docvault",
		Short:         "Single-file, optionally encrypted JSON document store",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = logging.Logger{Verbose: verbose, Debug: debug}

			if configPath == "" {
				configPath = config.DefaultPath()
			}
			f, err := config.Load(configPath)
			if err != nil {
				return err
			}
			// Flags beat the config file; the file beats built-in defaults.
			if !cmd.Flags().Changed("file") && f.Store.Path != "" {
				filePath = f.Store.Path
			}
			if !cmd.Flags().Changed("iterations") && f.Store.Iterations > 0 {
				iterations = f.Store.Iterations
			}
			if !cmd.Flags().Changed("digest") && f.Store.Digest != "" {
				digest = f.Store.Digest
			}
			if !cmd.Flags().Changed("algorithm") && f.Store.Algorithm != "" {
				algorithm = f.Store.Algorithm
			}
			log.Debugf("store file: %s (iterations=%d digest=%s algorithm=%s)",
				filePath, iterations, digest, algorithm)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&filePath, "file", "f", "docvault.json", "store file path")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "store password (omit for a plain-JSON store)")
	root.PersistentFlags().IntVar(&iterations, "iterations", domain.DefaultIterations, "PBKDF2 iteration count")
	root.PersistentFlags().StringVar(&digest, "digest", domain.DefaultDigest, "PBKDF2 digest (sha1, sha256, sha512)")
	root.PersistentFlags().StringVar(&algorithm, "algorithm", domain.DefaultAlgorithm, "AEAD cipher (aes-256-gcm, chacha20-poly1305)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.docvault/config.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show info output")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "show debug output")

	root.AddCommand(insertCmd(), findCmd(), updateCmd(), deleteCmd(), passwdCmd(), versionCmd())
	return root.Execute()
}

// openStore opens the configured store with the merged flag/file options.
func openStore() (*store.Store, error) {
	opts := []store.Option{
		store.WithIterations(iterations),
		store.WithDigest(digest),
		store.WithAlgorithm(algorithm),
	}
	if password != "" {
		opts = append(opts, store.WithPassword(password))
	}
	return store.Open(filePath, opts...)
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// parseDocument parses a CLI JSON argument into a document.
func parseDocument(arg string) (domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal([]byte(arg), &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}
	return doc, nil
}
