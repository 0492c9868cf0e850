// Package config loads and validates the wallet configuration file: a plain
// key = value format with # comments, one setting per line.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the runtime settings of the wallet tooling.
type Config struct {
	// DataDir is the directory holding the wallet file or database.
	DataDir string

	// Network selects mainnet or testnet version bytes.
	Network string

	// Store selects the persistence backend, "file" or "bolt".
	Store string

	// Encrypt enables passphrase encryption of the wallet at rest.
	Encrypt bool

	// WalletFile is the wallet file name inside DataDir.
	WalletFile string
}

// DefaultDataDir returns the default data directory, ~/.hdwallet.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hdwallet"
	}
	return filepath.Join(home, ".hdwallet")
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		DataDir:    DefaultDataDir(),
		Network:    "mainnet",
		Store:      "file",
		Encrypt:    false,
		WalletFile: "wallet.json",
	}
}

// ConfigPath returns the path of the config file inside dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config")
}

// LoadConfig reads a configuration file. Missing keys keep their defaults,
// unknown keys are ignored for forward compatibility, and a line without a
// '=' separator is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("config: open: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return cfg, fmt.Errorf("%w: line %d: %q", ErrInvalidConfigLine, lineNo, line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "datadir":
			cfg.DataDir = value
		case "network":
			cfg.Network = value
		case "store":
			cfg.Store = value
		case "encrypt":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return cfg, fmt.Errorf("%w: line %d: encrypt must be a boolean", ErrInvalidConfigLine, lineNo)
			}
			cfg.Encrypt = b
		case "walletfile":
			cfg.WalletFile = value
		default:
			// Unknown key, skip.
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("config: read: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to path, creating parent directories
// as needed.
func SaveConfig(path string, cfg Config) error {
	var b strings.Builder
	b.WriteString("# HD Wallet Configuration\n\n")
	fmt.Fprintf(&b, "datadir = %s\n", cfg.DataDir)
	fmt.Fprintf(&b, "network = %s\n", cfg.Network)
	fmt.Fprintf(&b, "store = %s\n", cfg.Store)
	fmt.Fprintf(&b, "encrypt = %t\n", cfg.Encrypt)
	fmt.Fprintf(&b, "walletfile = %s\n", cfg.WalletFile)

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// WalletPath returns the full path of the configured wallet file.
func (c Config) WalletPath() string {
	return filepath.Join(c.DataDir, c.WalletFile)
}
