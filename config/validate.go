package config

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.Network != "mainnet" && cfg.Network != "testnet" {
		return ErrInvalidNetwork
	}

	if cfg.Store != "file" && cfg.Store != "bolt" {
		return ErrInvalidStore
	}

	if cfg.WalletFile == "" {
		return ErrEmptyWalletFile
	}

	return nil
}
