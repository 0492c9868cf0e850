package key

import "fmt"

// Network selects the version bytes used by every Base58Check encoding of a
// key: WIF strings and addresses.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

const (
	wifVersionMainnet = 0x80
	wifVersionTestnet = 0xef

	addressVersionMainnet = 0x00
	addressVersionTestnet = 0x6f
)

// WIFVersion returns the version byte prepended to WIF-encoded private keys.
func (n Network) WIFVersion() byte {
	if n == Testnet {
		return wifVersionTestnet
	}
	return wifVersionMainnet
}

// AddressVersion returns the version byte prepended to addresses.
func (n Network) AddressVersion() byte {
	if n == Testnet {
		return addressVersionTestnet
	}
	return addressVersionMainnet
}

// String returns "mainnet" or "testnet".
func (n Network) String() string {
	if n == Testnet {
		return "testnet"
	}
	return "mainnet"
}

// NetworkFromName maps a network name to its Network value.
func NetworkFromName(name string) (Network, error) {
	switch name {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNetwork, name)
	}
}

// MarshalText encodes the network as its name.
func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText decodes a network from its name.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := NetworkFromName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
