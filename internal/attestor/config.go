package attestor

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "DVPN_ATTESTOR"

// Config is the attestor daemon configuration.
type Config struct {
	ListenAddress string `envconfig:"LISTEN_ADDRESS" default:":8787"`

	RPCEndpoint string        `envconfig:"RPC_ENDPOINT" required:"true"`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`

	// Settlement contract and the protocol authority served by this attestor.
	Contract  string `envconfig:"CONTRACT" required:"true"`
	Authority string `envconfig:"AUTHORITY" required:"true"`

	WalletPath     string `envconfig:"WALLET" required:"true"`
	WalletAddress  string `envconfig:"WALLET_ADDRESS"`
	WalletPassword string `envconfig:"WALLET_PASSWORD"`

	SendTries      int           `envconfig:"SEND_TRIES" default:"5"`
	RetryBaseDelay time.Duration `envconfig:"RETRY_BASE_DELAY" default:"1s"`
	RetryMaxDelay  time.Duration `envconfig:"RETRY_MAX_DELAY" default:"10s"`
}

// LoadConfig reads the configuration from the environment. Variables from
// envFile, if set, are loaded first without overriding the ones already
// present.
func LoadConfig(envFile string) (Config, error) {
	var cfg Config

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("load env file %q: %w", envFile, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}
	if cfg.SendTries <= 0 {
		return cfg, fmt.Errorf("invalid send tries %d", cfg.SendTries)
	}

	return cfg, nil
}

// ContractHash returns the parsed settlement contract hash.
func (c Config) ContractHash() (util.Uint160, error) {
	return ParseHash(c.Contract)
}

// AuthorityHash returns the parsed protocol authority.
func (c Config) AuthorityHash() (util.Uint160, error) {
	return ParseHash(c.Authority)
}

// Retry returns the transaction retry policy.
func (c Config) Retry() RetryPolicy {
	return RetryPolicy{
		MaxTries:  c.SendTries,
		BaseDelay: c.RetryBaseDelay,
		MaxDelay:  c.RetryMaxDelay,
	}
}

// ParseHash accepts either a Neo address or a little-endian hex script hash.
func ParseHash(s string) (util.Uint160, error) {
	if h, err := address.StringToUint160(s); err == nil {
		return h, nil
	}
	h, err := util.Uint160DecodeStringLE(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid address or script hash %q", s)
	}
	return h, nil
}
