// Package attestor implements the trusted usage oracle of the bandwidth
// network: it reports relayed traffic and session usage to the settlement
// contract and settles sessions with signed attestations.
package attestor

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/dvpn-contract/rpc/dvpn"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/ssgreg/repeat"
	"go.uber.org/zap"
)

// ErrTransactionFault is returned when a sent transaction ends in FAULT state.
var ErrTransactionFault = errors.New("transaction failed")

// Ledger groups settlement contract methods used by the attestor.
// [dvpn.Contract] implements it.
type Ledger interface {
	Config(authority util.Uint160) (*dvpn.Config, error)
	Node(operator util.Uint160) (*dvpn.Node, error)
	Session(consumer, node util.Uint160) (*dvpn.Session, error)

	RecordUsage(operator util.Uint160, bytes *big.Int) (util.Uint256, uint32, error)
	SubmitUsage(consumer, node util.Uint160, bytes *big.Int) (util.Uint256, uint32, error)
	SettleSessionWithAttestation(consumer, node util.Uint160, totalBytes *big.Int,
		attestor util.Uint160, signature []byte) (util.Uint256, uint32, error)
}

// Invoker test-invokes contract methods. [actor.Actor] implements it.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Waiter awaits sent transactions. [actor.Actor] implements it.
type Waiter interface {
	Wait(h util.Uint256, vub uint32, err error) (*state.AppExecResult, error)
}

// TokenReader reads NEP-17 balances. The reward token binding implements it.
type TokenReader interface {
	Symbol() (string, error)
	Decimals() (int, error)
	BalanceOf(account util.Uint160) (*big.Int, error)
}

// TokenReaderFunc returns a reader of the asset contract.
type TokenReaderFunc func(asset util.Uint160) TokenReader

// RetryPolicy configures resending of transactions rejected by the node.
type RetryPolicy struct {
	MaxTries  int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// Prm groups Service parameters.
type Prm struct {
	Logger *zap.Logger

	// Settlement contract hash, methods are test-invoked on it before
	// sending.
	Contract util.Uint160

	Ledger  Ledger
	Invoker Invoker
	Waiter  Waiter
	Tokens  TokenReaderFunc

	// Attestor key, its account must be the configured attestor.
	Key *keys.PrivateKey
	// Authority of the protocol configuration served.
	Authority util.Uint160

	Retry RetryPolicy
}

// Service sends attestor transactions to the settlement contract.
type Service struct {
	log       *zap.Logger
	contract  util.Uint160
	ledger    Ledger
	invoker   Invoker
	waiter    Waiter
	tokens    TokenReaderFunc
	key       *keys.PrivateKey
	authority util.Uint160
	retry     RetryPolicy
}

// New creates Service from the given parameters.
func New(prm Prm) *Service {
	return &Service{
		log:       prm.Logger,
		contract:  prm.Contract,
		ledger:    prm.Ledger,
		invoker:   prm.Invoker,
		waiter:    prm.Waiter,
		tokens:    prm.Tokens,
		key:       prm.Key,
		authority: prm.Authority,
		retry:     prm.Retry,
	}
}

// Attestor returns the account attesting usage.
func (s *Service) Attestor() util.Uint160 {
	return s.key.GetScriptHash()
}

// RecordUsage reports traffic relayed by the node.
func (s *Service) RecordUsage(ctx context.Context, operator util.Uint160, bytes uint64) (util.Uint256, error) {
	b := new(big.Int).SetUint64(bytes)
	h, err := s.send(ctx, "recordUsage", []any{operator, b}, func() (util.Uint256, uint32, error) {
		return s.ledger.RecordUsage(operator, b)
	})
	if err == nil {
		promAttestedBytes.WithLabelValues("node").Add(float64(bytes))
	}
	return h, err
}

// SubmitUsage adds traffic to an open session.
func (s *Service) SubmitUsage(ctx context.Context, consumer, node util.Uint160, bytes uint64) (util.Uint256, error) {
	b := new(big.Int).SetUint64(bytes)
	h, err := s.send(ctx, "submitUsage", []any{consumer, node, b}, func() (util.Uint256, uint32, error) {
		return s.ledger.SubmitUsage(consumer, node, b)
	})
	if err == nil {
		promAttestedBytes.WithLabelValues("session").Add(float64(bytes))
	}
	return h, err
}

// Settle settles the session with the attested total usage.
func (s *Service) Settle(ctx context.Context, consumer, node util.Uint160, totalBytes uint64) (util.Uint256, error) {
	var (
		sig      = s.key.Sign(AttestationMessage(consumer, node, totalBytes))
		total    = new(big.Int).SetUint64(totalBytes)
		attestor = s.Attestor()
	)
	return s.send(ctx, "settleSessionWithAttestation", []any{consumer, node, total, attestor, sig},
		func() (util.Uint256, uint32, error) {
			return s.ledger.SettleSessionWithAttestation(consumer, node, total, attestor, sig)
		})
}

// Config returns the served protocol configuration.
func (s *Service) Config() (*dvpn.Config, error) {
	return s.ledger.Config(s.authority)
}

// Node returns the node record.
func (s *Service) Node(operator util.Uint160) (*dvpn.Node, error) {
	return s.ledger.Node(operator)
}

// Session returns the session record.
func (s *Service) Session(consumer, node util.Uint160) (*dvpn.Session, error) {
	return s.ledger.Session(consumer, node)
}

// Balance is a reward asset balance of an account.
type Balance struct {
	Asset    util.Uint160
	Symbol   string
	Decimals int
	Amount   *big.Int
}

// RewardBalance returns the account balance in the reward asset of the
// served protocol configuration.
func (s *Service) RewardBalance(account util.Uint160) (*Balance, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}

	tok := s.tokens(cfg.RewardAsset)
	res := &Balance{Asset: cfg.RewardAsset}

	if res.Symbol, err = tok.Symbol(); err != nil {
		return nil, fmt.Errorf("read symbol of %s: %w", cfg.RewardAsset.StringLE(), err)
	}
	if res.Decimals, err = tok.Decimals(); err != nil {
		return nil, fmt.Errorf("read decimals of %s: %w", cfg.RewardAsset.StringLE(), err)
	}
	if res.Amount, err = tok.BalanceOf(account); err != nil {
		return nil, fmt.Errorf("read balance of %s: %w", account.StringLE(), err)
	}

	return res, nil
}

// AttestationMessage is the payload signed when settling a session:
// consumer || node || total bytes (little-endian uint64).
func AttestationMessage(consumer, node util.Uint160, totalBytes uint64) []byte {
	msg := make([]byte, 0, 2*util.Uint160Size+8)
	msg = append(msg, consumer.BytesBE()...)
	msg = append(msg, node.BytesBE()...)
	return binary.LittleEndian.AppendUint64(msg, totalBytes)
}

// testInvoke runs the method without sending a transaction. A FAULT is
// returned as ErrTransactionFault, resending the same call changes nothing.
func (s *Service) testInvoke(method string, args []any) error {
	res, err := s.invoker.Call(s.contract, method, args...)
	if err != nil {
		return fmt.Errorf("test invocation: %w", err)
	}
	if res.State != vmstate.Halt.String() {
		return fmt.Errorf("%w: %s: %s", ErrTransactionFault, method, res.FaultException)
	}
	return nil
}

func (s *Service) send(ctx context.Context, method string, args []any, call func() (util.Uint256, uint32, error)) (util.Uint256, error) {
	var (
		h       util.Uint256
		vub     uint32
		fault   error
		started = time.Now()
		log     = s.log.With(zap.String("method", method))
	)

	err := repeat.Repeat(
		repeat.Fn(func() error {
			err := s.testInvoke(method, args)
			if errors.Is(err, ErrTransactionFault) {
				fault = err
				return repeat.HintStop(err)
			}
			if err == nil {
				h, vub, err = call()
			}
			if err != nil {
				return repeat.HintTemporary(err)
			}
			return nil
		}),
		repeat.StopOnSuccess(),
		// Limit counts retries after the first attempt.
		repeat.LimitMaxTries(s.retry.MaxTries-1),
		repeat.FnOnError(func(err error) error {
			log.Warn("can't send transaction", zap.Error(err))
			return err
		}),
		repeat.WithDelay(
			repeat.SetContext(ctx),
			repeat.SetContextHintStop(),
			(&repeat.FullJitterBackoffBuilder{
				BaseDelay: s.retry.BaseDelay,
				MaxDelay:  s.retry.MaxDelay,
			}).Set(),
		),
	)
	if fault != nil {
		promTransactions.WithLabelValues(method, "fault").Inc()
		return h, fault
	}
	if err != nil {
		promTransactions.WithLabelValues(method, "rejected").Inc()
		return h, fmt.Errorf("send %s transaction: %w", method, err)
	}

	log.Debug("transaction sent", zap.Stringer("hash", h), zap.Uint32("vub", vub))

	res, err := s.waiter.Wait(h, vub, nil)
	if err != nil {
		promTransactions.WithLabelValues(method, "unknown").Inc()
		return h, fmt.Errorf("await %s transaction %s: %w", method, h.StringLE(), err)
	}
	if res.VMState != vmstate.Halt {
		promTransactions.WithLabelValues(method, "fault").Inc()
		return h, fmt.Errorf("%w: %s %s: %s", ErrTransactionFault, method, h.StringLE(), res.FaultException)
	}

	promTransactions.WithLabelValues(method, "ok").Inc()
	promTransactionDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
	log.Info("transaction accepted", zap.Stringer("hash", h))

	return h, nil
}
