// Package dvpn contains RPC wrappers for the bandwidth settlement contract.
package dvpn

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Config is a contract-specific dvpn.ProtocolConfig type used by its methods.
type Config struct {
	Authority util.Uint160
	Attestor util.Uint160
	RewardAsset util.Uint160
	RewardRateBps *big.Int
}

// Node is a contract-specific dvpn.NodeInfo type used by its methods.
type Node struct {
	Operator util.Uint160
	Protocol util.Uint160
	StakeAccount util.Uint160
	BandwidthCapacity *big.Int
	MetadataHash []byte
	StakeAmount *big.Int
	LifetimeBytesRelayed *big.Int
	UnclaimedReward *big.Int
	NetworkKey []byte
	RatingSum *big.Int
	RatingCount *big.Int
	Active bool
	RegisteredAt *big.Int
	LastSlashedAt *big.Int
}

// Session is a contract-specific dvpn.SessionInfo type used by its methods.
type Session struct {
	Consumer util.Uint160
	Node util.Uint160
	EscrowAccount util.Uint160
	DepositAmount *big.Int
	BytesUsed *big.Int
	OpenedAt *big.Int
	Closed bool
}

// ConfigInitializedEvent represents "ConfigInitialized" event emitted by the contract.
type ConfigInitializedEvent struct {
	Authority util.Uint160
	RewardAsset util.Uint160
	RewardRateBps *big.Int
}

// AttestorChangedEvent represents "AttestorChanged" event emitted by the contract.
type AttestorChangedEvent struct {
	Authority util.Uint160
	Attestor util.Uint160
}

// RewardAssetChangedEvent represents "RewardAssetChanged" event emitted by the contract.
type RewardAssetChangedEvent struct {
	Authority util.Uint160
	Asset util.Uint160
}

// NodeRegisteredEvent represents "NodeRegistered" event emitted by the contract.
type NodeRegisteredEvent struct {
	Operator util.Uint160
	Stake *big.Int
	BandwidthCapacity *big.Int
}

// UsageRecordedEvent represents "UsageRecorded" event emitted by the contract.
type UsageRecordedEvent struct {
	Operator util.Uint160
	Bytes *big.Int
	Reward *big.Int
}

// RewardsClaimedEvent represents "RewardsClaimed" event emitted by the contract.
type RewardsClaimedEvent struct {
	Operator util.Uint160
	Amount *big.Int
}

// EscrowFundedEvent represents "EscrowFunded" event emitted by the contract.
type EscrowFundedEvent struct {
	Consumer util.Uint160
	Node util.Uint160
	Amount *big.Int
}

// SessionOpenedEvent represents "SessionOpened" event emitted by the contract.
type SessionOpenedEvent struct {
	Consumer util.Uint160
	Node util.Uint160
	Deposit *big.Int
}

// UsageSubmittedEvent represents "UsageSubmitted" event emitted by the contract.
type UsageSubmittedEvent struct {
	Consumer util.Uint160
	Node util.Uint160
	BytesUsed *big.Int
}

// SessionSettledEvent represents "SessionSettled" event emitted by the contract.
type SessionSettledEvent struct {
	Consumer util.Uint160
	Node util.Uint160
	Payout *big.Int
	Fee *big.Int
	BytesUsed *big.Int
}

// SessionRatedEvent represents "SessionRated" event emitted by the contract.
type SessionRatedEvent struct {
	Consumer util.Uint160
	Node util.Uint160
	Rating *big.Int
}

// NodeSlashedEvent represents "NodeSlashed" event emitted by the contract.
type NodeSlashedEvent struct {
	Operator util.Uint160
	Amount *big.Int
	Reason string
}

// EscrowWithdrawnEvent represents "EscrowWithdrawn" event emitted by the contract.
type EscrowWithdrawnEvent struct {
	Consumer util.Uint160
	Node util.Uint160
	Amount *big.Int
}

// FeesWithdrawnEvent represents "FeesWithdrawn" event emitted by the contract.
type FeesWithdrawnEvent struct {
	Authority util.Uint160
	Asset util.Uint160
	To util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Config invokes `config` method of contract.
func (c *ContractReader) Config(authority util.Uint160) (*Config, error) {
	return itemToConfig(unwrap.Item(c.invoker.Call(c.hash, "config", authority)))
}

// Node invokes `node` method of contract.
func (c *ContractReader) Node(operator util.Uint160) (*Node, error) {
	return itemToNode(unwrap.Item(c.invoker.Call(c.hash, "node", operator)))
}

// ListNodes invokes `listNodes` method of contract.
func (c *ContractReader) ListNodes() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "listNodes"))
}

// ListNodesExpanded is similar to ListNodes (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) ListNodesExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "listNodes", _numOfIteratorItems))
}

// Session invokes `session` method of contract.
func (c *ContractReader) Session(consumer util.Uint160, node util.Uint160) (*Session, error) {
	return itemToSession(unwrap.Item(c.invoker.Call(c.hash, "session", consumer, node)))
}

// EscrowAccount invokes `escrowAccount` method of contract.
func (c *ContractReader) EscrowAccount(consumer util.Uint160, node util.Uint160) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "escrowAccount", consumer, node))
}

// EscrowBalance invokes `escrowBalance` method of contract.
func (c *ContractReader) EscrowBalance(consumer util.Uint160, node util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "escrowBalance", consumer, node))
}

// FeeBalance invokes `feeBalance` method of contract.
func (c *ContractReader) FeeBalance(authority util.Uint160, asset util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "feeBalance", authority, asset))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// ClaimRewards creates a transaction invoking `claimRewards` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClaimRewards(operator util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claimRewards", operator)
}

// ClaimRewardsTransaction creates a transaction invoking `claimRewards` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimRewardsTransaction(operator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claimRewards", operator)
}

// ClaimRewardsUnsigned creates a transaction invoking `claimRewards` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimRewardsUnsigned(operator util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claimRewards", nil, operator)
}

// InitializeConfig creates a transaction invoking `initializeConfig` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) InitializeConfig(authority util.Uint160, rewardRateBps *big.Int, rewardAsset util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initializeConfig", authority, rewardRateBps, rewardAsset)
}

// InitializeConfigTransaction creates a transaction invoking `initializeConfig` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeConfigTransaction(authority util.Uint160, rewardRateBps *big.Int, rewardAsset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initializeConfig", authority, rewardRateBps, rewardAsset)
}

// InitializeConfigUnsigned creates a transaction invoking `initializeConfig` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeConfigUnsigned(authority util.Uint160, rewardRateBps *big.Int, rewardAsset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initializeConfig", nil, authority, rewardRateBps, rewardAsset)
}

// RateSession creates a transaction invoking `rateSession` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RateSession(consumer util.Uint160, node util.Uint160, rating *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "rateSession", consumer, node, rating)
}

// RateSessionTransaction creates a transaction invoking `rateSession` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RateSessionTransaction(consumer util.Uint160, node util.Uint160, rating *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "rateSession", consumer, node, rating)
}

// RateSessionUnsigned creates a transaction invoking `rateSession` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RateSessionUnsigned(consumer util.Uint160, node util.Uint160, rating *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "rateSession", nil, consumer, node, rating)
}

// RecordUsage creates a transaction invoking `recordUsage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RecordUsage(operator util.Uint160, bytes *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "recordUsage", operator, bytes)
}

// RecordUsageTransaction creates a transaction invoking `recordUsage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RecordUsageTransaction(operator util.Uint160, bytes *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "recordUsage", operator, bytes)
}

// RecordUsageUnsigned creates a transaction invoking `recordUsage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RecordUsageUnsigned(operator util.Uint160, bytes *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "recordUsage", nil, operator, bytes)
}

// RegisterNode creates a transaction invoking `registerNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterNode(operator util.Uint160, protocol util.Uint160, stake *big.Int, bandwidthCapacity *big.Int, metadataHash []byte, networkKey []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerNode", operator, protocol, stake, bandwidthCapacity, metadataHash, networkKey)
}

// RegisterNodeTransaction creates a transaction invoking `registerNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterNodeTransaction(operator util.Uint160, protocol util.Uint160, stake *big.Int, bandwidthCapacity *big.Int, metadataHash []byte, networkKey []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerNode", operator, protocol, stake, bandwidthCapacity, metadataHash, networkKey)
}

// RegisterNodeUnsigned creates a transaction invoking `registerNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterNodeUnsigned(operator util.Uint160, protocol util.Uint160, stake *big.Int, bandwidthCapacity *big.Int, metadataHash []byte, networkKey []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerNode", nil, operator, protocol, stake, bandwidthCapacity, metadataHash, networkKey)
}

// SetAsset creates a transaction invoking `setAsset` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAsset(authority util.Uint160, asset util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAsset", authority, asset)
}

// SetAssetTransaction creates a transaction invoking `setAsset` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAssetTransaction(authority util.Uint160, asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAsset", authority, asset)
}

// SetAssetUnsigned creates a transaction invoking `setAsset` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAssetUnsigned(authority util.Uint160, asset util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAsset", nil, authority, asset)
}

// SetAttestor creates a transaction invoking `setAttestor` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAttestor(authority util.Uint160, attestor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAttestor", authority, attestor)
}

// SetAttestorTransaction creates a transaction invoking `setAttestor` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAttestorTransaction(authority util.Uint160, attestor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAttestor", authority, attestor)
}

// SetAttestorUnsigned creates a transaction invoking `setAttestor` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAttestorUnsigned(authority util.Uint160, attestor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAttestor", nil, authority, attestor)
}

// SettleSession creates a transaction invoking `settleSession` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SettleSession(consumer util.Uint160, node util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "settleSession", consumer, node)
}

// SettleSessionTransaction creates a transaction invoking `settleSession` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SettleSessionTransaction(consumer util.Uint160, node util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "settleSession", consumer, node)
}

// SettleSessionUnsigned creates a transaction invoking `settleSession` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SettleSessionUnsigned(consumer util.Uint160, node util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "settleSession", nil, consumer, node)
}

// SettleSessionWithAttestation creates a transaction invoking `settleSessionWithAttestation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SettleSessionWithAttestation(consumer util.Uint160, node util.Uint160, totalBytes *big.Int, attestor util.Uint160, signature []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "settleSessionWithAttestation", consumer, node, totalBytes, attestor, signature)
}

// SettleSessionWithAttestationTransaction creates a transaction invoking `settleSessionWithAttestation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SettleSessionWithAttestationTransaction(consumer util.Uint160, node util.Uint160, totalBytes *big.Int, attestor util.Uint160, signature []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "settleSessionWithAttestation", consumer, node, totalBytes, attestor, signature)
}

// SettleSessionWithAttestationUnsigned creates a transaction invoking `settleSessionWithAttestation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SettleSessionWithAttestationUnsigned(consumer util.Uint160, node util.Uint160, totalBytes *big.Int, attestor util.Uint160, signature []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "settleSessionWithAttestation", nil, consumer, node, totalBytes, attestor, signature)
}

// SlashNode creates a transaction invoking `slashNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SlashNode(operator util.Uint160, amount *big.Int, reason string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "slashNode", operator, amount, reason)
}

// SlashNodeTransaction creates a transaction invoking `slashNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SlashNodeTransaction(operator util.Uint160, amount *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "slashNode", operator, amount, reason)
}

// SlashNodeUnsigned creates a transaction invoking `slashNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SlashNodeUnsigned(operator util.Uint160, amount *big.Int, reason string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "slashNode", nil, operator, amount, reason)
}

// StartSession creates a transaction invoking `startSession` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) StartSession(consumer util.Uint160, node util.Uint160, deposit *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "startSession", consumer, node, deposit)
}

// StartSessionTransaction creates a transaction invoking `startSession` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) StartSessionTransaction(consumer util.Uint160, node util.Uint160, deposit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "startSession", consumer, node, deposit)
}

// StartSessionUnsigned creates a transaction invoking `startSession` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) StartSessionUnsigned(consumer util.Uint160, node util.Uint160, deposit *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "startSession", nil, consumer, node, deposit)
}

// SubmitUsage creates a transaction invoking `submitUsage` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitUsage(consumer util.Uint160, node util.Uint160, bytes *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitUsage", consumer, node, bytes)
}

// SubmitUsageTransaction creates a transaction invoking `submitUsage` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitUsageTransaction(consumer util.Uint160, node util.Uint160, bytes *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitUsage", consumer, node, bytes)
}

// SubmitUsageUnsigned creates a transaction invoking `submitUsage` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitUsageUnsigned(consumer util.Uint160, node util.Uint160, bytes *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitUsage", nil, consumer, node, bytes)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// WithdrawEscrow creates a transaction invoking `withdrawEscrow` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawEscrow(consumer util.Uint160, node util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawEscrow", consumer, node)
}

// WithdrawEscrowTransaction creates a transaction invoking `withdrawEscrow` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawEscrowTransaction(consumer util.Uint160, node util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawEscrow", consumer, node)
}

// WithdrawEscrowUnsigned creates a transaction invoking `withdrawEscrow` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawEscrowUnsigned(consumer util.Uint160, node util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawEscrow", nil, consumer, node)
}

// WithdrawFees creates a transaction invoking `withdrawFees` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) WithdrawFees(authority util.Uint160, asset util.Uint160, to util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdrawFees", authority, asset, to)
}

// WithdrawFeesTransaction creates a transaction invoking `withdrawFees` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) WithdrawFeesTransaction(authority util.Uint160, asset util.Uint160, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "withdrawFees", authority, asset, to)
}

// WithdrawFeesUnsigned creates a transaction invoking `withdrawFees` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) WithdrawFeesUnsigned(authority util.Uint160, asset util.Uint160, to util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "withdrawFees", nil, authority, asset, to)
}

// itemToConfig converts stack item into *Config.
func itemToConfig(item stackitem.Item, err error) (*Config, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Config)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Config from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Config) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	res.Attestor, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Attestor: %w", err)
	}

	index++
	res.RewardAsset, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field RewardAsset: %w", err)
	}

	index++
	res.RewardRateBps, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardRateBps: %w", err)
	}

	return nil
}

// itemToNode converts stack item into *Node.
func itemToNode(item stackitem.Item, err error) (*Node, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Node)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Node from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Node) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 14 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Operator, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	res.Protocol, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Protocol: %w", err)
	}

	index++
	res.StakeAccount, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field StakeAccount: %w", err)
	}

	index++
	res.BandwidthCapacity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BandwidthCapacity: %w", err)
	}

	index++
	res.MetadataHash, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field MetadataHash: %w", err)
	}

	index++
	res.StakeAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field StakeAmount: %w", err)
	}

	index++
	res.LifetimeBytesRelayed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LifetimeBytesRelayed: %w", err)
	}

	index++
	res.UnclaimedReward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UnclaimedReward: %w", err)
	}

	index++
	res.NetworkKey, err = itemToNullableBytes(arr[index])
	if err != nil {
		return fmt.Errorf("field NetworkKey: %w", err)
	}

	index++
	res.RatingSum, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RatingSum: %w", err)
	}

	index++
	res.RatingCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RatingCount: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.RegisteredAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RegisteredAt: %w", err)
	}

	index++
	res.LastSlashedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field LastSlashedAt: %w", err)
	}

	return nil
}

// itemToSession converts stack item into *Session.
func itemToSession(item stackitem.Item, err error) (*Session, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Session)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Session from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Session) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 7 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Consumer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Consumer: %w", err)
	}

	index++
	res.Node, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	res.EscrowAccount, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field EscrowAccount: %w", err)
	}

	index++
	res.DepositAmount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field DepositAmount: %w", err)
	}

	index++
	res.BytesUsed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BytesUsed: %w", err)
	}

	index++
	res.OpenedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field OpenedAt: %w", err)
	}

	index++
	res.Closed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Closed: %w", err)
	}

	return nil
}

// ConfigInitializedEventsFromApplicationLog retrieves a set of all emitted events
// with "ConfigInitialized" name from the provided [result.ApplicationLog].
func ConfigInitializedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ConfigInitializedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ConfigInitializedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ConfigInitialized" {
				continue
			}
			event := new(ConfigInitializedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ConfigInitializedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ConfigInitializedEvent or
// returns an error if it's not possible to do to so.
func (e *ConfigInitializedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	e.RewardAsset, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field RewardAsset: %w", err)
	}

	index++
	e.RewardRateBps, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RewardRateBps: %w", err)
	}

	return nil
}

// AttestorChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "AttestorChanged" name from the provided [result.ApplicationLog].
func AttestorChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AttestorChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AttestorChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AttestorChanged" {
				continue
			}
			event := new(AttestorChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AttestorChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AttestorChangedEvent or
// returns an error if it's not possible to do to so.
func (e *AttestorChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	e.Attestor, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Attestor: %w", err)
	}

	return nil
}

// RewardAssetChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardAssetChanged" name from the provided [result.ApplicationLog].
func RewardAssetChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardAssetChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardAssetChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardAssetChanged" {
				continue
			}
			event := new(RewardAssetChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardAssetChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardAssetChangedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardAssetChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	e.Asset, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	return nil
}

// NodeRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeRegistered" name from the provided [result.ApplicationLog].
func NodeRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeRegistered" {
				continue
			}
			event := new(NodeRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *NodeRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Operator, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Stake, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Stake: %w", err)
	}

	index++
	e.BandwidthCapacity, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BandwidthCapacity: %w", err)
	}

	return nil
}

// UsageRecordedEventsFromApplicationLog retrieves a set of all emitted events
// with "UsageRecorded" name from the provided [result.ApplicationLog].
func UsageRecordedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UsageRecordedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UsageRecordedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "UsageRecorded" {
				continue
			}
			event := new(UsageRecordedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UsageRecordedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UsageRecordedEvent or
// returns an error if it's not possible to do to so.
func (e *UsageRecordedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Operator, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Bytes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bytes: %w", err)
	}

	index++
	e.Reward, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Reward: %w", err)
	}

	return nil
}

// RewardsClaimedEventsFromApplicationLog retrieves a set of all emitted events
// with "RewardsClaimed" name from the provided [result.ApplicationLog].
func RewardsClaimedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RewardsClaimedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RewardsClaimedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RewardsClaimed" {
				continue
			}
			event := new(RewardsClaimedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RewardsClaimedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RewardsClaimedEvent or
// returns an error if it's not possible to do to so.
func (e *RewardsClaimedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Operator, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// EscrowFundedEventsFromApplicationLog retrieves a set of all emitted events
// with "EscrowFunded" name from the provided [result.ApplicationLog].
func EscrowFundedEventsFromApplicationLog(log *result.ApplicationLog) ([]*EscrowFundedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EscrowFundedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "EscrowFunded" {
				continue
			}
			event := new(EscrowFundedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EscrowFundedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EscrowFundedEvent or
// returns an error if it's not possible to do to so.
func (e *EscrowFundedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Consumer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Consumer: %w", err)
	}

	index++
	e.Node, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// SessionOpenedEventsFromApplicationLog retrieves a set of all emitted events
// with "SessionOpened" name from the provided [result.ApplicationLog].
func SessionOpenedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SessionOpenedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SessionOpenedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SessionOpened" {
				continue
			}
			event := new(SessionOpenedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SessionOpenedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SessionOpenedEvent or
// returns an error if it's not possible to do to so.
func (e *SessionOpenedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Consumer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Consumer: %w", err)
	}

	index++
	e.Node, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	e.Deposit, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Deposit: %w", err)
	}

	return nil
}

// UsageSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "UsageSubmitted" name from the provided [result.ApplicationLog].
func UsageSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*UsageSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UsageSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "UsageSubmitted" {
				continue
			}
			event := new(UsageSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UsageSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UsageSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *UsageSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Consumer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Consumer: %w", err)
	}

	index++
	e.Node, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	e.BytesUsed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BytesUsed: %w", err)
	}

	return nil
}

// SessionSettledEventsFromApplicationLog retrieves a set of all emitted events
// with "SessionSettled" name from the provided [result.ApplicationLog].
func SessionSettledEventsFromApplicationLog(log *result.ApplicationLog) ([]*SessionSettledEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SessionSettledEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SessionSettled" {
				continue
			}
			event := new(SessionSettledEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SessionSettledEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SessionSettledEvent or
// returns an error if it's not possible to do to so.
func (e *SessionSettledEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Consumer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Consumer: %w", err)
	}

	index++
	e.Node, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	e.Payout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Payout: %w", err)
	}

	index++
	e.Fee, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Fee: %w", err)
	}

	index++
	e.BytesUsed, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field BytesUsed: %w", err)
	}

	return nil
}

// SessionRatedEventsFromApplicationLog retrieves a set of all emitted events
// with "SessionRated" name from the provided [result.ApplicationLog].
func SessionRatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*SessionRatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*SessionRatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "SessionRated" {
				continue
			}
			event := new(SessionRatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize SessionRatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to SessionRatedEvent or
// returns an error if it's not possible to do to so.
func (e *SessionRatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Consumer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Consumer: %w", err)
	}

	index++
	e.Node, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	e.Rating, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Rating: %w", err)
	}

	return nil
}

// NodeSlashedEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeSlashed" name from the provided [result.ApplicationLog].
func NodeSlashedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeSlashedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeSlashedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeSlashed" {
				continue
			}
			event := new(NodeSlashedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeSlashedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeSlashedEvent or
// returns an error if it's not possible to do to so.
func (e *NodeSlashedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Operator, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Operator: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Reason, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Reason: %w", err)
	}

	return nil
}

// EscrowWithdrawnEventsFromApplicationLog retrieves a set of all emitted events
// with "EscrowWithdrawn" name from the provided [result.ApplicationLog].
func EscrowWithdrawnEventsFromApplicationLog(log *result.ApplicationLog) ([]*EscrowWithdrawnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EscrowWithdrawnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "EscrowWithdrawn" {
				continue
			}
			event := new(EscrowWithdrawnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EscrowWithdrawnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EscrowWithdrawnEvent or
// returns an error if it's not possible to do to so.
func (e *EscrowWithdrawnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Consumer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Consumer: %w", err)
	}

	index++
	e.Node, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// FeesWithdrawnEventsFromApplicationLog retrieves a set of all emitted events
// with "FeesWithdrawn" name from the provided [result.ApplicationLog].
func FeesWithdrawnEventsFromApplicationLog(log *result.ApplicationLog) ([]*FeesWithdrawnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*FeesWithdrawnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "FeesWithdrawn" {
				continue
			}
			event := new(FeesWithdrawnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize FeesWithdrawnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to FeesWithdrawnEvent or
// returns an error if it's not possible to do to so.
func (e *FeesWithdrawnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Authority, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	index++
	e.Asset, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Asset: %w", err)
	}

	index++
	e.To, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	return util.Uint160DecodeBytesBE(b)
}

func itemToNullableBytes(item stackitem.Item) ([]byte, error) {
	if _, ok := item.(stackitem.Null); ok {
		return nil, nil
	}
	return item.TryBytes()
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}
