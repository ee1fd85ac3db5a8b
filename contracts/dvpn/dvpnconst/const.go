// Package dvpnconst holds the settlement contract constants shared with
// off-chain code: failure messages and the arithmetic parameters of reward
// accrual and session pricing.
package dvpnconst

const (
	// ErrUnauthorized is thrown when the invocation lacks the witness of the
	// account the method is restricted to.
	ErrUnauthorized = "unauthorized"
	// ErrNothingToClaim is thrown by claimRewards on a zero unclaimed reward.
	ErrNothingToClaim = "nothing to claim"
	// ErrMathOverflow is thrown when a counter would leave the unsigned 64-bit range.
	ErrMathOverflow = "math overflow"
	// ErrSessionClosed is thrown on any mutation of a settled session.
	ErrSessionClosed = "session already closed"

	ErrConfigExists         = "config already exists"
	ErrConfigNotFound       = "config not found"
	ErrNodeExists           = "node already registered"
	ErrNodeNotFound         = "node not found"
	ErrNodeInactive         = "node is not active"
	ErrSessionExists        = "session already exists"
	ErrSessionNotFound      = "session not found"
	ErrSessionOpen          = "session is not closed"
	ErrSessionRated         = "session already rated"
	ErrInvalidAmount        = "invalid amount"
	ErrInvalidRewardRate    = "invalid reward rate"
	ErrInvalidCapacity      = "invalid bandwidth capacity"
	ErrInvalidMetadataHash  = "invalid metadata hash"
	ErrInvalidNetworkKey    = "invalid network key"
	ErrInvalidHash          = "invalid script hash"
	ErrInvalidRating        = "invalid rating"
	ErrInsufficientEscrow   = "insufficient escrow balance"
	ErrUnexpectedPayment    = "unexpected payment"
	ErrAssetMismatch        = "asset mismatch"
	ErrNothingToWithdraw    = "nothing to withdraw"
	ErrInvalidAttestor      = "invalid attestor"
	ErrStakeTransferRefused = "stake transfer refused"
)

const (
	// MaxCounter is the upper bound of every amount and counter kept by the
	// contract (2^64-1). MaxCounterDec is the same value for std.Atoi.
	MaxCounter    = 18446744073709551615
	MaxCounterDec = "18446744073709551615"

	// MaxRewardRate bounds reward rate in basis points (u16).
	MaxRewardRate = 65535
	// MaxCapacity bounds advertised bandwidth capacity (u32).
	MaxCapacity = 4294967295

	// BasisPoints is the reward rate denominator.
	BasisPoints = 10_000
	// BytesPerPriceUnit is the session price denominator: capacity is the
	// price per MiB of relayed traffic.
	BytesPerPriceUnit = 1 << 20
	// FeeDivisor sets the protocol fee to 1% of the payout.
	FeeDivisor = 100

	MetadataHashLen = 32
	NetworkKeyLen   = 32

	MinRating = 1
	MaxRating = 5
)

// Seeds of derived sub-accounts.
const (
	StakeSeed  = "stake"
	EscrowSeed = "escrow"
	FeeSeed    = "fees"
)
