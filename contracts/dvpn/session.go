package dvpn

import (
	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// StartSession opens a metered session between the consumer and the node.
// It must be witnessed by the consumer, the node must be active and there
// must be no session for this pair, settled or not. Deposit is not moved
// here: the escrow is funded by a reward asset transfer to the contract.
//
// It produces SessionOpened notification.
func StartSession(consumer, node interop.Hash160, deposit int) {
	checkHash(consumer)
	common.CheckWitness(consumer)
	checkAmount(deposit)

	ctx := storage.GetContext()
	n := getNode(ctx, node)
	if !n.Active {
		panic(dvpnconst.ErrNodeInactive)
	}

	key := sessionKey(consumer, node)
	if storage.Get(ctx, key) != nil {
		panic(dvpnconst.ErrSessionExists)
	}

	s := SessionInfo{
		Consumer:      consumer,
		Node:          node,
		EscrowAccount: escrowAccountOf(consumer, node),
		DepositAmount: deposit,
		OpenedAt:      runtime.GetTime(),
	}
	common.SetSerialized(ctx, key, s)

	runtime.Notify("SessionOpened", consumer, node, deposit)
}

// SubmitUsage adds bytes to the cumulative usage of an open session. It can
// be invoked only by the attestor of the node's protocol.
//
// It produces UsageSubmitted notification.
func SubmitUsage(consumer, node interop.Hash160, bytes int) {
	ctx := storage.GetContext()
	s := getSession(ctx, consumer, node)
	n := getNode(ctx, node)
	cfg := getConfig(ctx, n.Protocol)
	common.CheckWitness(cfg.Attestor)

	if s.Closed {
		panic(dvpnconst.ErrSessionClosed)
	}
	if bytes < 0 {
		panic(dvpnconst.ErrInvalidAmount)
	}

	s.BytesUsed = checkedAdd(s.BytesUsed, bytes)
	putSession(ctx, s)

	runtime.Notify("UsageSubmitted", consumer, node, s.BytesUsed)
}

// SettleSession closes the session and pays for the recorded usage from its
// escrow. Payout is bytes * capacity / 1 MiB capped by the deposit, 1% of it
// is kept as protocol fee and the rest goes to the node operator. It must be
// witnessed by the consumer, the node operator or the attestor.
//
// It produces SessionSettled notification.
func SettleSession(consumer, node interop.Hash160) {
	ctx := storage.GetContext()
	s := getSession(ctx, consumer, node)
	n := getNode(ctx, node)
	cfg := getConfig(ctx, n.Protocol)
	common.CheckEitherWitness([]interop.Hash160{s.Consumer, n.Operator, cfg.Attestor})

	settle(ctx, s, n)
}

// SettleSessionWithAttestation replaces the session usage with the attested
// total and settles it in the same invocation. The attestor must be the one
// configured for the node's protocol and must witness the invocation.
//
// Signature is accepted as is, it is not verified on chain.
//
// It produces SessionSettled notification.
func SettleSessionWithAttestation(consumer, node interop.Hash160, totalBytes int,
	attestor interop.Hash160, signature []byte) {
	ctx := storage.GetContext()
	s := getSession(ctx, consumer, node)
	n := getNode(ctx, node)
	cfg := getConfig(ctx, n.Protocol)
	if !attestor.Equals(cfg.Attestor) {
		panic(dvpnconst.ErrUnauthorized)
	}
	common.CheckWitness(attestor)

	if s.Closed {
		panic(dvpnconst.ErrSessionClosed)
	}
	checkAmount(totalBytes)

	s.BytesUsed = totalBytes
	settle(ctx, s, n)
}

// RateSession adds the consumer's rating of a settled session to the node
// record. Every session can be rated once, by its consumer.
//
// It produces SessionRated notification.
func RateSession(consumer, node interop.Hash160, rating int) {
	common.CheckWitness(consumer)

	ctx := storage.GetContext()
	s := getSession(ctx, consumer, node)
	if !s.Closed {
		panic(dvpnconst.ErrSessionOpen)
	}
	if rating < dvpnconst.MinRating || rating > dvpnconst.MaxRating {
		panic(dvpnconst.ErrInvalidRating)
	}

	mark := append(append([]byte{ratingPrefix}, consumer...), node...)
	if storage.Get(ctx, mark) != nil {
		panic(dvpnconst.ErrSessionRated)
	}
	storage.Put(ctx, mark, rating)

	n := getNode(ctx, node)
	n.RatingSum = checkedAdd(n.RatingSum, rating)
	n.RatingCount = checkedAdd(n.RatingCount, 1)
	putNode(ctx, n)

	runtime.Notify("SessionRated", consumer, node, rating)
}

// Session returns the session record of the consumer and the node.
func Session(consumer, node interop.Hash160) SessionInfo {
	return getSession(storage.GetReadOnlyContext(), consumer, node)
}

func settle(ctx storage.Context, s SessionInfo, n NodeInfo) {
	if s.Closed {
		panic(dvpnconst.ErrSessionClosed)
	}

	payout := s.BytesUsed * n.BandwidthCapacity / dvpnconst.BytesPerPriceUnit
	if payout > s.DepositAmount {
		payout = s.DepositAmount
	}
	fee := payout / dvpnconst.FeeDivisor
	nodeAmount := payout - fee
	if nodeAmount < 0 {
		nodeAmount = 0
	}

	// The record is closed before any asset leaves the escrow.
	s.Closed = true
	putSession(ctx, s)

	if payout > 0 {
		asset := authorizeEscrow(s.Consumer, s.Node).release(ctx, payout)
		creditFee(ctx, n.Protocol, asset, fee)
		if nodeAmount > 0 {
			common.TransferFromSelf(asset, n.Operator, nodeAmount)
		}
	}

	runtime.Log("session settled")
	runtime.Notify("SessionSettled", s.Consumer, s.Node, nodeAmount, fee, s.BytesUsed)
}

func sessionKey(consumer, node interop.Hash160) []byte {
	return append(append([]byte{sessionPrefix}, consumer...), node...)
}

func getSession(ctx storage.Context, consumer, node interop.Hash160) SessionInfo {
	data := storage.Get(ctx, sessionKey(consumer, node))
	if data == nil {
		panic(dvpnconst.ErrSessionNotFound)
	}
	return std.Deserialize(data.([]byte)).(SessionInfo)
}

func putSession(ctx storage.Context, s SessionInfo) {
	common.SetSerialized(ctx, sessionKey(s.Consumer, s.Node), s)
}
