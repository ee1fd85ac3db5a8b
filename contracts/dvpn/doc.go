/*
Package dvpn implements the settlement contract of a decentralized bandwidth
network.

Independent node operators register under a protocol configuration by
staking GAS. A trusted attestor of that configuration reports relayed traffic
which accrues rewards claimable in the configured reward asset. Consumers open
metered sessions with a node, prepay into an escrow sub-account, and every
session is settled exactly once: the payout goes to the node operator minus a
1% protocol fee kept by the contract.

Any failed check panics, so the whole invocation including nested asset
transfers and mints is reverted.

# Storage model

	c || authority           ProtocolConfig
	n || operator            NodeInfo
	s || consumer || node    SessionInfo
	r || consumer || node    rating given to a settled session
	e || escrow account      Escrow
	f || fee account || asset  accumulated protocol fee
	p || operator            stake expected during registration

Escrow, stake and fee accounts are derived as RIPEMD160(SHA256(seed || hashes))
with "escrow", "stake" and "fees" seeds. They never sign anything, only the
contract moves assets held for them.

Stake GAS is held on the contract's own balance, the stake account only
labels it. StakeAmount is the unslashed part of the registration stake.
Slashing lowers StakeAmount without moving GAS, so the slashed part stays on
the contract balance unassigned to any node.

# Contract notifications

ConfigInitialized notification. Produced by a new protocol configuration.

	ConfigInitialized:
	  - name: authority
	    type: Hash160
	  - name: rewardAsset
	    type: Hash160
	  - name: rewardRateBps
	    type: Integer

AttestorChanged and RewardAssetChanged notifications follow configuration
updates.

	AttestorChanged:
	  - name: authority
	    type: Hash160
	  - name: attestor
	    type: Hash160
	RewardAssetChanged:
	  - name: authority
	    type: Hash160
	  - name: asset
	    type: Hash160

NodeRegistered notification. Produced when a node record is created.

	NodeRegistered:
	  - name: operator
	    type: Hash160
	  - name: stake
	    type: Integer
	  - name: bandwidthCapacity
	    type: Integer

UsageRecorded and RewardsClaimed notifications track reward accrual.

	UsageRecorded:
	  - name: operator
	    type: Hash160
	  - name: bytes
	    type: Integer
	  - name: reward
	    type: Integer
	RewardsClaimed:
	  - name: operator
	    type: Hash160
	  - name: amount
	    type: Integer

Session lifecycle notifications.

	EscrowFunded:
	  - name: consumer
	    type: Hash160
	  - name: node
	    type: Hash160
	  - name: amount
	    type: Integer
	SessionOpened:
	  - name: consumer
	    type: Hash160
	  - name: node
	    type: Hash160
	  - name: deposit
	    type: Integer
	UsageSubmitted:
	  - name: consumer
	    type: Hash160
	  - name: node
	    type: Hash160
	  - name: bytesUsed
	    type: Integer
	SessionSettled:
	  - name: consumer
	    type: Hash160
	  - name: node
	    type: Hash160
	  - name: payout
	    type: Integer
	  - name: fee
	    type: Integer
	  - name: bytesUsed
	    type: Integer
	SessionRated:
	  - name: consumer
	    type: Hash160
	  - name: node
	    type: Hash160
	  - name: rating
	    type: Integer
	EscrowWithdrawn:
	  - name: consumer
	    type: Hash160
	  - name: node
	    type: Hash160
	  - name: amount
	    type: Integer

NodeSlashed notification. Slashing is bookkeeping only.

	NodeSlashed:
	  - name: operator
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: reason
	    type: String

FeesWithdrawn notification.

	FeesWithdrawn:
	  - name: authority
	    type: Hash160
	  - name: asset
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package dvpn
