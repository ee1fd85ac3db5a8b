/*
Package rewardtoken implements the NEP-17 reward asset of the bandwidth
network.

Tokens are issued only by the configured minter, which is the settlement
contract paying out claimed node rewards. The owner passed as deploy data
chooses the minter and can update the contract.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification, from is null
on mint.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package rewardtoken
