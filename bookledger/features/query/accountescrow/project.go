package accountescrow

import (
	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

// Project implements the query logic to determine a party's total locked escrow.
// This is a pure function with no side effects - it takes the current domain
// events and a query and returns the projected total across all cycles the
// party deposited into.
//
// Query Logic:
//
//	GIVEN: All escrow events where the party is the requester
//	WHEN: AccountEscrow query is executed
//	THEN: AccountEscrow struct is returned with the total locked value
//	INCLUDES: Deposits the party made that are still locked
//	EXCLUDES: Deposits refunded or awarded to a holder by a verified defense
func Project(history core.DomainEvents, query Query, maxSequence uint) AccountEscrow {
	// Track the locked deposit per (holder, book) cycle
	locked := make(map[string]core.AmountUint)

	for _, event := range history {
		switch e := event.(type) {
		case core.EscrowDeposited:
			if e.Requester == query.Party {
				locked[cycleKey(e.Holder, e.BookID)] += e.Amount
			}

		case core.EscrowRefunded:
			if e.Requester == query.Party {
				delete(locked, cycleKey(e.Holder, e.BookID))
			}

		case core.DefenseVerified:
			if e.Requester == query.Party {
				delete(locked, cycleKey(e.Holder, e.BookID))
			}
		}
	}

	var total core.AmountUint
	for _, amount := range locked {
		total += amount
	}

	return AccountEscrow{
		Party:          query.Party,
		TotalLocked:    total,
		SequenceNumber: maxSequence,
	}
}

func cycleKey(holder core.PartyIDString, bookID core.BookIDString) string {
	return holder + "/" + bookID
}

// BuildEventFilter creates the filter for querying all escrow events where
// the specified party is the requester.
func BuildEventFilter(party core.PartyIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.EscrowDepositedEventType,
			core.EscrowRefundedEventType,
			core.DefenseVerifiedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("Requester", party),
		).
		Finalize()
}
