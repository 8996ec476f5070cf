package commitescrow

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonNotCommitted  = "holder has not committed an escrow amount"
	failureReasonAlreadyFunded = "escrow is already funded for this cycle"
	failureReasonWrongAmount   = "deposit does not match the committed amount"
)

// Decide implements the business logic to determine whether an escrow deposit should be accepted.
// This is a pure function with no side effects.
//
// Business Rules:
//
//	GIVEN: A custody cycle in the committed state
//	WHEN: CommitEscrow command is received with the exact committed amount
//	THEN: EscrowDeposited event is generated and the funds are locked
//	ERROR: "holder has not committed an escrow amount" before commitBook
//	ERROR: "escrow is already funded for this cycle" on a duplicate deposit
//	ERROR: "deposit does not match the committed amount" on any other value
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	custody := core.ProjectCustody(history, command.Holder, command.Requester, command.BookID)

	switch custody.State {
	case core.CustodyCommitted:
		// the only state that accepts a deposit

	case core.CustodyIdle, core.CustodyRequested, core.CustodyArchived, core.CustodyLost:
		return failure(command, failureReasonNotCommitted, core.ErrNotCommitted)

	default:
		return failure(command, failureReasonAlreadyFunded, core.ErrInvalidState)
	}

	if command.Amount != custody.CommittedAmount {
		return failure(command, failureReasonWrongAmount, core.ErrWrongAmount)
	}

	return core.SuccessDecision(
		core.BuildEscrowDeposited(
			command.Holder,
			command.Requester,
			command.BookID,
			command.Amount,
			command.OccurredAt,
		),
	)
}

func failure(command Command, reason string, sentinel error) core.DecisionResult {
	event := core.BuildCustodyOperationFailed(
		commandType,
		command.Holder,
		command.Requester,
		command.BookID,
		reason,
		command.OccurredAt,
	)

	return core.ErrorDecision(event, errors.Join(sentinel, errors.New(event.EventType+": "+reason)))
}

// BuildEventFilter creates the filter for querying all events
// related to the specified book which are relevant for this feature/use-case.
func BuildEventFilter(bookID core.BookIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookRequestedEventType,
			core.EscrowCommittedEventType,
			core.EscrowDepositedEventType,
			core.BookShippedEventType,
			core.BookAcceptedEventType,
			core.BookReturnShippedEventType,
			core.BookArchivedEventType,
			core.EscrowRefundedEventType,
			core.BookRejectedEventType,
			core.DefenseVerifiedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID),
		).
		Finalize()
}
