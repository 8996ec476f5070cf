package requestbook

import (
	"errors"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
	"github.com/peershelf/bookledger-go/eventstore"
)

const (
	failureReasonHolderDoesNotOwn = "holder does not currently own the book"
	failureReasonBookLost         = "book was lost in a settled dispute"
	failureReasonSelfRequest      = "requester and holder are the same party"
	failureReasonInTransit        = "book has an active transmission"
	failureReasonCycleOpen        = "book already has an open custody cycle"
	failureReasonDepositHeld      = "previous cycle's escrow deposit has not been refunded"
)

// state represents the current state projected from the event history.
type state struct {
	cycleOpen          bool
	cycleHolder        core.PartyIDString
	cycleRequester     core.PartyIDString
	cyclePermanent     bool
	cycleAdvanced      bool // the open cycle moved past the pending request
	disputed           bool
	depositOutstanding bool // a locked deposit has not been released yet
}

// Decide implements the business logic to determine whether a book request should be recorded.
// This is a pure function with no side effects - it takes the current domain events and a command
// and returns the event that should be appended based on the business rules.
//
// Business Rules:
//
//	GIVEN: A book currently owned by the holder
//	WHEN: RequestBook command is received
//	THEN: BookRequested event is generated, opening a custody cycle
//	ERROR: "holder does not currently own the book" on an ownership mismatch
//	ERROR: "book was lost in a settled dispute" until the holder strikes and re-registers it
//	ERROR: "requester and holder are the same party" on a self request
//	ERROR: "book has an active transmission" while the book is physically in flight
//	ERROR: "book already has an open custody cycle" while any cycle is unfinished
//	ERROR: "previous cycle's escrow deposit has not been refunded" while funds stay locked
//	IDEMPOTENCY: An identical pending request generates no event (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	record := core.ProjectBookRecord(history, command.BookID)
	if record.Owner != command.Holder {
		return failure(command, failureReasonHolderDoesNotOwn, core.ErrNotFound)
	}

	if record.Lost {
		return failure(command, failureReasonBookLost, core.ErrNotFound)
	}

	if command.Requester == command.Holder {
		return failure(command, failureReasonSelfRequest, core.ErrSelfRequest)
	}

	if core.HasActiveTransmission(history, command.BookID) {
		return failure(command, failureReasonInTransit, core.ErrAssetBusy)
	}

	s := project(history, command.BookID)

	if s.cycleOpen {
		samePendingRequest := !s.cycleAdvanced &&
			s.cycleHolder == command.Holder &&
			s.cycleRequester == command.Requester &&
			s.cyclePermanent == command.Permanent

		if samePendingRequest {
			return core.IdempotentDecision() // idempotency - the identical request is already pending
		}

		return failure(command, failureReasonCycleOpen, core.ErrAssetBusy)
	}

	// a new request would reset the triple's custody projection, which must
	// never bury a deposit that is still waiting for its refund
	if s.depositOutstanding {
		return failure(command, failureReasonDepositHeld, core.ErrAssetBusy)
	}

	return core.SuccessDecision(
		core.BuildBookRequested(
			command.Holder,
			command.Requester,
			command.BookID,
			command.Permanent,
			command.OccurredAt,
		),
	)
}

// project builds the open-cycle state by replaying all events for the book,
// regardless of which party pair they belong to. At most one cycle per book
// can be open at a time; it closes on archive, on a settled dispute, or when
// the book leaves the registry. A deposit stays outstanding past the close
// of its cycle until a refund or a verified defense releases it.
func project(history core.DomainEvents, bookID core.BookIDString) state {
	s := state{}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookRequested:
			if e.BookID == bookID {
				s = state{
					cycleOpen:      true,
					cycleHolder:    e.Holder,
					cycleRequester: e.Requester,
					cyclePermanent: e.Permanent,
				}
			}

		case core.EscrowCommitted:
			if e.BookID == bookID {
				s.cycleAdvanced = true
			}

		case core.EscrowDeposited:
			if e.BookID == bookID {
				s.cycleAdvanced = true
				s.depositOutstanding = true
			}

		case core.BookShipped:
			if e.BookID == bookID {
				s.cycleAdvanced = true
			}

		case core.BookRejected:
			if e.BookID == bookID {
				s.cycleAdvanced = true
				s.disputed = true
			}

		case core.BookArchived:
			if e.BookID == bookID {
				s.cycleOpen = false
			}

		case core.DefenseVerified:
			// the verified defense awards the deposit to the holder
			if e.BookID == bookID {
				s.cycleOpen = false
				s.depositOutstanding = false
			}

		case core.EscrowRefunded:
			if e.BookID == bookID {
				s.depositOutstanding = false

				// a refund settles an unanswered dispute and closes the cycle
				if s.disputed {
					s.cycleOpen = false
				}
			}

		case core.BookRemoved:
			if e.BookID == bookID {
				s.cycleOpen = false
			}
		}
	}

	return s
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
			core.BookRegisteredEventType,
			core.BookRemovedEventType,
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
