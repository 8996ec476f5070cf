package core

// CustodyStateTag is the explicit state of one (holder, requester, book)
// custody cycle. The flags of the source protocol (pending request, escrow
// records, transmission booleans) are folded into a single tagged state so
// every operation can be checked against one transition table.
type CustodyStateTag int

const (
	// CustodyIdle is the initial state of every triple.
	CustodyIdle CustodyStateTag = iota

	// CustodyRequested means a pending request exists.
	CustodyRequested

	// CustodyCommitted means the holder has named the escrow amount.
	CustodyCommitted

	// CustodyEscrowFunded means the requester deposited the exact amount.
	CustodyEscrowFunded

	// CustodyInTransitOutbound means the holder shipped the book.
	CustodyInTransitOutbound

	// CustodyHeldByRecipient means the requester confirmed receipt.
	CustodyHeldByRecipient

	// CustodyInTransitReturn means the rental is on its way back.
	CustodyInTransitReturn

	// CustodyArchived means the cycle completed; escrow is releasable.
	CustodyArchived

	// CustodyDisputed means the requester rejected an outbound shipment.
	CustodyDisputed

	// CustodyLost means the dispute settled with the book lost in transit.
	CustodyLost
)

// String returns the state name for logging and diagnostics.
func (t CustodyStateTag) String() string {
	switch t {
	case CustodyIdle:
		return "Idle"
	case CustodyRequested:
		return "Requested"
	case CustodyCommitted:
		return "Committed"
	case CustodyEscrowFunded:
		return "EscrowFunded"
	case CustodyInTransitOutbound:
		return "InTransitOutbound"
	case CustodyHeldByRecipient:
		return "HeldByRecipient"
	case CustodyInTransitReturn:
		return "InTransitReturn"
	case CustodyArchived:
		return "Archived"
	case CustodyDisputed:
		return "Disputed"
	case CustodyLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// custodyTransitions is the transition table. A new request is allowed again
// from the terminal states, starting a fresh cycle for the same triple.
var custodyTransitions = map[CustodyStateTag][]CustodyStateTag{
	CustodyIdle:              {CustodyRequested},
	CustodyRequested:         {CustodyCommitted},
	CustodyCommitted:         {CustodyCommitted, CustodyEscrowFunded},
	CustodyEscrowFunded:      {CustodyInTransitOutbound},
	CustodyInTransitOutbound: {CustodyHeldByRecipient, CustodyDisputed},
	CustodyHeldByRecipient:   {CustodyInTransitReturn, CustodyArchived},
	CustodyInTransitReturn:   {CustodyArchived},
	CustodyArchived:          {CustodyRequested},
	CustodyDisputed:          {CustodyLost},
	CustodyLost:              {CustodyRequested},
}

// CanTransition reports whether the transition table permits moving from one
// custody state to another.
func CanTransition(from CustodyStateTag, to CustodyStateTag) bool {
	for _, allowed := range custodyTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// Custody is the projected state of one (holder, requester, book) triple.
type Custody struct {
	State CustodyStateTag

	// Permanent marks the current cycle as a trade rather than a rental.
	Permanent bool

	// CommittedAmount is the escrow the holder demanded (commitBook).
	CommittedAmount AmountUint

	// DepositedAmount is the escrow currently locked for this triple.
	DepositedAmount AmountUint

	// Refunded is true once the locked deposit has been released.
	Refunded bool

	// OutboundInTransit mirrors the holder->requester transmission flag.
	OutboundInTransit bool

	// ReturnInTransit mirrors the requester->holder transmission flag.
	ReturnInTransit bool

	// DisputeFiled is true once the requester rejected the shipment.
	DisputeFiled bool
}

// ProjectCustody replays the history and returns the custody state of the
// given triple. Failure events and events of other triples are ignored.
// Success events are only ever appended after a legal decision, so the
// projection applies them without re-validating.
func ProjectCustody(
	history DomainEvents,
	holder PartyIDString,
	requester PartyIDString,
	bookID BookIDString,
) Custody {

	c := Custody{State: CustodyIdle}

	for _, event := range history {
		switch e := event.(type) {
		case BookRequested:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				// a fresh request restarts the cycle for this triple
				c = Custody{
					State:     CustodyRequested,
					Permanent: e.Permanent,
				}
			}

		case EscrowCommitted:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.State = CustodyCommitted
				c.CommittedAmount = e.Amount
			}

		case EscrowDeposited:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.State = CustodyEscrowFunded
				c.DepositedAmount += e.Amount
			}

		case BookShipped:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.State = CustodyInTransitOutbound
				c.OutboundInTransit = true
			}

		case BookAccepted:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.State = CustodyHeldByRecipient
				c.OutboundInTransit = false
			}

		case BookReturnShipped:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.State = CustodyInTransitReturn
				c.ReturnInTransit = true
			}

		case BookArchived:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.State = CustodyArchived
				c.OutboundInTransit = false
				c.ReturnInTransit = false
			}

		case EscrowRefunded:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.Refunded = true
				c.DepositedAmount = 0

				if c.State == CustodyDisputed {
					// unanswered dispute settles as lost once refunded
					c.State = CustodyLost
				}
			}

		case BookRejected:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.State = CustodyDisputed
				c.OutboundInTransit = false
				c.DisputeFiled = true
			}

		case DefenseVerified:
			if e.Holder == holder && e.Requester == requester && e.BookID == bookID {
				c.State = CustodyLost
				// the deposit is awarded to the holder, nothing stays locked
				c.DepositedAmount = 0
			}
		}
	}

	return c
}
