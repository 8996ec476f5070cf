package core

// BookRecord is the projected registry entry of a single book.
type BookRecord struct {
	BookID BookIDString

	// Owner is the current owner, or ZeroParty if the book was never
	// registered or was removed. A book lost to a verified defense keeps
	// its last owner on record so that owner can still remove it.
	Owner PartyIDString

	// Registered is true once the book id has ever been registered.
	Registered bool

	// Lost is true once a verified defense settled the book as lost.
	Lost bool

	Copies    uint32
	Location  string
	Publisher string
	Author    string
	Title     string
}

// ProjectBookRecord replays the history and returns the registry entry for
// the given book. Failure events are ignored.
func ProjectBookRecord(history DomainEvents, bookID BookIDString) BookRecord {
	rec := BookRecord{BookID: bookID, Owner: ZeroParty}

	for _, event := range history {
		switch e := event.(type) {
		case BookRegistered:
			if e.BookID == bookID {
				rec.Owner = e.Owner
				rec.Registered = true
				rec.Lost = false
				rec.Copies = e.Copies
				rec.Location = e.Location
				rec.Publisher = e.Publisher
				rec.Author = e.Author
				rec.Title = e.Title
			}

		case BookRemoved:
			if e.BookID == bookID {
				rec.Owner = ZeroParty
			}

		case BookArchived:
			if e.BookID == bookID && e.OwnershipTransferred {
				rec.Owner = e.Requester
			}

		case DefenseVerified:
			if e.BookID == bookID {
				rec.Lost = true
			}
		}
	}

	return rec
}

// HasActiveTransmission reports whether any transmission flag involving the
// book is currently set, for any party pair. The state machine guarantees at
// most one pair has the book in flight, so a single toggle suffices.
func HasActiveTransmission(history DomainEvents, bookID BookIDString) bool {
	inTransit := false

	for _, event := range history {
		switch e := event.(type) {
		case BookShipped:
			if e.BookID == bookID {
				inTransit = true
			}

		case BookAccepted:
			if e.BookID == bookID {
				inTransit = false
			}

		case BookReturnShipped:
			if e.BookID == bookID {
				inTransit = true
			}

		case BookArchived:
			if e.BookID == bookID {
				inTransit = false
			}

		case BookRejected:
			// a rejected shipment is no longer moving, the dispute path owns it now
			if e.BookID == bookID {
				inTransit = false
			}
		}
	}

	return inTransit
}
