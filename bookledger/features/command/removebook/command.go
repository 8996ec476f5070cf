package removebook

import (
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	commandType = "RemoveBook"
)

// Command represents the intent to take a registered book out of circulation.
// Permanent records whether the removal was part of giving the book away for
// good; it is kept for auditing only.
type Command struct {
	Actor      core.PartyIDString
	BookID     core.BookIDString
	Permanent  bool
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	actor core.PartyIDString,
	bookID core.BookIDString,
	permanent bool,
	occurredAt time.Time,
) Command {
	return Command{
		Actor:      actor,
		BookID:     bookID,
		Permanent:  permanent,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
