package archivebook

import (
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	commandType = "ArchiveBook"
)

// Command represents the intent to close a custody cycle.
// Actor is the confirming party: the holder for a rental,
// the requester for a permanent trade.
type Command struct {
	Actor      core.PartyIDString
	Holder     core.PartyIDString
	Requester  core.PartyIDString
	BookID     core.BookIDString
	Note       core.NoteString
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	actor core.PartyIDString,
	holder core.PartyIDString,
	requester core.PartyIDString,
	bookID core.BookIDString,
	note core.NoteString,
	occurredAt time.Time,
) Command {
	return Command{
		Actor:      actor,
		Holder:     holder,
		Requester:  requester,
		BookID:     bookID,
		Note:       note,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
