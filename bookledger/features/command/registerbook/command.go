package registerbook

import (
	"time"

	"github.com/peershelf/bookledger-go/bookledger/shared/core"
)

const (
	commandType = "RegisterBook"
)

// Command represents the intent to register a physical book as a tracked asset.
// It encapsulates all the necessary information required to execute the register book use case.
type Command struct {
	Actor      core.PartyIDString
	BookID     core.BookIDString
	Copies     uint32
	Location   string
	Publisher  string
	Author     string
	Title      string
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
	copies uint32,
	location string,
	publisher string,
	author string,
	title string,
	occurredAt time.Time,
) Command {
	return Command{
		Actor:      actor,
		BookID:     bookID,
		Copies:     copies,
		Location:   location,
		Publisher:  publisher,
		Author:     author,
		Title:      title,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
