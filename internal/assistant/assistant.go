// Package assistant is the command dispatcher for the interactive session.
// It parses one input line into a command and arguments, invokes the address
// book, and renders the reply text shown at the prompt. All failures are
// translated to fixed user-facing messages; nothing here is fatal.
package assistant

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vrylskyj/abook/internal/domain"
	"github.com/vrylskyj/abook/internal/ports"
)

// Fixed user-facing strings, kept verbatim from the bot's original dialogue.
const (
	Banner   = "Welcome to the assistant bot!"
	Prompt   = "Enter a command: "
	Greeting = "How can I help you?"
	Farewell = "Good bye!"

	msgInvalid        = "Invalid command."
	msgGivePair       = "Give me name and phone please."
	msgNotFound       = "Contact not found"
	msgInvalidCommand = "Invalid command. Please enter a valid command."
)

// Assistant owns the session state: one address book, one clock, one logger.
// It is constructed at startup and discarded at shutdown.
type Assistant struct {
	book  *domain.Book
	clock ports.Clock
	log   *slog.Logger
}

func New(book *domain.Book, clock ports.Clock, log *slog.Logger) *Assistant {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Assistant{book: book, clock: clock, log: log}
}

// Book exposes the live address book (read access for the UI).
func (a *Assistant) Book() *domain.Book { return a.book }

// Reply is the outcome of one dispatched line.
type Reply struct {
	Text string
	Quit bool
}

// Handle dispatches a single input line and always returns a printable reply.
func (a *Assistant) Handle(line string) Reply {
	cmd, args := ParseLine(line)

	switch cmd {
	case "":
		return Reply{Text: msgInvalidCommand}
	case "hello":
		return Reply{Text: Greeting}
	case "close", "exit":
		return Reply{Text: Farewell, Quit: true}
	}

	handler, ok := a.handlers()[cmd]
	if !ok {
		a.log.Debug("command.unknown", "cmd", cmd)
		return Reply{Text: msgInvalid}
	}

	text, err := handler(args)
	if err != nil {
		a.log.Info("command.failed", "cmd", cmd, "err", err)
		return Reply{Text: userMessage(err)}
	}

	a.log.Debug("command.handled", "cmd", cmd)
	return Reply{Text: text}
}

type handlerFunc func(args []string) (string, error)

func (a *Assistant) handlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		"add":           a.addContact,
		"change":        a.changeContact,
		"phone":         a.showPhone,
		"all":           a.showAll,
		"add-birthday":  a.addBirthday,
		"show-birthday": a.showBirthday,
		"birthdays":     a.birthdays,
	}
}

func (a *Assistant) addContact(args []string) (string, error) {
	if err := wantArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if _, err := a.book.Find(name); err == nil {
		return "", &domain.OpError{
			Op:   "assistant.add",
			Kind: domain.KindDuplicateName,
			Err:  fmt.Errorf("contact %q already exists", name),
		}
	}

	r := domain.NewRecord(name)
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	a.book.AddRecord(r)
	return "Contact added", nil
}

func (a *Assistant) changeContact(args []string) (string, error) {
	if err := wantArgs(args, 2); err != nil {
		return "", err
	}
	name, newPhone := args[0], args[1]

	r, err := a.book.Find(name)
	if err != nil {
		return "", err
	}
	first, err := firstPhone(r)
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(first.String(), newPhone); err != nil {
		return "", err
	}
	return "Contact updated", nil
}

func (a *Assistant) showPhone(args []string) (string, error) {
	if err := wantArgs(args, 1); err != nil {
		return "", err
	}

	r, err := a.book.Find(args[0])
	if err != nil {
		return "", err
	}
	first, err := firstPhone(r)
	if err != nil {
		return "", err
	}
	return first.String(), nil
}

func (a *Assistant) showAll(args []string) (string, error) {
	if err := wantArgs(args, 0); err != nil {
		return "", err
	}

	records := a.book.Records()
	if len(records) == 0 {
		return "There are no contacts.", nil
	}

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	if err := wantArgs(args, 2); err != nil {
		return "", err
	}
	name, raw := args[0], args[1]

	if err := a.book.AddBirthday(name, raw); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s", name), nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	if err := wantArgs(args, 1); err != nil {
		return "", err
	}
	name := args[0]

	r, err := a.book.Find(name)
	if err != nil {
		return "", err
	}
	bd, ok := r.Birthday()
	if !ok {
		return fmt.Sprintf("No birthday set for %s", name), nil
	}
	return fmt.Sprintf("%s's birthday: %s", name, bd), nil
}

func (a *Assistant) birthdays(args []string) (string, error) {
	if err := wantArgs(args, 0); err != nil {
		return "", err
	}

	upcoming := a.book.UpcomingBirthdays(a.clock.Now())
	if len(upcoming) == 0 {
		return "No upcoming birthdays this week.", nil
	}

	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", u.Weekday, u.Name)
	}
	return strings.Join(lines, "\n"), nil
}

func firstPhone(r *domain.Record) (domain.Phone, error) {
	phones := r.Phones()
	if len(phones) == 0 {
		return domain.Phone{}, &domain.OpError{
			Op:   "assistant.firstphone",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("record %q has no phones", r.Name()),
		}
	}
	return phones[0], nil
}

func wantArgs(args []string, n int) error {
	if len(args) == n {
		return nil
	}
	return &domain.OpError{
		Op:   "assistant.args",
		Kind: domain.KindArity,
		Err:  fmt.Errorf("want %d argument(s), got %d", n, len(args)),
	}
}

// userMessage collapses every command failure into one of three fixed
// messages: lookup misses, argument-count problems, and everything else
// (format, duplicate, already-set) as the generic "give me name and phone".
func userMessage(err error) string {
	switch {
	case domain.IsKind(err, domain.KindNotFound):
		return msgNotFound
	case domain.IsKind(err, domain.KindArity):
		return msgInvalidCommand
	default:
		return msgGivePair
	}
}
