// Package app runs the interactive stub generation session.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tacogips/stubgen/internal/debug"
	"github.com/tacogips/stubgen/internal/greeter"
	"github.com/tacogips/stubgen/internal/stub/catalog"
	"github.com/tacogips/stubgen/internal/stub/materializer"
	"github.com/tacogips/stubgen/internal/stub/model"
)

// Options configures a Runner.
type Options struct {
	// Catalog is the stub catalog offered in the stub menu.
	Catalog *catalog.Catalog
	// Users is the user list offered in the user menu.
	Users []model.User
	// Materializer generates and relocates files.
	Materializer *materializer.Materializer
	// Console is the terminal surface.
	Console Console
	// OnTransition is called after every state change.
	OnTransition func(from, to State)
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeWarn
	noticeError
)

type notice struct {
	level noticeLevel
	text  string
}

// Runner drives one session through its states.
type Runner struct {
	catalog      *catalog.Catalog
	users        []model.User
	materializer *materializer.Materializer
	console      Console
	onTransition func(from, to State)

	session *model.Session
	state   State
	notices []notice
	// listing is the destination menu as last rendered.
	listing []string
}

// NewRunner creates a Runner positioned at StateSelectUser.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Catalog == nil || opts.Catalog.Len() == 0 {
		return nil, NewSetupError("stub catalog is empty")
	}
	if len(opts.Users) == 0 {
		return nil, NewSetupError("user list is empty")
	}
	if opts.Materializer == nil {
		return nil, NewSetupError("materializer is required")
	}
	if opts.Console == nil {
		return nil, NewSetupError("console is required")
	}

	return &Runner{
		catalog:      opts.Catalog,
		users:        opts.Users,
		materializer: opts.Materializer,
		console:      opts.Console,
		onTransition: opts.OnTransition,
		session:      model.NewSession(),
		state:        StateSelectUser,
	}, nil
}

// State returns the current state.
func (r *Runner) State() State {
	return r.state
}

// Session returns the session data.
func (r *Runner) Session() *model.Session {
	return r.session
}

// Run processes states until StateDone. Exhausted input ends the session
// without an error.
func (r *Runner) Run(ctx context.Context) error {
	debug.DebugSection("[app] Session start")
	defer r.flushNotices()

	for r.state != StateDone {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := r.step(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				debug.Debug("[app] Input closed in state %s", r.state)
				r.setState(StateDone)
				return nil
			}
			return err
		}
		r.setState(next)
	}

	debug.Debug("[app] Session completed")
	return nil
}

func (r *Runner) setState(next State) {
	prev := r.state
	r.state = next
	debug.DebugFields("[app] Transition", "from", prev.String(), "to", next.String())
	if r.onTransition != nil {
		r.onTransition(prev, next)
	}
}

func (r *Runner) step(ctx context.Context) (State, error) {
	switch r.state {
	case StateSelectUser:
		return r.selectUser()
	case StateSelectStubType:
		return r.selectStubType()
	case StateNameFile:
		return r.nameFile()
	case StateConfirmName:
		return r.confirmName()
	case StateDescribeStub:
		return r.describeStub()
	case StateMaterialize:
		return r.materialize(ctx)
	case StateChooseDestination:
		return r.chooseDestination()
	case StateNameNewFolder:
		return r.nameNewFolder()
	case StateConfirmFolder:
		return r.confirmFolder()
	case StateFinalize:
		return r.finalize(ctx)
	default:
		return StateDone, nil
	}
}

func (r *Runner) selectUser() (State, error) {
	r.redraw()
	r.console.Println("Select a user:")
	for i, u := range r.users {
		r.console.Printf("%d. %s\n", i, u.FullName)
	}
	r.console.Println()

	line, err := r.console.Ask("Enter the number corresponding to your name:")
	if err != nil {
		return StateSelectUser, err
	}

	token := firstToken(line)
	idx, ok := parseIndex(token)
	if !ok || idx >= len(r.users) {
		r.warnInvalidSelection(token)
		return StateSelectUser, nil
	}

	user := r.users[idx]
	r.session.SelectedUser = user.Name
	r.session.SelectedUserFullName = user.FullName
	debug.DebugValue("[app] User", user.FullName)
	return StateSelectStubType, nil
}

func (r *Runner) selectStubType() (State, error) {
	r.redraw()
	r.console.Println(greeter.GetGreeting(r.session.SelectedUser))
	r.console.Println()
	for i, e := range r.catalog.Entries() {
		r.console.Printf("%d. Create a %s\n", i+1, e.Label)
	}
	r.console.Println()
	r.console.Println("Type [exit] to close the program.")

	line, err := r.console.Ask("Select a stub type:")
	if err != nil {
		return StateSelectStubType, err
	}

	token := firstToken(line)
	if isExit(token) {
		return StateDone, nil
	}

	idx, ok := parseIndex(token)
	if !ok {
		r.warnInvalidSelection(token)
		return StateSelectStubType, nil
	}
	entry, ok := r.catalog.At(idx)
	if !ok {
		r.warnInvalidSelection(token)
		return StateSelectStubType, nil
	}

	r.session.ResetStub()
	r.session.ActiveStub = &entry
	debug.DebugValue("[app] Stub", entry.Identifier)
	return StateNameFile, nil
}

func (r *Runner) nameFile() (State, error) {
	label := r.session.ActiveStub.Label

	r.redraw()
	r.console.Println(commandsHint)
	r.console.Println()
	r.console.Printf("What would you like to name your new %s file?\n", label)

	line, err := r.console.Ask("File name:")
	if err != nil {
		return StateNameFile, err
	}

	token := firstToken(line)
	switch {
	case isExit(token):
		return StateDone, nil
	case isBack(token):
		r.returnToStubMenu()
		return StateSelectStubType, nil
	}

	if err := ValidateFileName(token); err != nil {
		r.addNotice(noticeWarn, validationMessage(err))
		return StateNameFile, nil
	}

	r.session.PendingFileName = token
	return StateConfirmName, nil
}

func (r *Runner) confirmName() (State, error) {
	r.redraw()
	r.console.Printf("You typed: %s\n", r.session.PendingFileName)
	r.console.Println()

	line, err := r.console.Ask("Is this correct? (Y/N)")
	if err != nil {
		return StateConfirmName, err
	}
	if !isYes(line) {
		r.session.PendingFileName = ""
		return StateNameFile, nil
	}
	return StateDescribeStub, nil
}

func (r *Runner) describeStub() (State, error) {
	r.redraw()
	r.console.Printf("Perfect! Give me a brief description of what the %s %s does:\n",
		r.session.PendingFileName, strings.ToLower(r.session.ActiveStub.Label))

	line, err := r.console.Ask("Description:")
	if err != nil {
		return StateDescribeStub, err
	}

	r.session.PendingDescription = line
	return StateMaterialize, nil
}

func (r *Runner) materialize(ctx context.Context) (State, error) {
	result, err := r.materializer.Materialize(ctx, materializer.Request{
		Entry:       *r.session.ActiveStub,
		OutputName:  r.session.PendingFileName,
		Description: r.session.PendingDescription,
		Author:      r.session.SelectedUserFullName,
	})
	if err != nil {
		return StateMaterialize, NewGenerationError("failed to generate files", err)
	}

	for _, f := range result.Files {
		r.addNotice(noticeSuccess, fmt.Sprintf("%s created successfully. (%s)",
			filepath.Base(f.Path), humanize.Bytes(uint64(f.Size))))
	}
	for _, e := range result.Errors {
		r.addNotice(noticeError, e.Error())
	}

	if len(result.Files) == 0 {
		r.addNotice(noticeWarn, "No files were generated.")
		r.session.ResetStub()
		return StateSelectStubType, nil
	}

	r.session.GeneratedFileNames = result.Paths()
	r.session.PendingDestinationPath = r.materializer.WorkDir()
	return StateChooseDestination, nil
}

func (r *Runner) chooseDestination() (State, error) {
	dir := r.session.PendingDestinationPath

	listing, err := listDirectories(dir)
	if err != nil {
		parent := parentDir(dir)
		if displayPath(parent) == displayPath(dir) {
			return StateChooseDestination, NewDestinationError("no readable destination directory", err)
		}
		r.addNotice(noticeError, err.Error())
		r.session.PendingDestinationPath = parent
		return StateChooseDestination, nil
	}
	r.listing = listing
	newFolder := len(listing) + 2

	r.redraw()
	r.console.Println("Perfect! Where would you like to place the new files?")
	r.console.Println()
	r.console.Printf("> %s\n", displayPath(dir))
	r.console.Println("  0) ..")
	r.console.Println("  1) .")
	for i, name := range listing {
		r.console.Printf("  %d) %s\n", i+2, name)
	}
	r.console.Printf("  %d) Create a new folder.\n", newFolder)
	r.console.Println()

	line, err := r.console.Ask("Destination:")
	if err != nil {
		return StateChooseDestination, err
	}

	token := firstToken(line)
	idx, ok := parseIndex(token)
	if !ok || idx > newFolder {
		r.warnInvalidSelection(token)
		return StateChooseDestination, nil
	}

	switch {
	case idx == 0:
		r.session.PendingDestinationPath = parentDir(dir)
		return StateChooseDestination, nil
	case idx == 1:
		return StateFinalize, nil
	case idx == newFolder:
		return StateNameNewFolder, nil
	default:
		r.session.PendingDestinationPath = filepath.Join(dir, r.listing[idx-2])
		return StateChooseDestination, nil
	}
}

func (r *Runner) nameNewFolder() (State, error) {
	r.redraw()
	r.console.Println(commandsHint)
	r.console.Println()
	r.console.Println("What would you like to name your new directory?")

	line, err := r.console.Ask(displayPath(r.session.PendingDestinationPath) + string(filepath.Separator))
	if err != nil {
		return StateNameNewFolder, err
	}

	token := firstToken(line)
	switch {
	case isExit(token):
		r.discardGenerated()
		return StateDone, nil
	case isBack(token):
		r.returnToStubMenu()
		return StateSelectStubType, nil
	}

	if err := ValidateFolderName(token); err != nil {
		r.addNotice(noticeWarn, validationMessage(err))
		return StateNameNewFolder, nil
	}

	r.session.PendingFolderName = token
	return StateConfirmFolder, nil
}

func (r *Runner) confirmFolder() (State, error) {
	r.redraw()
	r.console.Printf("You typed: %s\n", r.session.PendingFolderName)
	r.console.Println()

	line, err := r.console.Ask("Is this correct? (Y/N)")
	if err != nil {
		return StateConfirmFolder, err
	}
	if !isYes(line) {
		r.session.PendingFolderName = ""
		return StateNameNewFolder, nil
	}

	dest := filepath.Join(r.session.PendingDestinationPath, r.session.PendingFolderName)
	if err := r.materializer.CreateDir(dest); err != nil {
		r.addNotice(noticeError, err.Error())
		r.session.PendingFolderName = ""
		return StateChooseDestination, nil
	}

	r.session.PendingDestinationPath = dest
	return StateFinalize, nil
}

func (r *Runner) finalize(ctx context.Context) (State, error) {
	dest := r.session.PendingDestinationPath
	result := r.materializer.Relocate(ctx, r.session.GeneratedFileNames, dest)

	r.redraw()
	for _, path := range result.Moved {
		r.console.Success(fmt.Sprintf("%s placed in %s", filepath.Base(path), displayPath(dest)))
	}
	for _, e := range result.Errors {
		r.console.Error(e.Error())
	}
	if len(result.Errors) > 0 {
		r.console.Warn(fmt.Sprintf("Files that could not be moved remain in %s", displayPath(r.materializer.WorkDir())))
	}

	r.session.GeneratedFileNames = nil
	return StateDone, nil
}

// returnToStubMenu abandons the current stub. Files already generated stay
// in the working directory.
func (r *Runner) returnToStubMenu() {
	if n := len(r.session.GeneratedFileNames); n > 0 {
		names := make([]string, 0, n)
		for _, p := range r.session.GeneratedFileNames {
			names = append(names, filepath.Base(p))
		}
		r.addNotice(noticeWarn, fmt.Sprintf("Generated files left in %s: %s",
			displayPath(r.materializer.WorkDir()), strings.Join(names, ", ")))
	}
	r.session.ResetStub()
}

func (r *Runner) discardGenerated() {
	errs := r.materializer.Discard(r.session.GeneratedFileNames)
	for _, e := range errs {
		r.addNotice(noticeError, e.Error())
	}
	if len(errs) == 0 && len(r.session.GeneratedFileNames) > 0 {
		r.addNotice(noticeInfo, "Generated files removed.")
	}
	r.session.GeneratedFileNames = nil
}

func (r *Runner) warnInvalidSelection(token string) {
	if token == "" {
		r.addNotice(noticeWarn, "Please enter a number from the list.")
		return
	}
	r.addNotice(noticeWarn, fmt.Sprintf("%q is not a valid selection.", token))
}

func (r *Runner) addNotice(level noticeLevel, text string) {
	r.notices = append(r.notices, notice{level: level, text: text})
}

// redraw clears the screen and prints notices queued since the last redraw.
func (r *Runner) redraw() {
	r.console.Clear()
	r.flushNotices()
}

func (r *Runner) flushNotices() {
	if len(r.notices) == 0 {
		return
	}
	for _, n := range r.notices {
		switch n.level {
		case noticeSuccess:
			r.console.Success(n.text)
		case noticeWarn:
			r.console.Warn(n.text)
		case noticeError:
			r.console.Error(n.text)
		default:
			r.console.Println(n.text)
		}
	}
	r.console.Println()
	r.notices = nil
}

func validationMessage(err error) string {
	var stubErr *model.StubError
	if errors.As(err, &stubErr) {
		return stubErr.Message
	}
	return err.Error()
}
