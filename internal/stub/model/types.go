package model

// StubMarker is the literal every stub identifier carries.
const StubMarker = "Stub"

// TemplateFile represents one file of a stub group.
type TemplateFile struct {
	// Path is the template file path on disk.
	Path string
	// Extension is the file extension including the leading dot (may be empty).
	Extension string
}

// StubEntry represents one selectable stub type.
type StubEntry struct {
	// Identifier is the template file stem (e.g. "ClassStub").
	Identifier string
	// Label is the identifier with "Stub" removed (e.g. "Class").
	Label string
	// Files are the template files sharing the identifier, ordered by extension.
	Files []TemplateFile
}

// Extensions returns the extensions of the entry's files in order.
func (e StubEntry) Extensions() []string {
	exts := make([]string, 0, len(e.Files))
	for _, f := range e.Files {
		exts = append(exts, f.Extension)
	}
	return exts
}

// User represents one entry of the user list.
type User struct {
	// FullName is the line as written in the user list.
	FullName string
	// Name is the first word of FullName, used for greetings.
	Name string
}

// Session is the mutable state of one interactive run.
type Session struct {
	// SelectedUser is the short name of the selected user.
	SelectedUser string
	// SelectedUserFullName replaces the author placeholder.
	SelectedUserFullName string
	// ActiveStub is the stub type being generated.
	ActiveStub *StubEntry
	// PendingFileName is the output name typed by the user.
	PendingFileName string
	// PendingDescription replaces the description placeholder.
	PendingDescription string
	// PendingDestinationPath is the directory currently browsed or chosen.
	PendingDestinationPath string
	// PendingFolderName is the new folder name awaiting confirmation.
	PendingFolderName string
	// GeneratedFileNames are the paths written to the working directory.
	GeneratedFileNames []string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// ResetStub clears everything chosen after the user selection.
func (s *Session) ResetStub() {
	s.ActiveStub = nil
	s.PendingFileName = ""
	s.PendingDescription = ""
	s.PendingDestinationPath = ""
	s.PendingFolderName = ""
	s.GeneratedFileNames = nil
}
