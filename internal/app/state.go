package app

// State is a node of the interactive session.
type State int

const (
	// StateSelectUser asks who is generating files.
	StateSelectUser State = iota
	// StateSelectStubType lists the stub catalog.
	StateSelectStubType
	// StateNameFile asks for the output file name.
	StateNameFile
	// StateConfirmName confirms the output file name.
	StateConfirmName
	// StateDescribeStub asks for the description.
	StateDescribeStub
	// StateMaterialize writes the files into the working directory.
	StateMaterialize
	// StateChooseDestination browses for the destination directory.
	StateChooseDestination
	// StateNameNewFolder asks for a new folder name.
	StateNameNewFolder
	// StateConfirmFolder confirms and creates the new folder.
	StateConfirmFolder
	// StateFinalize moves the files into the destination.
	StateFinalize
	// StateDone ends the session.
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSelectUser:
		return "SelectUser"
	case StateSelectStubType:
		return "SelectStubType"
	case StateNameFile:
		return "NameFile"
	case StateConfirmName:
		return "ConfirmName"
	case StateDescribeStub:
		return "DescribeStub"
	case StateMaterialize:
		return "Materialize"
	case StateChooseDestination:
		return "ChooseDestination"
	case StateNameNewFolder:
		return "NameNewFolder"
	case StateConfirmFolder:
		return "ConfirmFolder"
	case StateFinalize:
		return "Finalize"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}
