package app

import (
	"strconv"
	"strings"

	"github.com/tacogips/stubgen/internal/stub/model"
)

// Control tokens accepted wherever a name is typed.
const (
	tokenBack   = "back"
	tokenCancel = "cancel"
	tokenExit   = "exit"
)

const commandsHint = "Commands: [back] / [cancel] to go back, [exit] to close the program."

// firstToken returns the first whitespace-separated field of line.
func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// parseIndex parses a menu selection. Signs and trailing characters are rejected.
func parseIndex(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isBack(token string) bool {
	return token == tokenBack || token == tokenCancel
}

func isExit(token string) bool {
	return token == tokenExit
}

// isYes reports whether a confirmation answer starts with y or Y.
func isYes(line string) bool {
	t := strings.TrimSpace(line)
	return t != "" && (t[0] == 'y' || t[0] == 'Y')
}

// ValidateFileName checks an output file name.
func ValidateFileName(name string) error {
	if err := validateNameComponent(name); err != nil {
		return err
	}
	if strings.Contains(strings.ToLower(name), strings.ToLower(model.StubMarker)) {
		return model.NewInputValidationError(`File name cannot contain "Stub".`)
	}
	return nil
}

// ValidateFolderName checks a new folder name.
func ValidateFolderName(name string) error {
	return validateNameComponent(name)
}

func validateNameComponent(name string) error {
	if strings.TrimSpace(name) == "" {
		return model.NewInputValidationError("Name cannot be empty.")
	}
	if name == "." || name == ".." {
		return model.NewInputValidationError("Name cannot be \".\" or \"..\".")
	}
	if strings.ContainsAny(name, `/\`) {
		return model.NewInputValidationError("Name cannot contain a path separator.")
	}
	if strings.ContainsAny(name, "\x00<>:\"|?*") {
		return model.NewInputValidationError(`Name cannot contain any of < > : " | ? *`)
	}
	return nil
}
