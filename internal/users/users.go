// Package users loads the list of people who can author stubs.
// The file holds one full name per line.
package users

import (
	"bufio"
	"os"
	"strings"

	"github.com/tacogips/stubgen/internal/debug"
	"github.com/tacogips/stubgen/internal/stub/model"
)

// Load reads the user list at path. Blank lines are skipped.
// A missing file or a file without names is a configuration error.
func Load(path string) ([]model.User, error) {
	debug.Debug("[users] Loading user list: %s", path)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.NewConfigurationError("user list not found", path, err)
		}
		return nil, model.NewConfigurationError("failed to open user list", path, err)
	}
	defer func() { _ = f.Close() }()

	var list []model.User
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimSuffix(scanner.Text(), "\r"))
		if line == "" {
			continue
		}
		list = append(list, NewUser(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, model.NewConfigurationError("failed to read user list", path, err)
	}

	if len(list) == 0 {
		return nil, model.NewConfigurationError("user list is empty", path, nil)
	}

	debug.Debug("[users] Loaded %d users", len(list))
	return list, nil
}

// NewUser builds a User from a full name. The short name is the first word.
func NewUser(fullName string) model.User {
	name := fullName
	if i := strings.IndexByte(fullName, ' '); i >= 0 {
		name = fullName[:i]
	}
	return model.User{FullName: fullName, Name: name}
}
