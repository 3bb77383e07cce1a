package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tacogips/stubgen/internal/app"
	"github.com/tacogips/stubgen/internal/config"
	"github.com/tacogips/stubgen/internal/debug"
	"github.com/tacogips/stubgen/internal/stub/catalog"
	"github.com/tacogips/stubgen/internal/stub/materializer"
	"github.com/tacogips/stubgen/internal/stub/model"
	"github.com/tacogips/stubgen/internal/users"
)

// pathOverrides holds command-line values that replace configured ones.
// Empty strings leave the configured value in place.
type pathOverrides struct {
	StubsDir  string
	UsersFile string
	WorkDir   string
	NoColor   bool
}

// loadConfigFromFlags resolves the configuration for the current command.
func loadConfigFromFlags(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	ov := pathOverrides{NoColor: globalNoColor}
	if flags.Changed(FlagStubs) {
		ov.StubsDir = globalStubsDir
	}
	if flags.Changed(FlagUsers) {
		ov.UsersFile = globalUsersFile
	}
	if flags.Changed(FlagWorkDir) {
		ov.WorkDir = globalWorkDir
	}

	cfg, err := loadConfig(globalConfigPath, flags.Changed(FlagConfig), ov)
	if err != nil {
		return nil, err
	}

	if cfg.Output.NoColor && !globalNoColor {
		globalNoColor = true
		debug.SetNoColor(true)
	}
	return cfg, nil
}

// loadConfig loads the configuration file, then applies overrides and validates.
// An explicit path must exist; otherwise the default location is optional.
func loadConfig(path string, explicit bool, ov pathOverrides) (*config.Config, error) {
	loader := config.NewLoader()

	var (
		cfg *config.Config
		err error
	)
	if explicit {
		cfg, err = loader.Load(path)
	} else {
		cfg, err = loader.LoadOrDefault(config.DefaultConfigPath())
	}
	if err != nil {
		return nil, err
	}

	if ov.StubsDir != "" {
		cfg.Paths.StubsDir = ov.StubsDir
	}
	if ov.UsersFile != "" {
		cfg.Paths.UsersFile = ov.UsersFile
	}
	if ov.WorkDir != "" {
		cfg.Paths.WorkDir = ov.WorkDir
	}
	if ov.NoColor {
		cfg.Output.NoColor = true
	}

	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}

	debug.DebugValue("[cli] Stubs directory", cfg.Paths.StubsDir)
	debug.DebugValue("[cli] Users file", cfg.Paths.UsersFile)
	debug.DebugValue("[cli] Working directory", cfg.Paths.WorkDir)
	return cfg, nil
}

// buildCatalog scans the configured stub directory.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	dir, err := config.ExpandPath(cfg.Paths.StubsDir)
	if err != nil {
		return nil, model.NewConfigurationError("invalid stub directory", cfg.Paths.StubsDir, err)
	}

	cat, err := catalog.Build(dir, catalog.Options{
		IgnorePatterns: cfg.Templates.IgnorePatterns,
		IncludeHidden:  cfg.Templates.IncludeHidden,
	})
	if err != nil {
		printErrorMsg(catalogHint(cfg.Paths.StubsDir, err))
		return nil, err
	}
	return cat, nil
}

// catalogHint tells the user how to fix a failed catalog build.
func catalogHint(stubsDir string, err error) string {
	switch {
	case errors.Is(err, catalog.ErrMalformedIdentifier):
		name := stubsDir
		var stubErr *model.StubError
		if errors.As(err, &stubErr) && stubErr.Path != "" {
			name = filepath.Base(stubErr.Path)
		}
		return fmt.Sprintf("Rename or remove %s: stub file names must contain %q.", name, model.StubMarker)
	case errors.Is(err, catalog.ErrNotDirectory):
		return fmt.Sprintf("%s is a file. Point --stubs at the folder holding your stub files.", stubsDir)
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, catalog.ErrNoStubs):
		return fmt.Sprintf("Please create a %s folder, and place at least 1 file inside.", stubsDir)
	default:
		return fmt.Sprintf("Could not read %s. Check that the folder and its files are readable.", stubsDir)
	}
}

func loadUsers(cfg *config.Config) ([]model.User, error) {
	path, err := config.ExpandPath(cfg.Paths.UsersFile)
	if err != nil {
		return nil, model.NewConfigurationError("invalid user list path", cfg.Paths.UsersFile, err)
	}

	list, err := users.Load(path)
	if err != nil {
		printErrorMsg("Please create " + cfg.Paths.UsersFile + " with one full name per line.")
		return nil, err
	}
	return list, nil
}

// RunSession runs one interactive session reading from in and writing to out.
func RunSession(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	userList, err := loadUsers(cfg)
	if err != nil {
		return err
	}

	workDir, err := config.ExpandPath(cfg.Paths.WorkDir)
	if err != nil {
		return model.NewConfigurationError("invalid working directory", cfg.Paths.WorkDir, err)
	}

	runner, err := app.NewRunner(app.Options{
		Catalog: cat,
		Users:   userList,
		Materializer: materializer.New(materializer.Options{
			WorkDir:      workDir,
			Placeholders: cfg.SubstitutionPlaceholders(),
			Overwrite:    cfg.Templates.Overwrite,
		}),
		Console: newTerminalConsole(in, out, cfg.Output.ClearScreen),
	})
	if err != nil {
		return err
	}

	return runner.Run(ctx)
}
