package config

// Config represents the stubgen configuration.
type Config struct {
	// Paths locates the stub directory, user list and working directory.
	Paths PathsConfig `json:"paths"`
	// Templates configures stub scanning and generation.
	Templates TemplateConfig `json:"templates"`
	// Placeholders are the literals replaced in stub content.
	Placeholders PlaceholderConfig `json:"placeholders"`
	// Output configures console output.
	Output OutputConfig `json:"output"`
}

// PathsConfig represents file locations.
type PathsConfig struct {
	// StubsDir is the directory holding the stub templates.
	StubsDir string `json:"stubs_dir" env:"STUBGEN_STUBS_DIR"`
	// UsersFile is the user list, one full name per line.
	UsersFile string `json:"users_file" env:"STUBGEN_USERS_FILE"`
	// WorkDir is where files are generated and where destination browsing starts.
	WorkDir string `json:"work_dir" env:"STUBGEN_WORK_DIR"`
}

// TemplateConfig represents stub processing settings.
type TemplateConfig struct {
	// IgnorePatterns are glob patterns for files in StubsDir that are not stubs.
	IgnorePatterns []string `json:"ignore_patterns" env:"STUBGEN_IGNORE_PATTERNS" envSeparator:","`
	// IncludeHidden lists dotfiles in StubsDir as stubs.
	IncludeHidden bool `json:"include_hidden" env:"STUBGEN_INCLUDE_HIDDEN"`
	// Overwrite replaces existing generated files in WorkDir.
	Overwrite bool `json:"overwrite" env:"STUBGEN_OVERWRITE"`
}

// PlaceholderConfig represents the placeholder literals.
type PlaceholderConfig struct {
	// Author is replaced by the selected user's full name.
	Author string `json:"author"`
	// Description is replaced by the description typed by the user.
	Description string `json:"description"`
	// Date is replaced by the current date.
	Date string `json:"date"`
	// DateFormat is the Go time layout used for Date.
	DateFormat string `json:"date_format" env:"STUBGEN_DATE_FORMAT"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// NoColor disables colored terminal output.
	NoColor bool `json:"no_color" env:"STUBGEN_NO_COLOR"`
	// ClearScreen clears the terminal between prompts.
	ClearScreen bool `json:"clear_screen"`
}
