package config

// File Permissions
const (
	// PermDirectory is the file permission for directories
	PermDirectory = 0755

	// PermConfigFile is the file permission for config files
	PermConfigFile = 0644
)

// Path Constants
const (
	// LocalConfigDir is the base directory for framescout configuration
	LocalConfigDir = ".framescout"

	// LocalConfigFile is the filename for the main config
	LocalConfigFile = "config.json"
)
