package account

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment holds the credentials and working directories for the
// authenticated flows. Credentials only ever come from the environment,
// never from config files.
type Environment struct {
	Email    string `envconfig:"DK_EMAIL" required:"true"`
	Password string `envconfig:"DK_PASSWORD" required:"true"`
	Username string `envconfig:"DK_USERNAME" required:"true"`

	// where the browser drops files
	DownloadDirectory string `envconfig:"DOWNLOAD_DIRECTORY" required:"true"`
	// working root for csv processing
	CSVDirectory string `envconfig:"CSV_DIRECTORY" required:"true"`

	ChromePath string `envconfig:"CHROME_PATH"`
	Headless   bool   `envconfig:"CHROME_HEADLESS" default:"true"`
}

// EnvironmentFromEnv loads a .env file if one exists, then reads the
// DK_* variables.
func EnvironmentFromEnv() (Environment, error) {
	_ = godotenv.Load()

	var env Environment
	err := envconfig.Process("", &env)
	if err != nil {
		return Environment{}, fmt.Errorf("read account environment: %w", err)
	}
	return env, nil
}

// Standings exports accumulate under CSVDirectory and are moved to
// imported/ or failed/ once processed.
func (e Environment) StandingsDir() string {
	return e.CSVDirectory
}

func (e Environment) ImportedDir() string {
	return filepath.Join(e.CSVDirectory, "imported")
}

func (e Environment) FailedDir() string {
	return filepath.Join(e.CSVDirectory, "failed")
}

// EnsureDirectories creates the working tree. The download directory
// must already exist since the browser profile points at it.
func (e Environment) EnsureDirectories() error {
	if _, err := os.Stat(e.DownloadDirectory); err != nil {
		return fmt.Errorf("download directory: %w", err)
	}
	for _, dir := range []string{e.StandingsDir(), e.ImportedDir(), e.FailedDir()} {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
