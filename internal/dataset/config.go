package dataset

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ChocolateDave/ml-notebook/internal/appconf"
)

const (
	// DefaultArchiveURL is the UCI repository location of the Polish
	// companies bankruptcy data archive.
	DefaultArchiveURL = "https://archive.ics.uci.edu/ml/machine-learning-databases/00365/data.zip"

	// ArchiveName is the file name the archive is stored under inside the
	// data directory.
	ArchiveName = "data.zip"

	// MinHorizon and MaxHorizon bound the forecasting horizons (in years)
	// covered by the archive members.
	MinHorizon = 1
	MaxHorizon = 5
)

// Config holds the settings for provisioning and loading the dataset.
type Config struct {
	ArchiveURL string // URL or local file path of the dataset archive
	DataDir    string // local cache directory for the archive and its members
	DBPath     string // SQLite path for the sample import cache
	Horizons   []int  // forecasting horizons to load; empty means all
	Env        appconf.Environment
	Verbose    bool
	Logger     *slog.Logger
}

// ArchivePath returns the location of the cached archive inside the data directory.
func (c Config) ArchivePath() string {
	return filepath.Join(c.DataDir, ArchiveName)
}

func (c Config) horizons() []int {
	if len(c.Horizons) > 0 {
		return c.Horizons
	}
	all := make([]int, 0, MaxHorizon-MinHorizon+1)
	for h := MinHorizon; h <= MaxHorizon; h++ {
		all = append(all, h)
	}
	return all
}

func (c Config) memberNames() []string {
	horizons := c.horizons()
	names := make([]string, 0, len(horizons))
	for _, h := range horizons {
		names = append(names, MemberName(h))
	}
	return names
}

// MemberName returns the archive member holding samples labeled with
// bankruptcy status the given number of years ahead.
func MemberName(horizon int) string {
	return fmt.Sprintf("%dyear.arff", horizon)
}
