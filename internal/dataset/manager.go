package dataset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ChocolateDave/ml-notebook/datasetdb"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Manager owns the provisioned bankruptcy data and provides methods to access it
type Manager struct {
	source      string
	isLocalFile bool
	tables      map[int]*Table
	DB          *datasetdb.Client
	lastUpdated time.Time
	config      Config
}

// InitManager provisions the dataset from the configured source, parses every
// member file and imports the samples into the SQLite cache.
// The source can be either a URL or a local file path.
func InitManager(ctx context.Context, config Config) (*Manager, error) {
	if config.ArchiveURL == "" {
		config.ArchiveURL = DefaultArchiveURL
	}

	if err := Provision(ctx, config); err != nil {
		return nil, err
	}

	manager := &Manager{
		source:      config.ArchiveURL,
		isLocalFile: IsLocalSource(config.ArchiveURL),
		tables:      make(map[int]*Table),
		config:      config,
	}

	for _, h := range config.horizons() {
		table, err := LoadTable(filepath.Join(config.DataDir, MemberName(h)))
		if err != nil {
			return nil, err
		}
		manager.tables[h] = table
	}
	manager.lastUpdated = time.Now()

	db, err := buildDatasetDB(ctx, config, manager.tables)
	if err != nil {
		return nil, fmt.Errorf("error building dataset database: %w", err)
	}
	manager.DB = db

	return manager, nil
}

func buildDatasetDB(ctx context.Context, config Config, tables map[int]*Table) (*datasetdb.Client, error) {
	dbConfig := datasetdb.NewConfig(config.DBPath, config.Env, config.Verbose)
	client, err := datasetdb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset database client: %w", err)
	}

	hash, err := archiveHash(config.ArchivePath())
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	for _, h := range sortedHorizons(tables) {
		table := tables[h]
		err := client.ImportSamples(ctx, MemberName(h), hash, h, table.Features, table.Labels)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
	}

	return client, nil
}

// archiveHash returns the hex-encoded SHA-256 digest of the cached archive,
// used by the database layer to skip re-imports of unchanged content.
func archiveHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening archive for hashing: %w", err)
	}
	defer f.Close() // nolint

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("error hashing archive: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func sortedHorizons(tables map[int]*Table) []int {
	horizons := make([]int, 0, len(tables))
	for h := range tables {
		horizons = append(horizons, h)
	}
	sort.Ints(horizons)
	return horizons
}

// Shutdown releases the manager's database resources.
func (manager *Manager) Shutdown() {
	if manager.DB != nil {
		_ = manager.DB.Close()
	}
}

// Horizons returns the loaded forecasting horizons in ascending order.
func (manager *Manager) Horizons() []int {
	return sortedHorizons(manager.tables)
}

// Table returns the parsed samples for the given forecasting horizon.
func (manager *Manager) Table(horizon int) (*Table, error) {
	table, ok := manager.tables[horizon]
	if !ok {
		return nil, fmt.Errorf("no table loaded for horizon %d", horizon)
	}
	return table, nil
}

func (manager *Manager) LastUpdated() time.Time {
	return manager.lastUpdated
}

func (manager *Manager) PrintStatistics() {
	fmt.Printf("Source: %s (Local File: %v)\n", manager.source, manager.isLocalFile)
	fmt.Printf("Last Updated: %s\n", manager.lastUpdated)
	for _, h := range manager.Horizons() {
		table := manager.tables[h]
		fmt.Printf("Horizon %d: %d samples, %d features, %d bankrupt\n",
			h, table.NumSamples(), table.NumFeatures(), table.BankruptCount())
	}
}
