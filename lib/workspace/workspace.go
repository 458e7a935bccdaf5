package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/pescuma/cellar/lib/consoles"
	"github.com/pescuma/cellar/lib/filters"
	"github.com/pescuma/cellar/lib/storages"
	"github.com/pescuma/cellar/lib/storages/orm"
	"github.com/pescuma/cellar/lib/utils"
)

type Workspace struct {
	console consoles.Console
	storage storages.Storage
}

func NewWorkspace(file string) (*Workspace, error) {
	return NewWorkspaceWithConsole(file, consoles.NewStdOutConsole())
}

// NewWorkspaceWithConsole opens the storage described by file: a sqlite file
// ending in .sqlite, :memory:, or a postgres:// or mysql:// URL. An empty file
// uses ./.cellar when it exists and ~/.cellar otherwise.
func NewWorkspaceWithConsole(file string, console consoles.Console) (*Workspace, error) {
	if file == "" {
		if _, err := os.Stat("./.cellar"); err == nil {
			file = "./.cellar/cellar.sqlite"
		} else {
			file = "~/.cellar/cellar.sqlite"
		}
	}

	var dialector gorm.Dialector
	var err error
	switch {
	case file == ":memory:":
		dialector = orm.WithSqliteInMemory()

	case strings.HasPrefix(file, "postgres://"), strings.HasPrefix(file, "postgresql://"):
		dialector = orm.WithPostgres(file)

	case strings.HasPrefix(file, "mysql://"):
		dialector, err = orm.WithMySql(file)
		if err != nil {
			return nil, err
		}

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(console, file)
		if err != nil {
			return nil, err
		}

		dialector = orm.WithSqlite(file)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}

	storage, err := orm.NewGormStorage(dialector, console)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console: console,
		storage: storage,
	}, nil
}

func createWorkspaceDir(console consoles.Console, file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		console.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

// ListVenueAreas returns the areas of venueID (all venues when empty) whose
// names match the filter rules.
func (w *Workspace) ListVenueAreas(venueID string, nameRules []string) ([]*storages.VenueAreaSummary, error) {
	filter, err := filters.ParseFilter(nameRules)
	if err != nil {
		return nil, err
	}

	summaries, err := w.storage.QueryVenueAreas(venueID)
	if err != nil {
		return nil, err
	}

	return lo.Filter(summaries, func(s *storages.VenueAreaSummary, _ int) bool {
		return filters.Matches(filter, s.AreaName)
	}), nil
}

const DefaultVenueConfig = "venue.default"

func (w *Workspace) SetConfig(key string, value string) error {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return err
	}

	if value == "" {
		delete(*cfg, key)
	} else {
		(*cfg)[key] = value
	}

	return w.storage.WriteConfig()
}

func (w *Workspace) GetConfig(key string) (string, bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return "", false, err
	}

	v, ok := (*cfg)[key]
	return v, ok, nil
}

var ErrAmbiguous = errors.New("more than one venue area matches")
