package orm

import (
	"log"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/pescuma/cellar/lib/consoles"
	"github.com/pescuma/cellar/lib/model"
	"github.com/pescuma/cellar/lib/storages"
)

type gormStorage struct {
	mutex   sync.RWMutex
	db      *gorm.DB
	console consoles.Console

	config *map[string]string

	sqlConfigs    map[string]*sqlConfig
	sqlVenueAreas map[string]*sqlVenueArea
}

func NewGormStorage(d gorm.Dialector, console consoles.Console) (storages.Storage, error) {
	l := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(d, &gorm.Config{
		NamingStrategy: &NamingStrategy{schema.NamingStrategy{IdentifierMaxLength: 64}},
		Logger:         l,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if d.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}

		// sqlite has a single writer, and each :memory: connection is a new database
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(
		&sqlConfig{},
		&sqlVenueArea{},
	)
	if err != nil {
		return nil, err
	}

	return &gormStorage{
		db:            db,
		console:       console,
		sqlConfigs:    map[string]*sqlConfig{},
		sqlVenueAreas: map[string]*sqlVenueArea{},
	}, nil
}

func (s *gormStorage) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func createCache[T sqlTable](rows []T) map[string]T {
	return lo.Associate(rows, func(i T) (string, T) {
		return i.CacheKey(), i
	})
}

func (s *gormStorage) LoadVenueAreas() (*model.VenueAreas, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.console.Printf("Loading venue areas...\n")

	var rows []*sqlVenueArea
	err := s.db.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := model.NewVenueAreas()
	for _, row := range rows {
		area, err := row.ToModel()
		if err != nil {
			return nil, errors.Wrapf(err, "error loading venue area %v", row.ID)
		}

		result.Add(area)
	}

	s.sqlVenueAreas = createCache(rows)

	return result, nil
}

func (s *gormStorage) LoadVenueArea(id model.UUID) (*model.VenueArea, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var row sqlVenueArea
	err := s.db.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(storages.ErrNotFound, "id %v", id)
	} else if err != nil {
		return nil, err
	}

	result, err := row.ToModel()
	if err != nil {
		return nil, errors.Wrapf(err, "error loading venue area %v", id)
	}

	s.sqlVenueAreas[row.CacheKey()] = &row

	return result, nil
}

// WriteVenueArea inserts or updates the whole aggregate. Updates only succeed
// when the row still has the version this storage last read or wrote, so two
// writers that loaded the same version can not overwrite each other.
func (s *gormStorage) WriteVenueArea(area *model.VenueArea) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sa := newSqlVenueArea(area)

	old, ok := s.sqlVenueAreas[sa.CacheKey()]
	if ok {
		sa.Version = old.Version
		sa.CreatedAt = old.CreatedAt
		sa.UpdatedAt = old.UpdatedAt

		if reflect.DeepEqual(sa, old) {
			return nil
		}
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc: func() time.Time { return now },
	})

	if !ok {
		sa.Version = 1

		err := db.Create(sa).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrapf(storages.ErrConcurrentUpdate, "id %v", sa.ID)
		} else if err != nil {
			return err
		}

	} else {
		sa.Version = old.Version + 1

		r := db.Model(&sqlVenueArea{}).
			Where("id = ? AND version = ?", sa.ID, old.Version).
			Select("*").
			Updates(sa)
		if r.Error != nil {
			return r.Error
		}
		if r.RowsAffected == 0 {
			return errors.Wrapf(storages.ErrConcurrentUpdate, "id %v", sa.ID)
		}
	}

	s.sqlVenueAreas[sa.CacheKey()] = sa

	return nil
}

func (s *gormStorage) DeleteVenueArea(id model.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	r := s.db.Where("id = ?", id).Delete(&sqlVenueArea{})
	if r.Error != nil {
		return r.Error
	}
	if r.RowsAffected == 0 {
		return errors.Wrapf(storages.ErrNotFound, "id %v", id)
	}

	delete(s.sqlVenueAreas, string(id))

	return nil
}

func (s *gormStorage) QueryVenueAreas(venueID string) ([]*storages.VenueAreaSummary, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var rows []*sqlVenueArea

	q := s.db.Select("id", "venue_id", "area_name", "storage_space_layout", "updated_at")
	if venueID != "" {
		q = q.Where("venue_id = ?", venueID)
	}

	err := q.Order("venue_id, area_name, id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row *sqlVenueArea, _ int) *storages.VenueAreaSummary {
		return row.ToSummary()
	}), nil
}

func (s *gormStorage) LoadConfig() (*map[string]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.config != nil {
		return s.config, nil
	}

	s.console.Printf("Loading config...\n")

	result := map[string]string{}

	var sqlConfigs []*sqlConfig
	err := s.db.Find(&sqlConfigs).Error
	if err != nil {
		return nil, err
	}

	s.sqlConfigs = createCache(sqlConfigs)

	for _, sc := range sqlConfigs {
		result[sc.Key] = sc.Value
	}

	s.config = &result
	return &result, nil
}

func (s *gormStorage) WriteConfig() error {
	if s.config == nil {
		return nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	var sqlConfigs []*sqlConfig
	for k, v := range *s.config {
		sc := newSqlConfig(k, v)
		if prepareChange(&s.sqlConfigs, sc) {
			sqlConfigs = append(sqlConfigs, sc)
		}
	}

	var deleted []string
	for k := range s.sqlConfigs {
		if _, ok := (*s.config)[k]; !ok {
			deleted = append(deleted, k)
		}
	}

	now := time.Now().Local()
	db := s.db.Session(&gorm.Session{
		NowFunc:         func() time.Time { return now },
		CreateBatchSize: 300,
	})

	if len(sqlConfigs) > 0 {
		err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sqlConfigs).Error
		if err != nil {
			return err
		}
	}

	if len(deleted) > 0 {
		rows := lo.Map(deleted, func(k string, _ int) *sqlConfig { return &sqlConfig{Key: k} })

		err := db.Delete(&rows).Error
		if err != nil {
			return err
		}

		for _, k := range deleted {
			delete(s.sqlConfigs, k)
		}
	}

	return nil
}

func prepareChange[T sqlTable](byID *map[string]T, n T) bool {
	o, ok := (*byID)[n.CacheKey()]
	if ok {
		ro := reflect.Indirect(reflect.ValueOf(o))
		rn := reflect.Indirect(reflect.ValueOf(n))

		rn.FieldByName("CreatedAt").Set(ro.FieldByName("CreatedAt"))
		rn.FieldByName("UpdatedAt").Set(ro.FieldByName("UpdatedAt"))
	}

	if reflect.DeepEqual(n, o) {
		return false
	} else {
		(*byID)[n.CacheKey()] = n
		return true
	}
}
