package data

import (
	"database/sql"

	"github.com/go-kratos/kratos/v2/log"
	_ "github.com/lib/pq"

	"github.com/iWorld-y/trip_planner/app/gateway/internal/conf"
	"github.com/iWorld-y/trip_planner/app/trip_planner/pkg/storage"
)

type Data struct {
	store storage.Store
}

// NewData 配置了数据库时使用 PostgreSQL，否则退化为内存存储
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	var store storage.Store
	if c != nil && c.Database != nil && c.Database.Source != "" {
		driver := c.Database.Driver
		if driver == "" {
			driver = "postgres"
		}
		db, err := sql.Open(driver, c.Database.Source)
		if err != nil {
			return nil, nil, err
		}
		pg, err := storage.NewPostgresWithDB(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		store = pg
	} else {
		helper.Warn("no database configured, trips are kept in memory")
		store = storage.NewMemory()
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		store.Close()
	}
	return &Data{store: store}, cleanup, nil
}
