package mysql

import (
	"errors"
	"fmt"
	"time"

	"foodswipe-order-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
}

type database struct {
	db *sqlx.DB
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		v.GetString("db.username"),
		v.GetString("db.password"),
		v.GetString("db.host"),
		v.GetInt("db.port"),
		v.GetString("db.name"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		logger.Error("mysql", fmt.Sprintf("failed to connect: %v", err), "InitConnection", "")
		return &database{}, err
	}

	db.SetMaxOpenConns(v.GetInt("db.pool.max_open"))
	db.SetMaxIdleConns(v.GetInt("db.pool.max_idle"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("db.pool.lifetime_minutes")) * time.Minute)

	logger.Info("mysql", "database connection established", "InitConnection", v.GetString("db.host"))
	return &database{db: db}, nil
}

func (d *database) GetDB() (*sqlx.DB, error) {
	if d.db == nil {
		return nil, errors.New("database connection is not initialized")
	}
	return d.db, nil
}
