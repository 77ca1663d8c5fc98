package database

import (
	"fmt"
	"geometriks_backend/internal/config"
	"geometriks_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.School{},
		&model.User{},
		&model.Category{},
		&model.StylePreference{},
		&model.Module{},
		&model.Lesson{},
		&model.Chapter{},
		&model.Question{},
		&model.ChapterOrder{},
		&model.ChapterProgress{},
		&model.LessonProgress{},
		&model.CompletedModule{},
		&model.ExerciseResult{},
		&model.Certificate{},
	)
	if err != nil {
		return err
	}

	// The three learning-style categories are fixed; seed them when empty so
	// authoring and the style survey have something to reference.
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count == 0 {
		for _, name := range model.StyleLabels {
			db.Create(&model.Category{Name: name})
		}
	}

	return nil
}
