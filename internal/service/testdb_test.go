package service

import (
	"fmt"
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/repository"
	"geometriks_backend/pkg/database"
	"geometriks_backend/pkg/logger"
	"strings"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Log = zap.NewNop()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixture struct {
	db       *gorm.DB
	users    *repository.UserRepository
	modules  *repository.ModuleRepository
	lessons  *repository.LessonRepository
	chapters *repository.ChapterRepository
	question *repository.QuestionRepository
	prefs    *repository.PreferenceRepository
	progress *repository.ProgressRepository
	exercise *repository.ExerciseRepository
	certs    *repository.CertificateRepository
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	return &fixture{
		db:       db,
		users:    repository.NewUserRepository(db),
		modules:  repository.NewModuleRepository(db),
		lessons:  repository.NewLessonRepository(db),
		chapters: repository.NewChapterRepository(db),
		question: repository.NewQuestionRepository(db),
		prefs:    repository.NewPreferenceRepository(db),
		progress: repository.NewProgressRepository(db),
		exercise: repository.NewExerciseRepository(db),
		certs:    repository.NewCertificateRepository(db),
	}
}

func (f *fixture) createUser(t *testing.T, name string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    name + "@example.com",
		Password: "hashed",
		Role:     model.Student,
	}
	if err := f.db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func (f *fixture) createModule(t *testing.T, title string) *model.Module {
	t.Helper()
	module := &model.Module{Title: title, IsPublished: true}
	if err := f.db.Create(module).Error; err != nil {
		t.Fatalf("create module: %v", err)
	}
	return module
}

func (f *fixture) createLesson(t *testing.T, moduleID uint, title string, order int) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{ModuleID: moduleID, Title: title, Order: order, IsPublished: true}
	if err := f.db.Create(lesson).Error; err != nil {
		t.Fatalf("create lesson: %v", err)
	}
	return lesson
}

func (f *fixture) categoryID(t *testing.T, name string) uint {
	t.Helper()
	var cat model.Category
	if err := f.db.Where("name = ?", name).First(&cat).Error; err != nil {
		t.Fatalf("category %q: %v", name, err)
	}
	return cat.ID
}

func (f *fixture) createChapter(t *testing.T, lessonID uint, title, style string) *model.Chapter {
	t.Helper()
	chapter := &model.Chapter{
		LessonID:    lessonID,
		CategoryID:  f.categoryID(t, style),
		Title:       title,
		IsPublished: true,
	}
	if err := f.db.Create(chapter).Error; err != nil {
		t.Fatalf("create chapter: %v", err)
	}
	return chapter
}

func (f *fixture) setPreferences(t *testing.T, userID uint, primary, secondary string) {
	t.Helper()
	if _, err := f.prefs.Upsert(userID, primary, secondary); err != nil {
		t.Fatalf("set preferences: %v", err)
	}
}

func (f *fixture) userPoints(t *testing.T, userID uint) int {
	t.Helper()
	user, err := f.users.FindByID(userID)
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	return user.Points
}
