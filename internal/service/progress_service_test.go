package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgress(f *fixture) *ProgressService {
	return NewProgressService(f.modules, f.lessons, f.chapters, f.progress, f.db)
}

// seedLearningPath creates a published module with two lessons of three
// chapters each, sets the user's survey, and runs the selector so chapter
// orders exist for both lessons.
func seedLearningPath(t *testing.T, f *fixture) (*model.User, *model.Module, []*model.Lesson) {
	t.Helper()
	user := f.createUser(t, "sami")
	module := f.createModule(t, "Perimeter")
	first := f.createLesson(t, module.ID, "Squares", 1)
	second := f.createLesson(t, module.ID, "Triangles", 2)
	for _, lesson := range []*model.Lesson{first, second} {
		f.createChapter(t, lesson.ID, "Intro", model.StyleVisual)
		f.createChapter(t, lesson.ID, "Worked example", model.StyleAuditory)
		f.createChapter(t, lesson.ID, "Summary", model.StyleReadWrite)
	}
	f.setPreferences(t, user.ID, model.StyleVisual, model.StyleAuditory)

	_, err := newSelector(f).ChaptersForModule(user.ID, module.ID)
	require.NoError(t, err)
	return user, module, []*model.Lesson{first, second}
}

func completeAllChapters(t *testing.T, f *fixture, svc *ProgressService, userID, moduleID, lessonID uint) {
	t.Helper()
	orders, err := f.progress.ChapterOrdersByLesson(userID, lessonID)
	require.NoError(t, err)
	require.NotEmpty(t, orders)
	for _, o := range orders {
		_, err := svc.CompleteChapter(userID, moduleID, lessonID, o.ChapterID, true)
		require.NoError(t, err)
	}
}

func TestUnlockFirstLesson(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "lea")
	module := f.createModule(t, "Volume")
	first := f.createLesson(t, module.ID, "Cubes", 1)
	f.createLesson(t, module.ID, "Prisms", 2)

	svc := newProgress(f)

	res, err := svc.UnlockFirstLesson(user.ID, module.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, res.Lesson.ID)
	assert.False(t, res.AlreadyUnlocked)

	progress, err := f.progress.FindLessonProgress(user.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LessonUnlocked, progress.Status)

	// Joining again is a no-op.
	res, err = svc.UnlockFirstLesson(user.ID, module.ID)
	require.NoError(t, err)
	assert.True(t, res.AlreadyUnlocked)
}

func TestUnlockFirstLesson_NoPublishedLesson(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "lea")
	module := f.createModule(t, "Empty")
	draft := f.createLesson(t, module.ID, "Draft", 1)
	draft.IsPublished = false
	require.NoError(t, f.db.Save(draft).Error)

	_, err := newProgress(f).UnlockFirstLesson(user.ID, module.ID)
	assert.ErrorIs(t, err, util.ErrNoPublishedLesson)
}

func TestCompleteLesson_RequiresAllChapters(t *testing.T) {
	f := newFixture(t)
	user, module, lessons := seedLearningPath(t, f)
	svc := newProgress(f)

	orders, err := f.progress.ChapterOrdersByLesson(user.ID, lessons[0].ID)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	// Two of three chapters done is not enough.
	for _, o := range orders[:2] {
		_, err := svc.CompleteChapter(user.ID, module.ID, lessons[0].ID, o.ChapterID, true)
		require.NoError(t, err)
	}

	_, err = svc.CompleteLesson(user.ID, module.ID, lessons[0].ID)
	assert.ErrorIs(t, err, util.ErrChaptersIncomplete)
	assert.Equal(t, 0, f.userPoints(t, user.ID))

	progress, err := f.progress.FindLessonProgress(user.ID, lessons[0].ID)
	if err == nil {
		assert.NotEqual(t, model.LessonCompleted, progress.Status)
	}
}

func TestCompleteLesson_NoOrderedChapters(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "omar")
	module := f.createModule(t, "Lines")
	lesson := f.createLesson(t, module.ID, "Parallel", 1)

	_, err := newProgress(f).CompleteLesson(user.ID, module.ID, lesson.ID)
	assert.ErrorIs(t, err, util.ErrChaptersIncomplete)
}

func TestCompleteLesson_AwardsOnceAndUnlocksNext(t *testing.T) {
	f := newFixture(t)
	user, module, lessons := seedLearningPath(t, f)
	svc := newProgress(f)

	completeAllChapters(t, f, svc, user.ID, module.ID, lessons[0].ID)

	res, err := svc.CompleteLesson(user.ID, module.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.False(t, res.AlreadyCompleted)
	assert.Equal(t, util.LessonCompletionPoints, res.PointsAwarded)
	require.NotNil(t, res.NextLesson)
	assert.Equal(t, lessons[1].ID, res.NextLesson.ID)
	assert.Equal(t, util.LessonCompletionPoints, f.userPoints(t, user.ID))

	next, err := f.progress.FindLessonProgress(user.ID, lessons[1].ID)
	require.NoError(t, err)
	assert.Equal(t, model.LessonUnlocked, next.Status)

	// Submitting completion again must not award a second time.
	res, err = svc.CompleteLesson(user.ID, module.ID, lessons[0].ID)
	require.NoError(t, err)
	assert.True(t, res.AlreadyCompleted)
	assert.Equal(t, 0, res.PointsAwarded)
	assert.Equal(t, util.LessonCompletionPoints, f.userPoints(t, user.ID))
}

func TestCompleteLesson_LastLessonHasNoNext(t *testing.T) {
	f := newFixture(t)
	user, module, lessons := seedLearningPath(t, f)
	svc := newProgress(f)

	for _, lesson := range lessons {
		completeAllChapters(t, f, svc, user.ID, module.ID, lesson.ID)
	}
	_, err := svc.CompleteLesson(user.ID, module.ID, lessons[0].ID)
	require.NoError(t, err)

	res, err := svc.CompleteLesson(user.ID, module.ID, lessons[1].ID)
	require.NoError(t, err)
	assert.Nil(t, res.NextLesson)
	assert.Equal(t, 2*util.LessonCompletionPoints, f.userPoints(t, user.ID))
}

func TestCompleteModule(t *testing.T) {
	f := newFixture(t)
	user, module, lessons := seedLearningPath(t, f)
	svc := newProgress(f)

	completeAllChapters(t, f, svc, user.ID, module.ID, lessons[0].ID)
	_, err := svc.CompleteLesson(user.ID, module.ID, lessons[0].ID)
	require.NoError(t, err)

	// One lesson still open.
	res, err := svc.CompleteModule(user.ID, module.ID)
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.EqualValues(t, 1, res.LessonsRemaining)

	completeAllChapters(t, f, svc, user.ID, module.ID, lessons[1].ID)
	_, err = svc.CompleteLesson(user.ID, module.ID, lessons[1].ID)
	require.NoError(t, err)

	res, err = svc.CompleteModule(user.ID, module.ID)
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.False(t, res.AlreadyMarked)

	res, err = svc.CompleteModule(user.ID, module.ID)
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.True(t, res.AlreadyMarked)

	var rows int64
	require.NoError(t, f.db.Model(&model.CompletedModule{}).
		Where("user_id = ? AND module_id = ?", user.ID, module.ID).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestCompleteModule_WithoutSelection(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "ivo")
	module := f.createModule(t, "Angles")
	f.createLesson(t, module.ID, "Obtuse", 1)

	_, err := newProgress(f).CompleteModule(user.ID, module.ID)
	assert.ErrorIs(t, err, util.ErrNoLessonsOrdered)
}

func TestCompleteChapter_ValidatesChain(t *testing.T) {
	f := newFixture(t)
	user, module, lessons := seedLearningPath(t, f)
	svc := newProgress(f)

	orders, err := f.progress.ChapterOrdersByLesson(user.ID, lessons[0].ID)
	require.NoError(t, err)

	_, err = svc.CompleteChapter(user.ID, 999, lessons[0].ID, orders[0].ChapterID, true)
	assert.ErrorIs(t, err, util.ErrModuleNotFound)

	_, err = svc.CompleteChapter(user.ID, module.ID, 999, orders[0].ChapterID, true)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)

	_, err = svc.CompleteChapter(user.ID, module.ID, lessons[0].ID, 999, true)
	assert.ErrorIs(t, err, util.ErrChapterNotFound)
}

func TestLessonsWithStatus(t *testing.T) {
	f := newFixture(t)
	user, module, lessons := seedLearningPath(t, f)
	svc := newProgress(f)

	_, err := svc.UnlockFirstLesson(user.ID, module.ID)
	require.NoError(t, err)

	annotated, err := svc.LessonsWithStatus(user.ID, module.ID)
	require.NoError(t, err)
	require.Len(t, annotated, 2)

	assert.Equal(t, lessons[0].ID, annotated[0].ID)
	assert.Equal(t, model.LessonUnlocked, annotated[0].Status)
	assert.False(t, annotated[0].IsLocked)
	assert.Equal(t, model.LessonLocked, annotated[1].Status)
	assert.True(t, annotated[1].IsLocked)
}
