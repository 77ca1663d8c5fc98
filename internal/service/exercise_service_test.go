package service

import (
	"fmt"
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExercise(f *fixture) *ExerciseService {
	return NewExerciseService(f.modules, f.lessons, f.question, f.exercise)
}

func seedQuestions(t *testing.T, f *fixture, lessonID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		q := &model.Question{
			LessonID: lessonID,
			Text:     fmt.Sprintf("Question %d", i+1),
			OptionA:  "a", OptionB: "b", OptionC: "c", OptionD: "d",
			Answer: "a",
		}
		require.NoError(t, f.db.Create(q).Error)
	}
}

func TestPassed(t *testing.T) {
	// Threshold is 60% of the question count.
	assert.True(t, Passed(3, 5))
	assert.False(t, Passed(2, 5))
	assert.True(t, Passed(6, 10))
	assert.False(t, Passed(5, 10))
	assert.True(t, Passed(2, 3)) // 2 >= 1.8
	assert.False(t, Passed(1, 3))
	assert.True(t, Passed(1, 1))
	assert.False(t, Passed(0, 1))
}

func TestSubmitResult_FirstAttempt(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "mira")
	module := f.createModule(t, "Fractions of shapes")
	lesson := f.createLesson(t, module.ID, "Halves", 1)
	seedQuestions(t, f, lesson.ID, 5)

	svc := newExercise(f)

	result, err := svc.SubmitResult(user.ID, module.ID, lesson.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 1, result.Attempt)
	assert.True(t, result.IsPassed)
}

func TestSubmitResult_RetryRecomputesPass(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "teo")
	module := f.createModule(t, "Coordinates")
	lesson := f.createLesson(t, module.ID, "Plotting", 1)
	seedQuestions(t, f, lesson.ID, 5)

	svc := newExercise(f)

	first, err := svc.SubmitResult(user.ID, module.ID, lesson.ID, 2)
	require.NoError(t, err)
	assert.False(t, first.IsPassed)

	// A failing retry overwrites the row and stays failed.
	retry, err := svc.SubmitResult(user.ID, module.ID, lesson.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, retry.Score)
	assert.False(t, retry.IsPassed)
	assert.Equal(t, 1, retry.Attempt)

	// A passing retry flips the flag on the same row.
	retry, err = svc.SubmitResult(user.ID, module.ID, lesson.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, retry.Score)
	assert.True(t, retry.IsPassed)

	var rows int64
	require.NoError(t, f.db.Model(&model.ExerciseResult{}).
		Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).
		Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestSubmitResult_PassedIsFrozen(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "nina")
	module := f.createModule(t, "Transformations")
	lesson := f.createLesson(t, module.ID, "Rotation", 1)
	seedQuestions(t, f, lesson.ID, 5)

	svc := newExercise(f)

	passed, err := svc.SubmitResult(user.ID, module.ID, lesson.ID, 5)
	require.NoError(t, err)
	require.True(t, passed.IsPassed)

	// A later, worse score must not touch the stored result.
	after, err := svc.SubmitResult(user.ID, module.ID, lesson.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, after.Score)
	assert.True(t, after.IsPassed)

	stored, err := svc.LatestResult(user.ID, module.ID, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Score)
	assert.True(t, stored.IsPassed)
}

func TestSubmitResult_NoQuestions(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "bea")
	module := f.createModule(t, "Proofs")
	lesson := f.createLesson(t, module.ID, "Congruence", 1)

	_, err := newExercise(f).SubmitResult(user.ID, module.ID, lesson.ID, 0)
	assert.ErrorIs(t, err, util.ErrNoQuestions)
}

func TestLatestResult_NotFound(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "gil")
	module := f.createModule(t, "Scale")
	lesson := f.createLesson(t, module.ID, "Similar shapes", 1)

	_, err := newExercise(f).LatestResult(user.ID, module.ID, lesson.ID)
	assert.ErrorIs(t, err, util.ErrResultNotFound)

	_, err = newExercise(f).LatestResult(user.ID, module.ID, 999)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}
