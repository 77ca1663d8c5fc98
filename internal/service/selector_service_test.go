package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleTargets(t *testing.T) {
	cases := []struct {
		n, primary, secondary, tertiary int
	}{
		{0, 0, 0, 0},
		{1, 1, 0, 0},
		{3, 2, 1, 0},
		{7, 4, 2, 1},
		{10, 5, 3, 2},
		{15, 8, 5, 2},
		{20, 10, 6, 4},
	}
	for _, c := range cases {
		p, s, tt := styleTargets(c.n)
		assert.Equal(t, c.primary, p, "primary for n=%d", c.n)
		assert.Equal(t, c.secondary, s, "secondary for n=%d", c.n)
		assert.Equal(t, c.tertiary, tt, "tertiary for n=%d", c.n)
		assert.Equal(t, c.n, p+s+tt, "targets must sum to n=%d", c.n)
	}
}

func seedChapters(t *testing.T, f *fixture, lessonID uint, styles []string) []model.Chapter {
	t.Helper()
	out := make([]model.Chapter, len(styles))
	for i, style := range styles {
		ch := f.createChapter(t, lessonID, "Chapter", style)
		out[i] = *ch
	}
	return out
}

func TestSelectByStyle_QuotasAndTopUp(t *testing.T) {
	f := newFixture(t)
	module := f.createModule(t, "Triangles")
	lesson := f.createLesson(t, module.ID, "Basics", 1)

	// 5 Visual, 3 Read & Write, 2 Auditory.
	styles := []string{
		model.StyleVisual, model.StyleVisual, model.StyleVisual, model.StyleVisual, model.StyleVisual,
		model.StyleReadWrite, model.StyleReadWrite, model.StyleReadWrite,
		model.StyleAuditory, model.StyleAuditory,
	}
	chapters := seedChapters(t, f, lesson.ID, styles)
	loaded, err := f.chapters.ListEligibleByModule(module.ID)
	require.NoError(t, err)
	require.Len(t, loaded, len(chapters))

	// Primary Visual (quota 5, has 5), secondary Auditory (quota 3, has 2),
	// tertiary Read & Write (quota 2, has 3). The shortfall is topped up from
	// the leftover Read & Write chapter, so all 10 are selected.
	selected := selectByStyle(loaded, model.StyleVisual, model.StyleAuditory, model.StyleReadWrite)
	require.Len(t, selected, 10)

	counts := map[string]int{}
	for _, ch := range selected {
		require.NotNil(t, ch.Category)
		counts[ch.Category.Name]++
	}
	assert.Equal(t, 5, counts[model.StyleVisual])
	assert.Equal(t, 2, counts[model.StyleAuditory])
	assert.Equal(t, 3, counts[model.StyleReadWrite])

	// Primary chapters fill the head of the sequence.
	for i := 0; i < 5; i++ {
		assert.Equal(t, model.StyleVisual, selected[i].Category.Name, "position %d", i)
	}
	// Secondary bucket follows before the tertiary quota.
	assert.Equal(t, model.StyleAuditory, selected[5].Category.Name)
	assert.Equal(t, model.StyleAuditory, selected[6].Category.Name)

	seen := map[uint]bool{}
	for _, ch := range selected {
		assert.False(t, seen[ch.ID], "chapter %d selected twice", ch.ID)
		seen[ch.ID] = true
	}
}

func TestSelectByStyle_NoQuotaStealing(t *testing.T) {
	f := newFixture(t)
	module := f.createModule(t, "Circles")
	lesson := f.createLesson(t, module.ID, "Arcs", 1)

	// 12 Visual, 1 Auditory, 1 Read & Write. Targets for 14: 7/4/3. The
	// secondary bucket only has one member; the primary must not absorb the
	// shortfall before the top-up floor is reached.
	styles := make([]string, 0, 14)
	for i := 0; i < 12; i++ {
		styles = append(styles, model.StyleVisual)
	}
	styles = append(styles, model.StyleAuditory, model.StyleReadWrite)
	seedChapters(t, f, lesson.ID, styles)

	loaded, err := f.chapters.ListEligibleByModule(module.ID)
	require.NoError(t, err)

	selected := selectByStyle(loaded, model.StyleVisual, model.StyleAuditory, model.StyleReadWrite)
	// 7 primary + 1 secondary + 1 tertiary = 9, topped up to the floor of 10.
	require.Len(t, selected, 10)

	counts := map[string]int{}
	for _, ch := range selected {
		counts[ch.Category.Name]++
	}
	assert.Equal(t, 8, counts[model.StyleVisual])
	assert.Equal(t, 1, counts[model.StyleAuditory])
	assert.Equal(t, 1, counts[model.StyleReadWrite])
}

func newSelector(f *fixture) *SelectorService {
	return NewSelectorService(f.modules, f.chapters, f.prefs, f.progress)
}

func TestChaptersForModule_RequiresSurvey(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "nora")
	module := f.createModule(t, "Angles")
	lesson := f.createLesson(t, module.ID, "Acute", 1)
	seedChapters(t, f, lesson.ID, []string{model.StyleVisual, model.StyleAuditory})

	_, err := newSelector(f).ChaptersForModule(user.ID, module.ID)
	assert.ErrorIs(t, err, util.ErrPreferencesNotFound)
}

func TestChaptersForModule_UnknownModule(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "nora")

	_, err := newSelector(f).ChaptersForModule(user.ID, 999)
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestChaptersForModule_PersistsAndReplays(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "amir")
	module := f.createModule(t, "Polygons")
	lesson := f.createLesson(t, module.ID, "Quadrilaterals", 1)
	styles := []string{
		model.StyleVisual, model.StyleVisual, model.StyleVisual, model.StyleVisual, model.StyleVisual,
		model.StyleReadWrite, model.StyleReadWrite, model.StyleReadWrite,
		model.StyleAuditory, model.StyleAuditory,
	}
	seedChapters(t, f, lesson.ID, styles)
	f.setPreferences(t, user.ID, model.StyleVisual, model.StyleAuditory)

	svc := newSelector(f)

	first, err := svc.ChaptersForModule(user.ID, module.ID)
	require.NoError(t, err)
	require.Len(t, first, 10)
	for i, ch := range first {
		assert.Equal(t, i+1, ch.Order)
		assert.False(t, ch.IsCompleted)
	}

	// Publishing a new chapter afterwards must not disturb the stored
	// sequence.
	f.createChapter(t, lesson.ID, "Late addition", model.StyleVisual)

	second, err := svc.ChaptersForModule(user.ID, module.ID)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "position %d", i)
		assert.Equal(t, first[i].Order, second[i].Order, "position %d", i)
	}

	var orderRows int64
	require.NoError(t, f.db.Model(&model.ChapterOrder{}).
		Where("user_id = ?", user.ID).Count(&orderRows).Error)
	assert.EqualValues(t, 10, orderRows)
}

func TestChaptersForModule_IndependentPerUser(t *testing.T) {
	f := newFixture(t)
	visualFirst := f.createUser(t, "vera")
	auditoryFirst := f.createUser(t, "alon")
	module := f.createModule(t, "Symmetry")
	lesson := f.createLesson(t, module.ID, "Reflection", 1)
	seedChapters(t, f, lesson.ID, []string{
		model.StyleVisual, model.StyleVisual,
		model.StyleAuditory, model.StyleAuditory,
		model.StyleReadWrite,
	})
	f.setPreferences(t, visualFirst.ID, model.StyleVisual, model.StyleReadWrite)
	f.setPreferences(t, auditoryFirst.ID, model.StyleAuditory, model.StyleVisual)

	svc := newSelector(f)

	forVera, err := svc.ChaptersForModule(visualFirst.ID, module.ID)
	require.NoError(t, err)
	forAlon, err := svc.ChaptersForModule(auditoryFirst.ID, module.ID)
	require.NoError(t, err)

	require.NotEmpty(t, forVera)
	require.NotEmpty(t, forAlon)
	assert.Equal(t, model.StyleVisual, forVera[0].Category.Name)
	assert.Equal(t, model.StyleAuditory, forAlon[0].Category.Name)
}

func TestChaptersForModule_MarksCompleted(t *testing.T) {
	f := newFixture(t)
	user := f.createUser(t, "dana")
	module := f.createModule(t, "Area")
	lesson := f.createLesson(t, module.ID, "Rectangles", 1)
	seedChapters(t, f, lesson.ID, []string{model.StyleVisual, model.StyleAuditory, model.StyleReadWrite})
	f.setPreferences(t, user.ID, model.StyleVisual, model.StyleAuditory)

	svc := newSelector(f)

	first, err := svc.ChaptersForModule(user.ID, module.ID)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	_, err = f.progress.UpsertChapterProgress(user.ID, first[0].ID, true)
	require.NoError(t, err)

	second, err := svc.ChaptersForModule(user.ID, module.ID)
	require.NoError(t, err)
	assert.True(t, second[0].IsCompleted)
	for _, ch := range second[1:] {
		assert.False(t, ch.IsCompleted)
	}
}
