package service

import (
	"geometriks_backend/internal/model"
	"geometriks_backend/internal/repository"
	"geometriks_backend/internal/util"
	"math"

	"gorm.io/gorm"
)

// SelectorService builds the personalized chapter sequence a student sees for
// a module. The selection is computed once from the student's learning-style
// survey and persisted as chapter_orders rows; every later visit replays the
// stored ordering untouched, even if new chapters were published since.
type SelectorService struct {
	ModuleRepo   *repository.ModuleRepository
	ChapterRepo  *repository.ChapterRepository
	PrefRepo     *repository.PreferenceRepository
	ProgressRepo *repository.ProgressRepository
}

func NewSelectorService(
	moduleRepo *repository.ModuleRepository,
	chapterRepo *repository.ChapterRepository,
	prefRepo *repository.PreferenceRepository,
	progressRepo *repository.ProgressRepository,
) *SelectorService {
	return &SelectorService{
		ModuleRepo:   moduleRepo,
		ChapterRepo:  chapterRepo,
		PrefRepo:     prefRepo,
		ProgressRepo: progressRepo,
	}
}

type ChapterWithProgress struct {
	model.Chapter
	Order       int  `json:"order"`
	IsCompleted bool `json:"isCompleted"`
}

// ChaptersForModule returns the student's chapter sequence for the module,
// generating and persisting it on first access.
func (s *SelectorService) ChaptersForModule(userID, moduleID uint) ([]ChapterWithProgress, error) {
	if _, err := s.ModuleRepo.FindPublishedByID(moduleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	orders, err := s.ProgressRepo.ChapterOrdersByModule(userID, moduleID)
	if err != nil {
		return nil, err
	}
	if len(orders) > 0 {
		return s.replayStoredSelection(userID, orders)
	}

	pref, err := s.PrefRepo.FindByUser(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrPreferencesNotFound
		}
		return nil, err
	}

	eligible, err := s.ChapterRepo.ListEligibleByModule(moduleID)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return []ChapterWithProgress{}, nil
	}

	selected := selectByStyle(eligible, pref.PrimaryStyle, pref.SecondaryStyle, pref.TertiaryStyle())

	newOrders := make([]model.ChapterOrder, len(selected))
	for i, ch := range selected {
		newOrders[i] = model.ChapterOrder{
			UserID:    userID,
			ChapterID: ch.ID,
			LessonID:  ch.LessonID,
			Order:     i + 1,
		}
	}
	if err := s.ProgressRepo.CreateChapterOrders(newOrders); err != nil {
		return nil, err
	}

	result := make([]ChapterWithProgress, len(selected))
	for i, ch := range selected {
		progress, err := s.ProgressRepo.EnsureChapterProgress(userID, ch.ID)
		if err != nil {
			return nil, err
		}
		result[i] = ChapterWithProgress{
			Chapter:     ch,
			Order:       i + 1,
			IsCompleted: progress.IsCompleted,
		}
	}
	return result, nil
}

func (s *SelectorService) replayStoredSelection(userID uint, orders []model.ChapterOrder) ([]ChapterWithProgress, error) {
	ids := make([]uint, len(orders))
	for i, o := range orders {
		ids[i] = o.ChapterID
	}

	chapters, err := s.ChapterRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Chapter, len(chapters))
	for _, ch := range chapters {
		byID[ch.ID] = ch
	}

	completed, err := s.ProgressRepo.ChapterProgressMap(userID, ids)
	if err != nil {
		return nil, err
	}

	result := make([]ChapterWithProgress, 0, len(orders))
	for _, o := range orders {
		ch, ok := byID[o.ChapterID]
		if !ok {
			continue
		}
		result = append(result, ChapterWithProgress{
			Chapter:     ch,
			Order:       o.Order,
			IsCompleted: completed[o.ChapterID],
		})
	}
	return result, nil
}

// styleTargets splits a chapter count into per-style quotas: half for the
// primary style, 30% for the secondary, and whatever remains (including the
// rounding remainder) for the tertiary, so the three always sum to n.
func styleTargets(n int) (primary, secondary, tertiary int) {
	primary = int(math.Round(float64(n) * 0.5))
	secondary = int(math.Round(float64(n) * 0.3))
	tertiary = n - primary - secondary
	return
}

// selectByStyle partitions chapters into buckets by category name, fills each
// bucket up to its quota in natural order, then tops the selection up from
// the leftovers until it reaches the floor or runs out. A bucket never
// exceeds its own quota before the top-up phase, even when another bucket
// falls short.
func selectByStyle(chapters []model.Chapter, primary, secondary, tertiary string) []model.Chapter {
	buckets := map[string][]model.Chapter{}
	for _, ch := range chapters {
		if ch.Category == nil {
			continue
		}
		name := ch.Category.Name
		buckets[name] = append(buckets[name], ch)
	}

	pTarget, sTarget, tTarget := styleTargets(len(chapters))

	selected := make([]model.Chapter, 0, len(chapters))
	picked := make(map[uint]bool, len(chapters))

	take := func(style string, target int) {
		for _, ch := range buckets[style] {
			if target <= 0 {
				return
			}
			if picked[ch.ID] {
				continue
			}
			picked[ch.ID] = true
			selected = append(selected, ch)
			target--
		}
	}

	take(primary, pTarget)
	take(secondary, sTarget)
	take(tertiary, tTarget)

	// Sparse categories can leave the selection short; fill from whatever is
	// left, in natural order.
	for _, ch := range chapters {
		if len(selected) >= util.MinChapterSelection {
			break
		}
		if picked[ch.ID] {
			continue
		}
		picked[ch.ID] = true
		selected = append(selected, ch)
	}

	return selected
}
