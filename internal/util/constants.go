package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	// LessonCompletionPoints is awarded once per (user, lesson), on the first
	// successful completion only.
	LessonCompletionPoints = 10

	// PassThreshold is the fraction of a lesson's question count a score must
	// reach for an exercise attempt to pass.
	PassThreshold = 0.6

	// MinChapterSelection is the floor the chapter selector tops up to when
	// the per-style targets come in under it.
	MinChapterSelection = 10
)
