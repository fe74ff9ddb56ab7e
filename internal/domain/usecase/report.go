package usecase

import "time"

// Report cache contracts. Find returns "" on a miss.
type FindReportCacheRepository interface {
	Find(key string) (string, error)
}

type SaveReportCacheRepository interface {
	Save(key string, payload string, expiration time.Duration) error
}

type DeleteReportCacheRepository interface {
	Delete(keys ...string) error
}
