package helpers

import "go.mongodb.org/mongo-driver/bson/primitive"

// Report cache keys are per user; every expense mutation drops both so the
// next report request recomputes.
func WeeklyReportCacheKey(userId primitive.ObjectID) string {
	return "reports:weekly:" + userId.Hex()
}

func MonthlyReportCacheKey(userId primitive.ObjectID) string {
	return "reports:monthly:" + userId.Hex()
}
