package service

import "time"

// 統計用的時間區間起點, 以now所在時區計算

func startOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// startOfWeek 週日為一週的第一天
func startOfWeek(now time.Time) time.Time {
	day := startOfDay(now)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfMonth(now time.Time) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
}

func startOfYear(now time.Time) time.Time {
	return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
}
