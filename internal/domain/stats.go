package domain

import "time"

// GenreCount is a genre and the number of completed books in it.
type GenreCount struct {
	Genre string
	Count int
}

// MonthCount is the number of books finished in one calendar month.
type MonthCount struct {
	Month     string
	BooksRead int
}

// CompletedSummary aggregates a user's books completed in one year.
// Books without a known page count add nothing to Pages but are counted.
type CompletedSummary struct {
	Books         int
	Pages         int
	AverageRating *float64
}

// ReadingStats is the yearly reading-activity report for a user.
type ReadingStats struct {
	Year                  int
	TotalBooksCompleted   int
	TotalPagesRead        int
	AverageRating         *float64
	GenreDistribution     []GenreCount
	MonthlyReading        []MonthCount
	CurrentlyReadingCount int
	WantToReadCount       int
}

// MonthlyFromCounts expands per-month counts (keyed 1..12) into exactly
// twelve entries in calendar order.
func MonthlyFromCounts(counts map[int]int) []MonthCount {
	out := make([]MonthCount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthCount{
			Month:     m.String()[:3],
			BooksRead: counts[int(m)],
		})
	}
	return out
}
