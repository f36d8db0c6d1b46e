package newsportal

import (
	"sort"
	"strings"
	"time"
)

// CountMonths groups dates by calendar month in UTC, newest month first.
func CountMonths(dates []time.Time) []MonthCount {
	counts := make(map[time.Time]int)
	for _, d := range dates {
		d = d.UTC()
		counts[time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)]++
	}

	months := make([]MonthCount, 0, len(counts))
	for date, count := range counts {
		months = append(months, MonthCount{Date: date, Count: count})
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Date.After(months[j].Date)
	})

	return months
}

// CountTagUsage counts how many of the tag sets contain each tag. Duplicates within a set count once.
func CountTagUsage(tagSets [][]int) map[int]int {
	counts := make(map[int]int)
	for _, set := range tagSets {
		seen := make(map[int]struct{}, len(set))
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			counts[id]++
		}
	}
	return counts
}

// CountCategoryUsage counts news per category, news without a category are skipped.
func CountCategoryUsage(categoryIDs []*int) map[int]int {
	counts := make(map[int]int)
	for _, id := range categoryIDs {
		if id != nil {
			counts[*id]++
		}
	}
	return counts
}

// SortTagCounts orders by count desc, then by name and id.
func SortTagCounts(list []TagCount) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if an, bn := strings.ToLower(a.Tag.Name), strings.ToLower(b.Tag.Name); an != bn {
			return an < bn
		}
		return a.Tag.ID < b.Tag.ID
	})
}

// SortCategoryCounts orders by count desc, then by category ordering and id.
func SortCategoryCounts(list []CategoryCount) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Category.Ordering != b.Category.Ordering {
			return a.Category.Ordering < b.Category.Ordering
		}
		return a.Category.ID < b.Category.ID
	})
}
