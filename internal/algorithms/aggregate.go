package algorithms

import (
	"math"
	"sort"
	"time"
)

// MonthLayout - ключ месяца в графиках роста ("Jan 2025")
const MonthLayout = "Jan 2006"

// Bucket - одна строка гистограммы
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// CountBy считает элементы по ключу за один проход. Пустой ключ идет как fallback.
func CountBy[T any](items []T, key func(T) string, fallback string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		k := key(item)
		if k == "" {
			k = fallback
		}
		counts[k]++
	}
	return counts
}

// CountPresent - как CountBy, но записи с пустым ключом не учитываются
func CountPresent[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		if k := key(item); k != "" {
			counts[k]++
		}
	}
	return counts
}

// SortedBuckets - по убыванию количества, при равенстве по ключу
func SortedBuckets(counts map[string]int) []Bucket {
	buckets := make([]Bucket, 0, len(counts))
	for k, v := range counts {
		buckets = append(buckets, Bucket{Key: k, Count: v})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// TopN - первые n корзин из SortedBuckets
func TopN(counts map[string]int, n int) []Bucket {
	buckets := SortedBuckets(counts)
	if n >= 0 && len(buckets) > n {
		buckets = buckets[:n]
	}
	return buckets
}

// MonthKey - "Jan 2025"
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthLayout)
}

// GrowthByMonth группирует даты по месяцам в хронологическом порядке
func GrowthByMonth(times []time.Time) []Bucket {
	type month struct {
		start time.Time
		count int
	}
	months := make(map[string]*month)
	for _, t := range times {
		u := t.UTC()
		key := MonthKey(u)
		if m, ok := months[key]; ok {
			m.count++
			continue
		}
		months[key] = &month{start: time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC), count: 1}
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return months[keys[i]].start.Before(months[keys[j]].start)
	})

	out := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, Bucket{Key: k, Count: months[k].count})
	}
	return out
}

// Percent - round(part/total*100); 0 при total == 0
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Average - среднее, округленное до десятых; 0 для пустого ввода
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return math.Round(float64(sum)/float64(len(values))*10) / 10
}

// CountSince - сколько отметок строго позже since
func CountSince(times []time.Time, since time.Time) int {
	n := 0
	for _, t := range times {
		if t.After(since) {
			n++
		}
	}
	return n
}
