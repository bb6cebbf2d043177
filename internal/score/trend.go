// internal/score/trend.go
package score

// Trend — средний прирост между соседними результатами (от старых к новым).
// Меньше двух значений — тренда нет, 0.
func Trend(scores []int) float64 {
	if len(scores) < 2 {
		return 0
	}
	return float64(scores[len(scores)-1]-scores[0]) / float64(len(scores)-1)
}

// Scores вынимает столбец очков из записей.
func Scores(records []Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.Score
	}
	return out
}
