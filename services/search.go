package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hotelops/models"
)

// ScoredCustomer là khách hàng kèm điểm phù hợp với query
type ScoredCustomer struct {
	Customer models.Customer
	Score    int
}

// Hàm chuẩn hóa chuỗi: bỏ dấu tiếng Việt và đưa về chữ thường
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách tên khách hàng
func newNameMatcher(customers []models.Customer) *closestmatch.ClosestMatch {
	uniqueNames := make(map[string]bool)
	for _, cus := range customers {
		if cus.Name != "" {
			uniqueNames[NormalizeInput(cus.Name)] = true
		}
	}

	names := make([]string, 0, len(uniqueNames))
	for name := range uniqueNames {
		names = append(names, name)
	}
	return closestmatch.New(names, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	return 1.0 - float64(distance)/maxLen
}

// Tính điểm phù hợp cho khách hàng
func scoreCustomer(query string, cus models.Customer, cmName *closestmatch.ClosestMatch) int {
	score := 0
	normalizedName := NormalizeInput(cus.Name)

	if cmName.Closest(query) == normalizedName {
		score += 13
	}
	if similarity := calculateSimilarity(query, normalizedName); similarity > 0.7 {
		score += 10
	}
	if strings.Contains(normalizedName, query) {
		score += 8
	}
	if cus.Phone != "" && strings.Contains(cus.Phone, query) {
		score += 15
	}
	if cus.IDNumber != "" && strings.Contains(cus.IDNumber, query) {
		score += 15
	}
	if cus.Email != "" && strings.Contains(strings.ToLower(cus.Email), query) {
		score += 8
	}

	return score
}

// SearchCustomers lọc và xếp hạng khách hàng theo độ phù hợp với query
func SearchCustomers(query string, customers []models.Customer) []models.Customer {
	normalizedQuery := NormalizeInput(query)
	if normalizedQuery == "" {
		return customers
	}

	cmName := newNameMatcher(customers)

	scoreCh := make(chan ScoredCustomer, len(customers))
	var wg sync.WaitGroup

	for _, cus := range customers {
		wg.Add(1)
		go func(cus models.Customer) {
			defer wg.Done()
			score := scoreCustomer(normalizedQuery, cus, cmName)
			if score > 0 {
				scoreCh <- ScoredCustomer{Customer: cus, Score: score}
			}
		}(cus)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []ScoredCustomer
	for sc := range scoreCh {
		scored = append(scored, sc)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	results := make([]models.Customer, 0, len(scored))
	for _, sc := range scored {
		results = append(results, sc.Customer)
	}
	return results
}
