package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// nutrientCodes maps the nutrition API's nutrient codes to the friendly
// names exposed to clients.
var nutrientCodes = map[string]string{
	"ENERC_KCAL": "Calories",
	"PROCNT":     "Protein",
	"CHOCDF":     "Carbs",
	"FAT":        "Fat",
	"FIBTG":      "Fiber",
	"SUGAR":      "Sugars",
	"NA":         "Sodium",
	"CA":         "Calcium",
	"FE":         "Iron",
	"VITA_RAE":   "Vitamin A",
	"VITC":       "Vitamin C",
	"K":          "Potassium",
	"MG":         "Magnesium",
	"CHOLE":      "Cholesterol",
	"FASAT":      "Saturated Fat",
}

var (
	parentheticalPattern = regexp.MustCompile(`\(.*?\)`)
	descriptorPattern    = regexp.MustCompile(`(?i)\b(chopped|slit|finely|picked|optional|to taste|thinly sliced|deseeded|etc\.)\b`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
	quantityPattern      = regexp.MustCompile(`^(\d+\.?\d*)\s*(\w+)`)
)

// saltWeightFraction estimates unquantified salt as a fixed fraction of the
// total parsed ingredient weight. This is a rough heuristic with no stated
// accuracy target; do not extend it to other unquantified ingredients.
const saltWeightFraction = 0.05

// nutritionCacheTTL bounds how long per-ingredient lookups are reused.
// Recommendation results are never cached; only these upstream lookups are.
const nutritionCacheTTL = 7 * 24 * time.Hour

// NutritionService aggregates per-ingredient nutrition data from an external
// lookup API
type NutritionService struct {
	appID  string
	appKey string
	apiURL string
	client *http.Client
	redis  *redis.Client
}

// NewNutritionService creates a new NutritionService instance. The Redis
// client is optional; without it every lookup goes to the API.
func NewNutritionService(appID, appKey, apiURL string, redisClient *redis.Client) *NutritionService {
	return &NutritionService{
		appID:  appID,
		appKey: appKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 15 * time.Second},
		redis:  redisClient,
	}
}

// PreprocessIngredients cleans each entry (parentheticals, preparation
// descriptors, excess whitespace), accumulates the total weight of entries
// with explicit quantities, and appends an estimated salt quantity for
// unquantified salt entries. Returns the processed list and the total parsed
// weight.
func PreprocessIngredients(ingredients []string) ([]string, float64) {
	var totalWeight float64
	var unquantified []string

	processed := make([]string, 0, len(ingredients))
	for _, item := range ingredients {
		item = parentheticalPattern.ReplaceAllString(item, "")
		item = descriptorPattern.ReplaceAllString(item, "")
		item = strings.TrimSpace(whitespacePattern.ReplaceAllString(item, " "))
		if item == "" {
			continue
		}

		if match := quantityPattern.FindStringSubmatch(item); match != nil {
			quantity, _ := strconv.ParseFloat(match[1], 64)
			totalWeight += quantity
		} else {
			unquantified = append(unquantified, item)
		}
		processed = append(processed, item)
	}

	for _, item := range unquantified {
		if strings.Contains(strings.ToLower(item), "salt") {
			processed = append(processed, fmt.Sprintf("%g grams salt", totalWeight*saltWeightFraction))
		}
	}

	return processed, totalWeight
}

// Analyze looks up every ingredient individually and aggregates the results
// into a single nutrient map. Individual lookup failures contribute zeros
// rather than failing the whole analysis.
func (s *NutritionService) Analyze(ctx context.Context, ingredients []string) (map[string]float64, error) {
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	processed, _ := PreprocessIngredients(ingredients)

	aggregated := make(map[string]float64, len(nutrientCodes))
	for _, name := range nutrientCodes {
		aggregated[name] = 0
	}

	for _, ingredient := range processed {
		nutrition, err := s.analyzeIngredient(ctx, ingredient)
		if err != nil {
			log.Printf("nutrition lookup failed for %q: %v", ingredient, err)
			continue
		}
		for name, value := range nutrition {
			aggregated[name] += value
		}
	}

	return aggregated, nil
}

type nutritionAPIResponse struct {
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
}

func (s *NutritionService) analyzeIngredient(ctx context.Context, ingredient string) (map[string]float64, error) {
	cacheKey := "nutrition:ingredient:" + strings.ToLower(ingredient)
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached map[string]float64
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	params := url.Values{}
	params.Set("app_id", s.appID)
	params.Set("app_key", s.appKey)
	params.Set("ingr", ingredient)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result nutritionAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	nutrition := make(map[string]float64, len(nutrientCodes))
	for code, name := range nutrientCodes {
		nutrition[name] = result.TotalNutrients[code].Quantity
	}

	if s.redis != nil {
		if data, err := json.Marshal(nutrition); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, nutritionCacheTTL).Err(); err != nil {
				log.Printf("failed to cache nutrition for %q: %v", ingredient, err)
			}
		}
	}

	return nutrition, nil
}
