package usecase

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/nutrilog/backend/internal/domain"
)

// scanKind discriminates the four branches a prefixed id can decode to.
type scanKind int

const (
	scanBarcode scanKind = iota
	scanWater
	scanWorkoutLog
	scanWorkoutRead
)

// decodeScanKind classifies a prefixed id without touching any state.
// The first code point (case-insensitive) selects the branch; for W the
// payload's numeric shape decides between a calorie log and a legacy read.
func decodeScanKind(prefixedID string) (scanKind, string, error) {
	if len(prefixedID) < 2 {
		return 0, "", fmt.Errorf("%w: expect 1-letter prefix followed by an ID/value", domain.ErrInvalidInput)
	}

	r, size := utf8.DecodeRuneInString(prefixedID)
	payload := prefixedID[size:]
	if payload == "" {
		return 0, "", fmt.Errorf("%w: expect 1-letter prefix followed by an ID/value", domain.ErrInvalidInput)
	}

	switch unicode.ToUpper(r) {
	case 'B':
		return scanBarcode, payload, nil
	case 'L':
		return scanWater, payload, nil
	case 'W':
		if isCalorieToken(payload) {
			return scanWorkoutLog, payload, nil
		}
		return scanWorkoutRead, payload, nil
	default:
		return 0, "", fmt.Errorf("%w: unknown prefix %q. Use B/W/L", domain.ErrInvalidInput, string(r))
	}
}

// isCalorieToken reports whether s, after removing at most one decimal
// point, consists entirely of digits.
func isCalorieToken(s string) bool {
	return isDigits(strings.Replace(s, ".", "", 1))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ScanServiceConfig holds configuration for the scan service
type ScanServiceConfig struct {
	CacheTTL time.Duration
}

// ScanService resolves prefixed identifiers into barcode lookups, water
// logs, workout logs and legacy workout reads. Dispatch itself is pure;
// all side effects happen inside the delegated handlers, and log writes
// are best-effort (reported as a boolean, never raised).
type ScanService struct {
	lookup   domain.ProductLookup
	store    domain.EntryStore
	cache    domain.CacheRepository
	clock    domain.Clock
	cacheTTL time.Duration
}

// NewScanService creates a scan service with its collaborators. cache may
// be nil to disable product caching.
func NewScanService(
	lookup domain.ProductLookup,
	store domain.EntryStore,
	cache domain.CacheRepository,
	clock domain.Clock,
	config ScanServiceConfig,
) *ScanService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour
	}

	return &ScanService{
		lookup:   lookup,
		store:    store,
		cache:    cache,
		clock:    clock,
		cacheTTL: cacheTTL,
	}
}

// Resolve routes a prefixed id to the matching handler.
// B... barcode lookup, L... water log, W<digits> workout calorie log,
// W<other> legacy workout read.
func (s *ScanService) Resolve(ctx context.Context, prefixedID, userID string) (domain.ScanResult, error) {
	kind, payload, err := decodeScanKind(prefixedID)
	if err != nil {
		return nil, err
	}

	switch kind {
	case scanBarcode:
		return s.ResolveBarcode(ctx, payload, userID)
	case scanWater:
		return s.LogWater(ctx, payload, userID)
	case scanWorkoutLog:
		calories, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: calories_burned must be numeric", domain.ErrInvalidInput)
		}
		return s.LogWorkout(ctx, calories, userID)
	case scanWorkoutRead:
		return s.ReadLegacyWorkout(ctx, payload)
	}

	// Unreachable: decodeScanKind covers every kind.
	return nil, domain.ErrInvalidInput
}

// ResolveBarcode looks up a product by barcode and, when userID is set,
// best-effort logs a food entry keyed by the current timestamp.
func (s *ScanService) ResolveBarcode(ctx context.Context, barcode, userID string) (*domain.BarcodeResult, error) {
	if !isDigits(barcode) {
		return nil, fmt.Errorf("%w: invalid barcode: must be digits", domain.ErrInvalidInput)
	}

	product, err := s.fetchProduct(ctx, barcode)
	if err != nil {
		return nil, err
	}

	dayKey := s.clock.DayKey()
	entryKey := s.clock.EntryKey()
	facts := ExtractNutrition(product.Nutriments)

	ingredients := make([]string, 0, len(product.Ingredients))
	for _, ing := range product.Ingredients {
		if ing.Text != "" {
			ingredients = append(ingredients, ing.Text)
		}
	}

	result := &domain.BarcodeResult{
		Type:        "barcode",
		ID:          barcode,
		Date:        dayKey,
		Name:        product.ProductName,
		Brands:      product.Brands,
		Categories:  product.Categories,
		Nutriscore:  product.NutriscoreGrade,
		Ingredients: ingredients,
		ImageURL:    product.ImageURL,
		Calories:    facts.Calories,
		Protein:     facts.Protein,
		Carbs:       facts.Carbs,
		Fat:         facts.Fat,
	}

	if userID != "" {
		record := map[string]any{
			"barcode":   barcode,
			"name":      product.ProductName,
			"calories":  facts.Calories,
			"protein":   facts.Protein,
			"carbs":     facts.Carbs,
			"fat":       facts.Fat,
			"createdAt": entryKey,
		}
		logged := s.bestEffortLog(ctx, userID, domain.CategoryFood, dayKey, entryKey, record)
		result.Logged = &logged
	}

	return result, nil
}

// LogWater records a water amount. The token is coerced to a number when
// possible; otherwise the original string passes through verbatim so
// free-text amounts like "8oz" survive uninterpreted.
func (s *ScanService) LogWater(ctx context.Context, amountToken, userID string) (*domain.WaterResult, error) {
	var amount any = amountToken
	if f, ok := SafeFloat(amountToken); ok {
		amount = f
	}

	dayKey := s.clock.DayKey()
	entryKey := s.clock.EntryKey()

	result := &domain.WaterResult{
		Type:     "water",
		ID:       amountToken,
		Date:     dayKey,
		Amount:   amount,
		Status:   "ok",
		Datetime: entryKey,
	}

	if userID != "" {
		logged := s.bestEffortLog(ctx, userID, domain.CategoryWater, dayKey, entryKey, map[string]any{
			"amount": amount,
		})
		result.Logged = &logged
	}

	return result, nil
}

// LogWorkout records burned calories under a user. Unlike water and food,
// the user id is mandatory here.
func (s *ScanService) LogWorkout(ctx context.Context, caloriesBurned float64, userID string) (*domain.WorkoutLogResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required to log a workout", domain.ErrInvalidInput)
	}

	dayKey := s.clock.DayKey()
	entryKey := s.clock.EntryKey()

	logged := s.bestEffortLog(ctx, userID, domain.CategoryWorkout, dayKey, entryKey, map[string]any{
		"calories_burned": caloriesBurned,
	})

	return &domain.WorkoutLogResult{
		Type:           "workout",
		Mode:           "logged",
		Date:           dayKey,
		Datetime:       entryKey,
		CaloriesBurned: caloriesBurned,
		UserID:         userID,
		Logged:         logged,
	}, nil
}

// ReadLegacyWorkout reads a workout record by its literal id from the flat
// legacy collection. Unlike the write paths this requires the store to
// answer: unavailability and missing records are raised, never degraded.
func (s *ScanService) ReadLegacyWorkout(ctx context.Context, workoutID string) (*domain.WorkoutReadResult, error) {
	record, err := s.store.GetLegacyWorkout(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	result := &domain.WorkoutReadResult{
		Type: "workout",
		ID:   workoutID,
		Date: s.clock.DayKey(),
	}
	if v, ok := SafeFloat(record["calories_burned"]); ok {
		result.CaloriesBurned = &v
	}
	return result, nil
}

// bestEffortLog upserts one entry and collapses any failure to false.
func (s *ScanService) bestEffortLog(ctx context.Context, userID string, category domain.Category, dayKey, entryKey string, record map[string]any) bool {
	if err := s.store.UpsertEntry(ctx, userID, category, dayKey, entryKey, record); err != nil {
		log.Printf("[SCAN] best-effort %s log failed for user %s: %v", category, userID, err)
		return false
	}
	return true
}

// fetchProduct fronts the lookup service with the product cache.
func (s *ScanService) fetchProduct(ctx context.Context, barcode string) (*domain.Product, error) {
	cacheKey := "product:" + barcode

	if s.cache != nil {
		if value, err := s.cache.Get(ctx, cacheKey); err == nil {
			if product, ok := value.(*domain.Product); ok {
				return product, nil
			}
		}
	}

	product, err := s.lookup.FetchByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, product, s.cacheTTL); err != nil {
			log.Printf("[SCAN] failed to cache product %s: %v", barcode, err)
		}
	}

	return product, nil
}
