package domain

// ScanResult is the tagged union of outcomes a prefixed-id scan can produce.
// Kind returns the discriminator ("barcode", "water", "workout").
type ScanResult interface {
	Kind() string
}

// BarcodeResult is the outcome of a barcode lookup, optionally annotated
// with whether the best-effort food log write succeeded.
type BarcodeResult struct {
	Type        string   `json:"type"`
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Name        string   `json:"name"`
	Brands      string   `json:"brands"`
	Categories  string   `json:"categories"`
	Nutriscore  string   `json:"nutriscore"`
	Ingredients []string `json:"ingredients"`
	ImageURL    string   `json:"image_url"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	Logged      *bool    `json:"logged,omitempty"`
}

func (r *BarcodeResult) Kind() string { return r.Type }

// WaterResult is the outcome of a water log. Amount is polymorphic: a
// float64 when the token parsed, otherwise the original string verbatim.
type WaterResult struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Date     string `json:"date"`
	Amount   any    `json:"amount"`
	Status   string `json:"status"`
	Datetime string `json:"datetime"`
	Logged   *bool  `json:"logged,omitempty"`
}

func (r *WaterResult) Kind() string { return r.Type }

// WorkoutLogResult is the outcome of logging burned calories.
type WorkoutLogResult struct {
	Type           string  `json:"type"`
	Mode           string  `json:"mode"`
	Date           string  `json:"date"`
	Datetime       string  `json:"datetime"`
	CaloriesBurned float64 `json:"calories_burned"`
	UserID         string  `json:"user_id"`
	Logged         bool    `json:"logged"`
}

func (r *WorkoutLogResult) Kind() string { return r.Type }

// WorkoutReadResult is the outcome of reading a legacy workout record.
type WorkoutReadResult struct {
	Type           string   `json:"type"`
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	CaloriesBurned *float64 `json:"calories_burned"`
}

func (r *WorkoutReadResult) Kind() string { return r.Type }

// ScanRequest is the generic prefixed-id entry point payload.
type ScanRequest struct {
	PrefixedID string `json:"prefixed_id" binding:"required"`
	UserID     string `json:"user_id,omitempty"`
}

// BarcodeRequest addresses a product directly, bypassing prefix parsing.
type BarcodeRequest struct {
	Barcode string `json:"barcode" binding:"required"`
	UserID  string `json:"user_id,omitempty"`
}

// WaterRequest logs a water amount. Amount accepts "25", "25.0" or
// free text like "8oz".
type WaterRequest struct {
	Amount string `json:"amount" binding:"required"`
	UserID string `json:"user_id,omitempty"`
}

// WorkoutLogRequest logs burned calories under a user. CaloriesBurned is
// a pointer so that an explicit 0 still passes the required check.
type WorkoutLogRequest struct {
	CaloriesBurned *float64 `json:"calories_burned" binding:"required"`
	UserID         string   `json:"user_id" binding:"required"`
}

// WaterTotal is the per-day water aggregation for one user.
type WaterTotal struct {
	UserID     string  `json:"user_id"`
	Date       string  `json:"date"`
	TotalWater float64 `json:"total_water"`
	Entries    int     `json:"entries"`
}

// WorkoutTotal is the per-day burned-calorie aggregation for one user.
type WorkoutTotal struct {
	UserID              string  `json:"user_id"`
	Date                string  `json:"date"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
	Entries             int     `json:"entries"`
}

// NutritionTotals is the per-day macronutrient aggregation for one user.
type NutritionTotals struct {
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Entries  int     `json:"entries"`
}

// DayTotals bundles the three per-day aggregations.
type DayTotals struct {
	UserID    string            `json:"user_id"`
	Date      string            `json:"date"`
	Water     DayWaterBlock     `json:"water"`
	Workout   DayWorkoutBlock   `json:"workout"`
	Nutrition DayNutritionBlock `json:"nutrition"`
}

type DayWaterBlock struct {
	Total   float64 `json:"total"`
	Entries int     `json:"entries"`
}

type DayWorkoutBlock struct {
	CaloriesBurned float64 `json:"calories_burned"`
	Entries        int     `json:"entries"`
}

type DayNutritionBlock struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Entries  int     `json:"entries"`
}
