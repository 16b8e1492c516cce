package models

import (
	"database/sql/driver"
	"encoding/json"

	pgvector "github.com/pgvector/pgvector-go"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBFloatMap is a custom type for handling nutrient maps in JSONB
type JSONBFloatMap map[string]float64

// Value implements the driver.Valuer interface
func (m JSONBFloatMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface
func (m *JSONBFloatMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBFloatMap{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Recipe is a read-only corpus record. Position is the recipe's slot in the
// similarity index: position i always names the same recipe for the process
// lifetime, so corpus metadata and index vectors must come from the same
// bundle version.
type Recipe struct {
	Position     int              `gorm:"primaryKey;autoIncrement:false" json:"position"`
	Name         string           `gorm:"size:255;not null" json:"recipe_name"`
	Cuisine      string           `gorm:"size:100" json:"cuisine"`
	Course       string           `gorm:"size:50" json:"course"`
	Diet         string           `gorm:"size:50" json:"diet"`
	PrepTime     int              `gorm:"not null;default:0" json:"prep_time"`
	CookTime     int              `gorm:"not null;default:0" json:"cook_time"`
	Servings     string           `gorm:"size:50" json:"servings"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Nutrition    JSONBFloatMap    `gorm:"type:jsonb;not null;default:'{}'" json:"nutrition"`
	Instructions string           `gorm:"type:text" json:"instructions"`
	Embedding    pgvector.Vector  `gorm:"type:vector(384)" json:"-"`
}

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}
