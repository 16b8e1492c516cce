package models

// CorpusMeta records which corpus bundle version the recipes table was
// seeded from. The similarity index and the recipe metadata are one
// versioned artifact; the version is checked at startup so the two can never
// be swapped independently.
type CorpusMeta struct {
	ID      int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Version string `gorm:"size:100;not null" json:"version"`
}

// TableName overrides the default pluralized table name
func (CorpusMeta) TableName() string {
	return "corpus_meta"
}
