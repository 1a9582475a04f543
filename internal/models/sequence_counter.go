package models

// SequenceCounter backs record/invoice numbering. One row per (prefix,
// year); last_value is bumped atomically with ON CONFLICT ... RETURNING
// so concurrent creations never mint the same number.
type SequenceCounter struct {
	Prefix    string `gorm:"size:10;primaryKey"`
	Year      int    `gorm:"primaryKey"`
	LastValue int64  `gorm:"not null"`
}
