package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is a list of strings stored as a Postgres text[] column. Other
// dialects keep the same array literal in a text column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(l).Value()
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(value); err != nil {
		return err
	}
	if arr == nil {
		arr = pq.StringArray{}
	}
	*l = StringList(arr)
	return nil
}

// GormDBDataType picks the column type per dialect.
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// MarshalJSON encodes a nil list as [].
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Contains reports whether s is an element of the list.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// Recipe is a stored recipe owned by a chef.
type Recipe struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Cid         string     `gorm:"column:cid;not null;index" json:"cid"`
	CreatedAt   time.Time  `gorm:"column:ctime" json:"ctime"`
	Mid         *string    `gorm:"column:mid" json:"mid"`
	UpdatedAt   time.Time  `gorm:"column:mtime" json:"mtime"`
	Title       string     `gorm:"not null" json:"title"`
	Header      *string    `gorm:"type:text" json:"header"`
	Ingredients StringList `gorm:"not null" json:"ingredients"`
	Steps       StringList `gorm:"not null" json:"steps"`
	Tags        StringList `gorm:"not null" json:"tags"`
	ImageURL    *string    `gorm:"column:image_url" json:"image_url"`
	CookTime    *string    `gorm:"column:cook_time" json:"cook_time"`
	PrepTime    *string    `gorm:"column:prep_time" json:"prep_time"`
	TotalTime   *string    `gorm:"column:total_time" json:"total_time"`
}

func (Recipe) TableName() string {
	return "recipe"
}
