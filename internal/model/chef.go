package model

import "time"

// Chef is a user of the application, identified by their Firebase id.
type Chef struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirebaseID string    `gorm:"column:firebase_id;uniqueIndex;not null" json:"firebase_id"`
	Username   *string   `json:"username"`
	CreatedAt  time.Time `gorm:"column:ctime" json:"ctime"`
	UpdatedAt  time.Time `gorm:"column:mtime" json:"mtime"`
	Recipes    []Recipe  `gorm:"foreignKey:Cid;references:FirebaseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Chef) TableName() string {
	return "chef"
}
