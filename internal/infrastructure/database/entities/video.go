package entities

import "time"

// Video is the persisted row of the videos table.
type Video struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    *string   `gorm:"type:text"`
	S3Key          string    `gorm:"column:s3_key;type:varchar(255);uniqueIndex;not null"`
	ThumbnailS3Key *string   `gorm:"column:thumbnail_s3_key;type:varchar(255)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Video) TableName() string {
	return "videos"
}
