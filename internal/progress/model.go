package progress

import "time"

// ProgressLog is one body-measurement reading. The natural key is
// (user, date): a second reading on the same day overwrites the first.
type ProgressLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_progress_user_date" json:"user_id"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_progress_user_date" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"`
	Bmi       float64   `json:"bmi"`
	Category  string    `gorm:"type:varchar(20)" json:"category"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProgressLog) TableName() string { return "progress_logs" }

// AddProgressRequest is the reading submission input.
type AddProgressRequest struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
}
