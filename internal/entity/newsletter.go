package entity

import "time"

// DbSubscriber represents a newsletter subscription. The email is unique;
// resubscribing reactivates a previously cancelled entry instead of
// inserting a duplicate.
type DbSubscriber struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
}

// TableName overrides default pluralised name.
func (DbSubscriber) TableName() string {
	return "newsletters"
}

// SubscribeRequest binds the public newsletter signup payload.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SubscriberUpdates 订阅更新字段
type SubscriberUpdates struct {
	Active *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u SubscriberUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Active != nil {
		updates["active"] = *u.Active
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u SubscriberUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
