package entity

import "time"

// DbStatistic represents a headline figure shown on the public site,
// e.g. "120+ projects delivered".
type DbStatistic struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Number    string    `gorm:"column:number;type:varchar(50);not null" json:"number"`
	Label     string    `gorm:"column:label;type:varchar(100);not null" json:"label"`
	Icon      string    `gorm:"column:icon;type:varchar(10)" json:"icon"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName overrides default pluralised name.
func (DbStatistic) TableName() string {
	return "statistics"
}

// StatisticRequest carries the full mutable schema, used for create and full replace.
type StatisticRequest struct {
	Number    string `json:"number" binding:"required,max=50"`
	Label     string `json:"label" binding:"required,max=100"`
	Icon      string `json:"icon" binding:"omitempty,max=10"`
	SortOrder int    `json:"order"`
}

// Entity builds a new record from the request.
func (r StatisticRequest) Entity() DbStatistic {
	return DbStatistic{
		Number:    r.Number,
		Label:     r.Label,
		Icon:      r.Icon,
		SortOrder: r.SortOrder,
	}
}

// Updates maps the request to a full-replace update set.
func (r StatisticRequest) Updates() StatisticUpdates {
	return StatisticUpdates{
		Number:    &r.Number,
		Label:     &r.Label,
		Icon:      &r.Icon,
		SortOrder: &r.SortOrder,
	}
}

// StatisticPatchRequest carries a sparse field set; nil means "not sent".
type StatisticPatchRequest struct {
	Number    *string `json:"number,omitempty" binding:"omitempty,max=50"`
	Label     *string `json:"label,omitempty" binding:"omitempty,max=100"`
	Icon      *string `json:"icon,omitempty" binding:"omitempty,max=10"`
	SortOrder *int    `json:"order,omitempty"`
}

// Updates maps only the fields present in the request.
func (r StatisticPatchRequest) Updates() StatisticUpdates {
	return StatisticUpdates{
		Number:    r.Number,
		Label:     r.Label,
		Icon:      r.Icon,
		SortOrder: r.SortOrder,
	}
}

// StatisticUpdates 统计项更新字段
type StatisticUpdates struct {
	Number    *string
	Label     *string
	Icon      *string
	SortOrder *int
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u StatisticUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Number != nil {
		updates["number"] = *u.Number
	}
	if u.Label != nil {
		updates["label"] = *u.Label
	}
	if u.Icon != nil {
		updates["icon"] = *u.Icon
	}
	if u.SortOrder != nil {
		updates["sort_order"] = *u.SortOrder
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u StatisticUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
