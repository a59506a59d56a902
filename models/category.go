package models

// Category groups products. Deleting a category cascades to its products.
type Category struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:100;uniqueIndex;not null" binding:"required"`
	Description *string `json:"description" gorm:"type:text"`
}

func (c *Category) TableName() string {
	return "categories"
}
