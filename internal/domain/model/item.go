package model

import "time"

type ItemCategory string

const (
	CategorySnacks      ItemCategory = "snacks"
	CategoryMainCourse  ItemCategory = "main_course"
	CategoryDesserts    ItemCategory = "desserts"
	CategoryPizza       ItemCategory = "pizza"
	CategoryBurgers     ItemCategory = "burgers"
	CategorySandwiches  ItemCategory = "sandwiches"
	CategorySouthIndian ItemCategory = "south_indian"
	CategoryNorthIndian ItemCategory = "north_indian"
	CategoryChinese     ItemCategory = "chinese"
	CategoryFastFood    ItemCategory = "fast_food"
	CategoryOthers      ItemCategory = "others"
)

func ValidItemCategory(c ItemCategory) bool {
	switch c {
	case CategorySnacks, CategoryMainCourse, CategoryDesserts, CategoryPizza,
		CategoryBurgers, CategorySandwiches, CategorySouthIndian,
		CategoryNorthIndian, CategoryChinese, CategoryFastFood, CategoryOthers:
		return true
	}
	return false
}

type FoodType string

const (
	FoodTypeVeg    FoodType = "veg"
	FoodTypeNonVeg FoodType = "non_veg"
)

func ValidFoodType(f FoodType) bool {
	return f == FoodTypeVeg || f == FoodTypeNonVeg
}

type Item struct {
	ID          int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Image       string       `gorm:"not null" json:"image"`
	ShopID      int64        `gorm:"not null;index" json:"shop"`
	Category    ItemCategory `gorm:"type:varchar(30);not null;index" json:"category"`
	FoodType    FoodType     `gorm:"type:varchar(10);not null" json:"foodType"`
	Price       int64        `gorm:"not null" json:"price"`
	IsAvailable bool         `gorm:"not null;default:true;index" json:"isAvailable"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
