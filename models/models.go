package models

// Post - строка таблицы Posts. gorm.Model не используется: мягкого удаления нет.
type Post struct {
	ID      uint   `gorm:"primary_key"`
	Post    string `gorm:"not null"`
	Content string `gorm:"not null"`
}

func (Post) TableName() string {
	return "Posts"
}
