// Package models 数据模型 - 演员/分类/地区/标签
package models

import (
	"time"
)

// Actor 演员表，slug 为自然键
type Actor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	NameMD5   string    `gorm:"column:name_md5;size:32" json:"name_md5"`
	Slug      string    `gorm:"column:slug;size:255;index" json:"slug"`
	Gender    string    `gorm:"column:gender;size:20" json:"gender"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (Actor) TableName() string {
	return "actors"
}

// Category 分类表
type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Slug      string    `gorm:"column:slug;size:255;index" json:"slug"`
	UserID    int       `gorm:"column:user_id;default:1" json:"user_id"`
	UserName  string    `gorm:"column:user_name;size:255" json:"user_name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (Category) TableName() string {
	return "categories"
}

// Region 地区表
type Region struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	Slug      string    `gorm:"column:slug;size:255;index" json:"slug"`
	UserID    int       `gorm:"column:user_id;default:1" json:"user_id"`
	UserName  string    `gorm:"column:user_name;size:255" json:"user_name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (Region) TableName() string {
	return "regions"
}

// Tag 标签表
type Tag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255" json:"name"`
	NameMD5   string    `gorm:"column:name_md5;size:32" json:"name_md5"`
	Slug      string    `gorm:"column:slug;size:255;index" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (Tag) TableName() string {
	return "tags"
}

// ActorMovie 电影-演员关联表，每个组合至多一行
type ActorMovie struct {
	MovieID uint `gorm:"column:movie_id;primaryKey;autoIncrement:false" json:"movie_id"`
	ActorID uint `gorm:"column:actor_id;primaryKey;autoIncrement:false" json:"actor_id"`
}

// TableName 表名
func (ActorMovie) TableName() string {
	return "actor_movie"
}

// CategoryMovie 电影-分类关联表
type CategoryMovie struct {
	MovieID    uint `gorm:"column:movie_id;primaryKey;autoIncrement:false" json:"movie_id"`
	CategoryID uint `gorm:"column:category_id;primaryKey;autoIncrement:false" json:"category_id"`
}

// TableName 表名
func (CategoryMovie) TableName() string {
	return "category_movie"
}

// MovieRegion 电影-地区关联表
type MovieRegion struct {
	MovieID  uint `gorm:"column:movie_id;primaryKey;autoIncrement:false" json:"movie_id"`
	RegionID uint `gorm:"column:region_id;primaryKey;autoIncrement:false" json:"region_id"`
}

// TableName 表名
func (MovieRegion) TableName() string {
	return "movie_region"
}

// MovieTag 电影-标签关联表
type MovieTag struct {
	MovieID uint `gorm:"column:movie_id;primaryKey;autoIncrement:false" json:"movie_id"`
	TagID   uint `gorm:"column:tag_id;primaryKey;autoIncrement:false" json:"tag_id"`
}

// TableName 表名
func (MovieTag) TableName() string {
	return "movie_tag"
}
