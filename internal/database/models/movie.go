// Package models 数据模型 - 电影
package models

import (
	"time"
)

// Movie 电影表
// slug 为全流程的幂等键，带唯一索引防止并发重复入库
type Movie struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"column:name;size:500" json:"name"`
	OriginName     string    `gorm:"column:origin_name;size:500" json:"origin_name"`
	Slug           string    `gorm:"column:slug;size:255;uniqueIndex" json:"slug"`
	Content        string    `gorm:"column:content;type:text" json:"content"`
	ThumbURL       *string   `gorm:"column:thumb_url;size:500" json:"thumb_url,omitempty"`
	PosterURL      *string   `gorm:"column:poster_url;size:500" json:"poster_url,omitempty"`
	Type           string    `gorm:"column:type;size:50" json:"type"`
	Status         string    `gorm:"column:status;size:50" json:"status"`
	EpisodeTime    string    `gorm:"column:episode_time;size:255" json:"episode_time"`
	EpisodeCurrent string    `gorm:"column:episode_current;size:255" json:"episode_current"`
	EpisodeTotal   string    `gorm:"column:episode_total;size:255" json:"episode_total"`
	Quality        string    `gorm:"column:quality;size:50" json:"quality"`
	Language       string    `gorm:"column:language;size:100" json:"language"`
	PublishYear    int       `gorm:"column:publish_year" json:"publish_year"`
	UpdateIdentity *string   `gorm:"column:update_identity;size:2048" json:"update_identity,omitempty"`
	UserID         int       `gorm:"column:user_id;default:1" json:"user_id"`
	UserName       string    `gorm:"column:user_name;size:255" json:"user_name"`

	// 互动统计，入库时全部置零，本管道不再修改
	EpisodeServerCount int     `gorm:"column:episode_server_count;default:0" json:"episode_server_count"`
	EpisodeDataCount   int     `gorm:"column:episode_data_count;default:0" json:"episode_data_count"`
	ViewTotal          int     `gorm:"column:view_total;default:0" json:"view_total"`
	ViewDay            int     `gorm:"column:view_day;default:0" json:"view_day"`
	ViewWeek           int     `gorm:"column:view_week;default:0" json:"view_week"`
	ViewMonth          int     `gorm:"column:view_month;default:0" json:"view_month"`
	RatingCount        int     `gorm:"column:rating_count;default:0" json:"rating_count"`
	RatingStar         float64 `gorm:"column:rating_star;default:0" json:"rating_star"`
	IsShownInTheater   bool    `gorm:"column:is_shown_in_theater;default:false" json:"is_shown_in_theater"`
	IsRecommended      bool    `gorm:"column:is_recommended;default:false" json:"is_recommended"`
	IsCopyright        bool    `gorm:"column:is_copyright;default:false" json:"is_copyright"`
	IsSensitiveContent bool    `gorm:"column:is_sensitive_content;default:false" json:"is_sensitive_content"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (Movie) TableName() string {
	return "movies"
}

// Episode 剧集表
type Episode struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MovieID   uint      `gorm:"column:movie_id;index;not null" json:"movie_id"`
	Server    string    `gorm:"column:server;size:255" json:"server"`
	Name      string    `gorm:"column:name;size:500" json:"name"`
	Slug      string    `gorm:"column:slug;size:255" json:"slug"`
	Type      string    `gorm:"column:type;size:50" json:"type"`
	Link      string    `gorm:"column:link;type:text" json:"link"`
	HasReport bool      `gorm:"column:has_report;default:false" json:"has_report"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName 表名
func (Episode) TableName() string {
	return "episodes"
}
