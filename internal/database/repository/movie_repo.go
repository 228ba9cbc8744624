// Package repository 电影数据仓库
package repository

import (
	"github.com/namhuunam/xxvn-crawler-go/internal/database/models"
	"gorm.io/gorm"
)

// MovieRepository 电影仓库
// 传入事务句柄即为事务作用域，事务边界由调用方控制
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository 创建电影仓库
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// ExistsBySlug 检查 slug 是否已入库
func (r *MovieRepository) ExistsBySlug(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Movie{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建电影记录，ID 回填到 movie
func (r *MovieRepository) Create(movie *models.Movie) error {
	return r.db.Create(movie).Error
}

// Count 统计电影总数
func (r *MovieRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Movie{}).Count(&count).Error
	return count, err
}

// CreateEpisode 创建剧集记录
func (r *MovieRepository) CreateEpisode(episode *models.Episode) error {
	return r.db.Create(episode).Error
}
