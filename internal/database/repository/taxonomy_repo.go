// Package repository 演员/分类/地区/标签数据仓库
// 每个仓库只暴露按 slug 查找与插入，find-or-create 的编排留在上层，
// 关联行统一先查后插，保证 (movie_id, ref_id) 至多一行
package repository

import (
	"errors"

	"github.com/namhuunam/xxvn-crawler-go/internal/database/models"
	"gorm.io/gorm"
)

// ActorRepository 演员仓库
type ActorRepository struct {
	db *gorm.DB
}

// NewActorRepository 创建演员仓库
func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

// FindBySlug 按 slug 查找演员，未找到返回 nil
func (r *ActorRepository) FindBySlug(slug string) (*models.Actor, error) {
	var actor models.Actor
	err := r.db.Where("slug = ?", slug).First(&actor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

// Create 创建演员记录
func (r *ActorRepository) Create(actor *models.Actor) error {
	return r.db.Create(actor).Error
}

// Link 关联电影与演员，已存在则跳过
func (r *ActorRepository) Link(movieID, actorID uint) error {
	var count int64
	err := r.db.Model(&models.ActorMovie{}).
		Where("movie_id = ? AND actor_id = ?", movieID, actorID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.ActorMovie{MovieID: movieID, ActorID: actorID}).Error
}

// CategoryRepository 分类仓库
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindBySlug 按 slug 查找分类，未找到返回 nil
func (r *CategoryRepository) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Create 创建分类记录
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Link 关联电影与分类，已存在则跳过
func (r *CategoryRepository) Link(movieID, categoryID uint) error {
	var count int64
	err := r.db.Model(&models.CategoryMovie{}).
		Where("movie_id = ? AND category_id = ?", movieID, categoryID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.CategoryMovie{MovieID: movieID, CategoryID: categoryID}).Error
}

// RegionRepository 地区仓库
type RegionRepository struct {
	db *gorm.DB
}

// NewRegionRepository 创建地区仓库
func NewRegionRepository(db *gorm.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

// FindBySlug 按 slug 查找地区，未找到返回 nil
func (r *RegionRepository) FindBySlug(slug string) (*models.Region, error) {
	var region models.Region
	err := r.db.Where("slug = ?", slug).First(&region).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &region, nil
}

// Create 创建地区记录
func (r *RegionRepository) Create(region *models.Region) error {
	return r.db.Create(region).Error
}

// Link 关联电影与地区，已存在则跳过
func (r *RegionRepository) Link(movieID, regionID uint) error {
	var count int64
	err := r.db.Model(&models.MovieRegion{}).
		Where("movie_id = ? AND region_id = ?", movieID, regionID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.MovieRegion{MovieID: movieID, RegionID: regionID}).Error
}

// TagRepository 标签仓库
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建标签仓库
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// FindBySlug 按 slug 查找标签，未找到返回 nil
func (r *TagRepository) FindBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("slug = ?", slug).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Create 创建标签记录
func (r *TagRepository) Create(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Link 关联电影与标签，已存在则跳过
func (r *TagRepository) Link(movieID, tagID uint) error {
	var count int64
	err := r.db.Model(&models.MovieTag{}).
		Where("movie_id = ? AND tag_id = ?", movieID, tagID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.MovieTag{MovieID: movieID, TagID: tagID}).Error
}
