package crawler

import (
	"errors"
	"fmt"
	"time"

	"github.com/namhuunam/xxvn-crawler-go/internal/api"
	"github.com/namhuunam/xxvn-crawler-go/internal/database/models"
	"github.com/namhuunam/xxvn-crawler-go/internal/database/repository"
	"github.com/namhuunam/xxvn-crawler-go/pkg/logger"
	"github.com/namhuunam/xxvn-crawler-go/pkg/utils"
	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// APIClient 上游 API 依赖
type APIClient interface {
	MoviesPage(page int) (*api.Envelope, error)
	MovieDetail(slug string) (*api.Envelope, error)
}

// ImageProcessor 封面图处理依赖
type ImageProcessor interface {
	Process(url string) (string, error)
}

// Service 抓取服务
// 每部电影一个事务；slug 为幂等键，已入库的 slug 直接跳过
type Service struct {
	api    APIClient
	images ImageProcessor
	db     *gorm.DB
	movies *repository.MovieRepository
	known  *gocache.Cache // 本进程内已确认入库的 slug，省去重复 slug 的存在性查询
	stats  *Stats
}

// NewService 创建抓取服务
func NewService(apiClient APIClient, images ImageProcessor, db *gorm.DB) *Service {
	return &Service{
		api:    apiClient,
		images: images,
		db:     db,
		movies: repository.NewMovieRepository(db),
		known:  gocache.New(time.Hour, 2*time.Hour),
		stats:  &Stats{},
	}
}

// Stats 返回运行统计
func (s *Service) Stats() *Stats {
	return s.stats
}

// Summary 单次运行汇总
type Summary struct {
	Total     int
	Processed int
	Succeeded int
	Failed    int
	Duration  time.Duration
}

// Run 执行一次完整抓取：收集 slug、逐条处理，条目间按 sleep 秒停顿
// limit > 0 时只处理前 limit 条；单条失败不中止整体
func (s *Service) Run(fromPage, toPage, limit, sleep int) Summary {
	start := time.Now()
	logger.Info().Int("from", fromPage).Int("to", toPage).Msg("开始抓取")

	slugs := s.CollectSlugs(fromPage, toPage)
	logger.Info().Int("count", len(slugs)).Msg("slug 收集完成")

	if limit > 0 && limit < len(slugs) {
		slugs = slugs[:limit]
		logger.Info().Int("limit", limit).Msg("限制处理数量")
	}

	s.stats.StartRun(len(slugs))
	defer s.stats.FinishRun()

	summary := Summary{Total: len(slugs)}
	for i, slug := range slugs {
		ok := s.ProcessMovie(slug)
		s.stats.ItemDone(ok)

		summary.Processed++
		if ok {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
		logger.Info().
			Int("progress", i+1).
			Int("total", len(slugs)).
			Str("slug", slug).
			Bool("created", ok).
			Msg("处理进度")

		// 条目间停顿，最后一条之后不再等待
		if sleep > 0 && i < len(slugs)-1 {
			time.Sleep(time.Duration(sleep) * time.Second)
		}
	}

	summary.Duration = time.Since(start)
	logger.Info().
		Int("processed", summary.Processed).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Dur("duration", summary.Duration).
		Msg("抓取完成")
	return summary
}

// ProcessMovie 处理单个 slug，返回是否新入库
// 已存在、详情获取失败、事务失败均返回 false，且不影响后续条目
func (s *Service) ProcessMovie(slug string) bool {
	if _, found := s.known.Get(slug); found {
		logger.Debug().Str("slug", slug).Msg("本次运行已确认存在，跳过")
		return false
	}

	exists, err := s.movies.ExistsBySlug(slug)
	if err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("存在性检查失败")
		return false
	}
	if exists {
		s.known.Set(slug, true, gocache.DefaultExpiration)
		logger.Info().Str("slug", slug).Msg("电影已存在，跳过")
		return false
	}

	env, err := s.api.MovieDetail(slug)
	if err != nil {
		logger.Warn().Err(err).Str("slug", slug).Msg("详情获取失败，跳过")
		return false
	}
	if env.Movie == nil {
		// 数据本身缺失，重试不会有不同结果
		logger.Warn().Str("slug", slug).Msg("详情缺少 movie 字段，跳过")
		return false
	}
	detail := env.Movie
	logger.Info().Str("name", detail.Name).Msg("开始处理电影")

	// 封面处理失败不阻断入库，只是无图
	imagePath := ""
	if detail.ThumbURL != "" {
		p, err := s.images.Process(detail.ThumbURL)
		if err != nil {
			logger.Warn().Err(err).Str("slug", slug).Msg("封面处理失败，无图入库")
		} else {
			imagePath = p
		}
	}

	movie := BuildMovie(detail, imagePath)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewMovieRepository(tx).Create(movie); err != nil {
			return fmt.Errorf("电影入库失败: %w", err)
		}
		if movie.ID == 0 {
			return errors.New("电影入库未返回 ID")
		}
		if err := linkActors(tx, movie.ID, detail.Actors); err != nil {
			return err
		}
		if err := linkCategories(tx, movie.ID, detail.Categories); err != nil {
			return err
		}
		if err := linkRegion(tx, movie.ID, detail.Country); err != nil {
			return err
		}
		if err := linkTags(tx, movie.ID, detail); err != nil {
			return err
		}
		return createEpisodes(tx, movie.ID, detail.Episodes)
	})
	if err != nil {
		logger.Error().Err(err).Str("slug", slug).Msg("电影处理失败，已回滚")
		return false
	}

	s.known.Set(slug, true, gocache.DefaultExpiration)
	logger.Info().Str("name", detail.Name).Uint("id", movie.ID).Msg("电影入库成功")
	return true
}

// linkActors 演员 find-or-create 并关联
func linkActors(tx *gorm.DB, movieID uint, actors []string) error {
	repo := repository.NewActorRepository(tx)
	for _, name := range actors {
		if name == "" {
			continue
		}
		slug := utils.Slugify(name)
		actor, err := repo.FindBySlug(slug)
		if err != nil {
			return err
		}
		if actor == nil {
			actor = &models.Actor{
				Name:    name,
				NameMD5: utils.MD5Hex(name),
				Slug:    slug,
				Gender:  "female",
			}
			if err := repo.Create(actor); err != nil {
				return err
			}
		}
		if err := repo.Link(movieID, actor.ID); err != nil {
			return err
		}
	}
	return nil
}

// linkCategories 分类 find-or-create 并关联，上游已带 slug
func linkCategories(tx *gorm.DB, movieID uint, categories []api.NameSlug) error {
	repo := repository.NewCategoryRepository(tx)
	for _, c := range categories {
		if c.Name == "" || c.Slug == "" {
			continue
		}
		category, err := repo.FindBySlug(c.Slug)
		if err != nil {
			return err
		}
		if category == nil {
			category = &models.Category{
				Name:     c.Name,
				Slug:     c.Slug,
				UserID:   1,
				UserName: "admin",
			}
			if err := repo.Create(category); err != nil {
				return err
			}
		}
		if err := repo.Link(movieID, category.ID); err != nil {
			return err
		}
	}
	return nil
}

// linkRegion 地区 find-or-create 并关联
func linkRegion(tx *gorm.DB, movieID uint, country *api.NameSlug) error {
	if country == nil || country.Name == "" || country.Slug == "" {
		return nil
	}
	repo := repository.NewRegionRepository(tx)
	region, err := repo.FindBySlug(country.Slug)
	if err != nil {
		return err
	}
	if region == nil {
		region = &models.Region{
			Name:     country.Name,
			Slug:     country.Slug,
			UserID:   1,
			UserName: "admin",
		}
		if err := repo.Create(region); err != nil {
			return err
		}
	}
	return repo.Link(movieID, region.ID)
}

// linkTags 合成标签并关联：厂牌编号一个，每位演员各一个
func linkTags(tx *gorm.DB, movieID uint, detail *api.MovieDetail) error {
	repo := repository.NewTagRepository(tx)

	names := make([]string, 0, len(detail.Actors)+1)
	if origin := ExtractOriginName(detail.Name); origin != "" {
		names = append(names, origin)
	}
	for _, actor := range detail.Actors {
		if actor != "" {
			names = append(names, actor)
		}
	}

	for _, name := range names {
		slug := utils.Slugify(name)
		tag, err := repo.FindBySlug(slug)
		if err != nil {
			return err
		}
		if tag == nil {
			tag = &models.Tag{
				Name:    name,
				NameMD5: utils.MD5Hex(name),
				Slug:    slug,
			}
			if err := repo.Create(tag); err != nil {
				return err
			}
		}
		if err := repo.Link(movieID, tag.ID); err != nil {
			return err
		}
	}
	return nil
}

// createEpisodes 展开 server -> server_data 结构，三要素齐全的叶子各成一行
func createEpisodes(tx *gorm.DB, movieID uint, groups []api.ServerGroup) error {
	repo := repository.NewMovieRepository(tx)
	for _, group := range groups {
		for _, ep := range group.ServerData {
			if ep.Name == "" || ep.Slug == "" || ep.Link == "" {
				continue
			}
			episode := &models.Episode{
				MovieID: movieID,
				Server:  group.ServerName,
				Name:    ep.Name,
				Slug:    ep.Slug,
				Type:    "embed",
				Link:    ep.Link,
			}
			if err := repo.CreateEpisode(episode); err != nil {
				return err
			}
		}
	}
	return nil
}
