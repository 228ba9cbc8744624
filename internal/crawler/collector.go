package crawler

import (
	"github.com/namhuunam/xxvn-crawler-go/pkg/logger"
)

// CollectSlugs 从 from 页倒序走到 to 页（含），收集所有非空 slug
// 方向固定为降序，from 应不小于 to；单页失败只跳过该页；此处不做去重
func (s *Service) CollectSlugs(fromPage, toPage int) []string {
	var slugs []string

	for page := fromPage; page >= toPage; page-- {
		logger.Info().Int("page", page).Msg("抓取列表页")

		env, err := s.api.MoviesPage(page)
		if err != nil {
			logger.Warn().Err(err).Int("page", page).Msg("列表页抓取失败，跳过")
			continue
		}
		if len(env.Movies) == 0 {
			logger.Warn().Int("page", page).Msg("列表页无数据，跳过")
			continue
		}

		for _, m := range env.Movies {
			if m.Slug != "" {
				slugs = append(slugs, m.Slug)
			}
		}

		logger.Info().Int("page", page).Int("collected", len(slugs)).Msg("累计收集 slug")
	}

	return slugs
}
