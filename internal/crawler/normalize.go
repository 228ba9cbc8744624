// Package crawler 抓取-转换-入库管道
package crawler

import (
	"regexp"
	"time"

	"github.com/namhuunam/xxvn-crawler-go/internal/api"
	"github.com/namhuunam/xxvn-crawler-go/internal/database/models"
)

// 片名开头的厂牌编号，如 "MEYD-967_Some Title" 中的 "MEYD-967"
var originNamePattern = regexp.MustCompile(`^([A-Z0-9\-]+)_`)

// ExtractOriginName 从完整片名中提取厂牌编号，无编号时原样返回
func ExtractOriginName(fullName string) string {
	if m := originNamePattern.FindStringSubmatch(fullName); m != nil {
		return m[1]
	}
	return fullName
}

// BuildMovie 将上游详情归一化为电影记录
// imagePath 为空表示无封面；publish_year 固定取入库当年，与上游字段无关（沿用源站行为）
func BuildMovie(detail *api.MovieDetail, imagePath string) *models.Movie {
	movie := &models.Movie{
		Name:           detail.Name,
		OriginName:     ExtractOriginName(detail.Name),
		Slug:           detail.Slug,
		Content:        "<p>" + detail.Content + "</p>",
		Type:           defaultString(detail.Type, "single"),
		Status:         defaultString(detail.Status, "completed"),
		EpisodeTime:    detail.Time,
		EpisodeCurrent: "Full",
		EpisodeTotal:   "1",
		Quality:        defaultString(detail.Quality, "HD"),
		PublishYear:    time.Now().Year(),
		UserID:         1,
		UserName:       "admin",
	}

	// lang 键缺失才回退 Vietsub，显式空值保留
	if detail.Lang == nil {
		movie.Language = "Vietsub"
	} else {
		movie.Language = *detail.Lang
	}

	if imagePath != "" {
		movie.ThumbURL = &imagePath
		movie.PosterURL = &imagePath
	}

	if id := detail.ID.String(); id != "" {
		movie.UpdateIdentity = &id
	}

	return movie
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
