// Package crawler 字段归一化测试
package crawler

import (
	"testing"
	"time"

	"github.com/namhuunam/xxvn-crawler-go/internal/api"
)

func TestExtractOriginName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"厂牌编号前缀", "MEYD-967_Some Title", "MEYD-967"},
		{"无下划线编号", "Plain Title", "Plain Title"},
		{"纯数字编号", "123456_Title", "123456"},
		{"小写前缀不匹配", "meyd-967_Title", "meyd-967_Title"},
		{"下划线开头", "_Title", "_Title"},
		{"空字符串", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractOriginName(tt.input); got != tt.expected {
				t.Errorf("ExtractOriginName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildMovie_Defaults(t *testing.T) {
	detail := &api.MovieDetail{
		Slug: "meyd-967",
		Name: "MEYD-967_Some Title",
	}

	movie := BuildMovie(detail, "")

	if movie.OriginName != "MEYD-967" {
		t.Errorf("OriginName = %q", movie.OriginName)
	}
	if movie.Content != "<p></p>" {
		t.Errorf("缺失的 content 应包裹为空段落，实际 %q", movie.Content)
	}
	if movie.Type != "single" {
		t.Errorf("Type 默认值应为 single，实际 %q", movie.Type)
	}
	if movie.Status != "completed" {
		t.Errorf("Status 默认值应为 completed，实际 %q", movie.Status)
	}
	if movie.Quality != "HD" {
		t.Errorf("Quality 默认值应为 HD，实际 %q", movie.Quality)
	}
	if movie.Language != "Vietsub" {
		t.Errorf("缺失的 lang 应回退 Vietsub，实际 %q", movie.Language)
	}
	if movie.EpisodeCurrent != "Full" || movie.EpisodeTotal != "1" {
		t.Errorf("剧集字段应为 Full/1，实际 %q/%q", movie.EpisodeCurrent, movie.EpisodeTotal)
	}
	if movie.ThumbURL != nil || movie.PosterURL != nil {
		t.Error("无图时 thumb/poster 应为 nil")
	}
	if movie.UpdateIdentity != nil {
		t.Error("无上游 id 时 update_identity 应为 nil")
	}
	if movie.UserID != 1 || movie.UserName != "admin" {
		t.Errorf("归属字段不正确: %d/%q", movie.UserID, movie.UserName)
	}
	if movie.ViewTotal != 0 || movie.RatingCount != 0 || movie.IsRecommended {
		t.Error("互动统计应全部置零")
	}
}

func TestBuildMovie_ExplicitValues(t *testing.T) {
	lang := ""
	detail := &api.MovieDetail{
		ID:      api.Identity("9981"),
		Slug:    "phim-x",
		Name:    "Phim X",
		Content: "mô tả",
		Type:    "series",
		Status:  "ongoing",
		Time:    "120 phút",
		Quality: "FHD",
		Lang:    &lang,
	}

	movie := BuildMovie(detail, "/storage/movies/abc.jpg")

	if movie.Content != "<p>mô tả</p>" {
		t.Errorf("Content = %q", movie.Content)
	}
	if movie.Type != "series" || movie.Status != "ongoing" || movie.Quality != "FHD" {
		t.Error("显式字段不应被默认值覆盖")
	}
	// 显式空 lang 保留，不回退 Vietsub
	if movie.Language != "" {
		t.Errorf("显式空 lang 应保留，实际 %q", movie.Language)
	}
	if movie.EpisodeTime != "120 phút" {
		t.Errorf("EpisodeTime = %q", movie.EpisodeTime)
	}
	if movie.ThumbURL == nil || *movie.ThumbURL != "/storage/movies/abc.jpg" {
		t.Error("thumb_url 应为处理后的本地路径")
	}
	if movie.PosterURL == nil || *movie.PosterURL != "/storage/movies/abc.jpg" {
		t.Error("poster_url 与 thumb_url 共用同一路径")
	}
	if movie.UpdateIdentity == nil || *movie.UpdateIdentity != "9981" {
		t.Error("update_identity 应保存上游 id")
	}
}

func TestBuildMovie_PublishYear(t *testing.T) {
	// publish_year 固定取入库当年，与上游任何年份字段无关
	movie := BuildMovie(&api.MovieDetail{Slug: "a", Name: "A"}, "")
	if movie.PublishYear != time.Now().Year() {
		t.Errorf("PublishYear = %d, want %d", movie.PublishYear, time.Now().Year())
	}
}
