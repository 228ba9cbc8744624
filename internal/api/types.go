// Package api 上游 API 客户端
package api

import (
	"bytes"
	"encoding/json"
)

// Envelope 上游统一响应结构
// 列表接口填充 Movies，详情接口填充 Movie
type Envelope struct {
	Status bool         `json:"status"`
	Msg    string       `json:"msg"`
	Movies []ListMovie  `json:"movies"`
	Movie  *MovieDetail `json:"movie"`
}

// ListMovie 列表接口中的电影条目
type ListMovie struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// MovieDetail 详情接口中的完整电影记录
// Lang 使用指针以区分"字段缺失"与"显式空值"
type MovieDetail struct {
	ID         Identity      `json:"id"`
	Slug       string        `json:"slug"`
	Name       string        `json:"name"`
	Content    string        `json:"content"`
	ThumbURL   string        `json:"thumb_url"`
	Type       string        `json:"type"`
	Status     string        `json:"status"`
	Time       string        `json:"time"`
	Quality    string        `json:"quality"`
	Lang       *string       `json:"lang"`
	Actors     []string      `json:"actors"`
	Categories []NameSlug    `json:"categories"`
	Country    *NameSlug     `json:"country"`
	Episodes   []ServerGroup `json:"episodes"`
}

// NameSlug 名称-slug 对
type NameSlug struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ServerGroup 单个播放源及其剧集列表
type ServerGroup struct {
	ServerName string        `json:"server_name"`
	ServerData []EpisodeData `json:"server_data"`
}

// EpisodeData 单集数据
type EpisodeData struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Link string `json:"link"`
}

// Identity 上游条目标识，数字或字符串均可解码，统一存为字符串
type Identity string

// UnmarshalJSON 兼容数字与字符串两种形式
func (i *Identity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = Identity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = Identity(n.String())
	return nil
}

// String 返回字符串形式
func (i Identity) String() string {
	return string(i)
}
