// Package image 封面图处理管道
package image

import (
	"bytes"
	"fmt"
	stdimage "image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/namhuunam/xxvn-crawler-go/internal/config"
	"github.com/namhuunam/xxvn-crawler-go/internal/storage"
	"github.com/namhuunam/xxvn-crawler-go/pkg/logger"
	"golang.org/x/image/draw"
)

// Pipeline 封面图处理管道
// 下载、限界缩放、JPEG 重编码、存储与原地优化；每一步失败都只放弃图片本身
type Pipeline struct {
	httpClient *resty.Client
	storage    storage.Storage
	maxDim     int
	quality    int
	saveDir    string
}

// NewPipeline 创建图片处理管道
func NewPipeline(cfg *config.ImagesConfig, store storage.Storage) *Pipeline {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("User-Agent", "XxvnCrawler/1.0 Go")

	return &Pipeline{
		httpClient: client,
		storage:    store,
		maxDim:     cfg.MaxDimensions,
		quality:    cfg.Quality,
		saveDir:    cfg.SaveDirectory,
	}
}

// Process 下载并处理远端图片，返回存储后的对外路径
// 任意一步失败返回错误，调用方应继续处理电影本身（无图入库）
func (p *Pipeline) Process(rawURL string) (string, error) {
	filename := randomFilename(rawURL)
	relPath := path.Join(p.saveDir, filename)

	data, err := p.download(rawURL)
	if err != nil {
		return "", err
	}

	encoded, err := p.resizeAndEncode(data)
	if err != nil {
		return "", err
	}

	if err := p.storage.Put(relPath, encoded); err != nil {
		return "", fmt.Errorf("保存图片失败: %w", err)
	}

	// 原地优化已存储的文件，失败不影响结果
	p.optimize(relPath)

	return p.storage.URL(relPath), nil
}

// download 下载原始图片
func (p *Pipeline) download(rawURL string) ([]byte, error) {
	resp, err := p.httpClient.R().Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("下载图片失败: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode()).Str("url", rawURL).Msg("图片下载失败")
		return nil, fmt.Errorf("图片下载状态码 %d", resp.StatusCode())
	}
	return resp.Body(), nil
}

// resizeAndEncode 解码、限界缩放并以配置的质量重编码为 JPEG
func (p *Pipeline) resizeAndEncode(data []byte) ([]byte, error) {
	img, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解码图片失败: %w", err)
	}

	img = resize(img, p.maxDim)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		return nil, fmt.Errorf("编码 JPEG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// optimize 对已存储的文件做一次原地重编码，剥离元数据
func (p *Pipeline) optimize(relPath string) {
	data, err := p.storage.Read(relPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", relPath).Msg("图片优化读取失败")
		return
	}

	img, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Warn().Err(err).Str("path", relPath).Msg("图片优化解码失败")
		return
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
		logger.Warn().Err(err).Str("path", relPath).Msg("图片优化编码失败")
		return
	}

	if buf.Len() < len(data) {
		if err := p.storage.Put(relPath, buf.Bytes()); err != nil {
			logger.Warn().Err(err).Str("path", relPath).Msg("图片优化写回失败")
		}
	}
}

// resize 等比缩放，较长边不超过 max，小图不放大
func resize(img stdimage.Image, max int) stdimage.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if max <= 0 || (w <= max && h <= max) {
		return img
	}

	var nw, nh int
	if w >= h {
		nw = max
		nh = h * max / w
	} else {
		nh = max
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := stdimage.NewRGBA(stdimage.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// randomFilename 生成随机文件名，保留源 URL 的扩展名，缺省为 jpg
func randomFilename(rawURL string) string {
	ext := "jpg"
	if u, err := url.Parse(rawURL); err == nil {
		if e := strings.TrimPrefix(path.Ext(u.Path), "."); e != "" {
			ext = e
		}
	}
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	return name[:20] + "." + ext
}
