// Package image 图片管道测试
package image

import (
	"bytes"
	stdimage "image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/namhuunam/xxvn-crawler-go/internal/config"
	"github.com/namhuunam/xxvn-crawler-go/internal/storage"
)

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestResize_CapsLargerDimension(t *testing.T) {
	// 1000x400，最长边限制 500 -> 500x200
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 1000, 400))
	got := resize(img, 500)

	bounds := got.Bounds()
	if bounds.Dx() != 500 || bounds.Dy() != 200 {
		t.Errorf("缩放结果应为 500x200，实际 %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestResize_PortraitOrientation(t *testing.T) {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 400, 1000))
	got := resize(img, 500)

	bounds := got.Bounds()
	if bounds.Dx() != 200 || bounds.Dy() != 500 {
		t.Errorf("竖图缩放结果应为 200x500，实际 %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestResize_NeverUpscales(t *testing.T) {
	// 300x200 小于限制，保持原尺寸
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 300, 200))
	got := resize(img, 500)

	if got != stdimage.Image(img) {
		t.Error("小图不应被放大或重绘")
	}
}

func newTestPipeline(t *testing.T) (*Pipeline, *storage.LocalDisk) {
	t.Helper()
	disk := storage.NewLocalDisk(t.TempDir())
	cfg := &config.ImagesConfig{
		MaxDimensions: 500,
		Quality:       85,
		SaveDirectory: "movies",
	}
	return NewPipeline(cfg, disk), disk
}

func TestPipeline_Process(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(testJPEG(t, 1000, 400))
	}))
	defer srv.Close()

	pipeline, disk := newTestPipeline(t)

	got, err := pipeline.Process(srv.URL + "/cover.jpg")
	if err != nil {
		t.Fatalf("Process() 失败: %v", err)
	}

	if !strings.HasPrefix(got, "/storage/movies/") {
		t.Errorf("返回路径前缀不正确: %s", got)
	}
	if !strings.HasSuffix(got, ".jpg") {
		t.Errorf("应保留源扩展名: %s", got)
	}

	// 存储的文件已按限界缩放
	data, err := disk.Read(strings.TrimPrefix(got, "/storage/"))
	if err != nil {
		t.Fatalf("读取已存储文件失败: %v", err)
	}
	img, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("已存储文件不是有效图片: %v", err)
	}
	if img.Bounds().Dx() != 500 || img.Bounds().Dy() != 200 {
		t.Errorf("存储的图片应为 500x200，实际 %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestPipeline_Process_DefaultExtension(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(testJPEG(t, 100, 100))
	}))
	defer srv.Close()

	pipeline, _ := newTestPipeline(t)

	// URL 无扩展名时缺省为 jpg
	got, err := pipeline.Process(srv.URL + "/cover")
	if err != nil {
		t.Fatalf("Process() 失败: %v", err)
	}
	if !strings.HasSuffix(got, ".jpg") {
		t.Errorf("缺省扩展名应为 jpg: %s", got)
	}
}

func TestPipeline_Process_DownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	pipeline, _ := newTestPipeline(t)

	if _, err := pipeline.Process(srv.URL + "/missing.jpg"); err == nil {
		t.Error("非 200 响应应返回错误")
	}
}

func TestPipeline_Process_InvalidImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	pipeline, _ := newTestPipeline(t)

	if _, err := pipeline.Process(srv.URL + "/bad.jpg"); err == nil {
		t.Error("无法解码的内容应返回错误")
	}
}
