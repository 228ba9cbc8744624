// Package storage 图片存储后端
package storage

import (
	"os"
	"path"
	"path/filepath"
)

// Storage 存储后端接口
// 相对路径形如 movies/abc.jpg，URL 返回对外可见的访问路径
type Storage interface {
	Put(relPath string, data []byte) error
	Read(relPath string) ([]byte, error)
	URL(relPath string) string
}

// LocalDisk 本地磁盘存储
type LocalDisk struct {
	root string
}

// NewLocalDisk 创建本地磁盘存储，root 为存储根目录
func NewLocalDisk(root string) *LocalDisk {
	return &LocalDisk{root: root}
}

// Put 写入文件，自动创建父目录
func (d *LocalDisk) Put(relPath string, data []byte) error {
	full := filepath.Join(d.root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0644)
}

// Read 读取文件内容
func (d *LocalDisk) Read(relPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.root, filepath.FromSlash(relPath)))
}

// URL 返回对外访问路径，如 /storage/movies/abc.jpg
func (d *LocalDisk) URL(relPath string) string {
	return "/storage/" + path.Clean(relPath)
}
