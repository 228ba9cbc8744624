package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// MD5Hex 计算字符串的 MD5 十六进制摘要
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
