package storage

import (
	"context"
	"errors"
	"mime"
	"path"
	"strconv"
	"strings"
	"time"
)

// objectKey 生成按日期归档的对象键：<prefix>/<category>/YYYY/MM/DD/<name>.<ext>。
// 各段先做白名单清洗，避免用户输入进入路径。
func objectKey(prefix string, opts SaveOptions) string {
	category := cleanSegment(opts.Category)
	if category == "" {
		category = "misc"
	}

	now := time.Now().UTC()
	base := fileBase(opts.BaseName)
	if base == "" {
		base = strconv.FormatInt(now.UnixNano(), 10)
	}

	key := path.Join(category, now.Format("2006/01/02"), base+"."+fileExtension(opts.Extension))
	if prefix != "" {
		key = path.Join(prefix, key)
	}
	return key
}

// ensurePayload 各后端写入前的公共检查：负载非空且上下文未取消
func ensurePayload(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return errors.New("empty payload")
	}
	return ctx.Err()
}

// cleanSegment 小写化并只保留字母、数字、连字符和下划线
func cleanSegment(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, strings.TrimSpace(value))
}

func fileExtension(ext string) string {
	cleaned := cleanSegment(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if cleaned == "" {
		return "bin"
	}
	return cleaned
}

func fileBase(value string) string {
	cleaned := cleanSegment(strings.ReplaceAll(strings.TrimSpace(value), " ", "-"))
	return strings.Trim(cleaned, "-_")
}

func contentTypeFor(ext string) string {
	if ct := mime.TypeByExtension("." + fileExtension(ext)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func cleanPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

// SanitizeToken lowercases the provided token and keeps alphanumeric, dash, and underscore characters only.
func SanitizeToken(value string) string {
	return cleanSegment(value)
}
