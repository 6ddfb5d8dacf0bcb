package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/moyu-x/organized-file/pkg/logger"
)

// FileScanner 枚举单个目录的直接子项，不递归进入子目录
type FileScanner struct {
	Fs afero.Fs
}

func NewFileScanner(fs afero.Fs) *FileScanner {
	return &FileScanner{Fs: fs}
}

// Scan 遍历 dir 的直接子项，对每个普通文件调用 callback
// 子目录直接跳过；callback 返回错误时中止遍历
func (s *FileScanner) Scan(dir string, callback func(path string, info os.FileInfo) error) error {
	entries, err := afero.ReadDir(s.Fs, dir)
	if err != nil {
		return fmt.Errorf("读取目录失败: %w", err)
	}

	for _, info := range entries {
		if info.IsDir() {
			continue
		}

		if err := callback(filepath.Join(dir, info.Name()), info); err != nil {
			return err
		}
	}

	return nil
}

// CountFiles 统计目录中普通文件的数量（不含子目录）
func (s *FileScanner) CountFiles(dir string) (int, error) {
	count := 0
	err := s.Scan(dir, func(path string, info os.FileInfo) error {
		count++
		return nil
	})
	if err != nil {
		logger.Get().Error().Err(err).Msgf("扫描目录失败: %s", dir)
		return 0, err
	}

	logger.Get().Debug().Msgf("目录扫描完成，共找到 %d 个文件: %s", count, dir)
	return count, nil
}
