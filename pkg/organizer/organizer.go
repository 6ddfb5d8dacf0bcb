package organizer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/moyu-x/organized-file/internal"
	"github.com/moyu-x/organized-file/pkg/classifier"
	"github.com/moyu-x/organized-file/pkg/hasher"
	"github.com/moyu-x/organized-file/pkg/logger"
	"github.com/moyu-x/organized-file/pkg/scanner"
)

// Options 整理运行的开关
type Options struct {
	// DryRun 预览模式：统计和日志照常产生，但不触碰文件系统
	DryRun bool
	// RemoveDuplicates 基于内容哈希检测并删除本次运行中的重复文件
	RemoveDuplicates bool
	// Progress 可选的进度通道，每处理一个文件发送一次更新
	Progress chan<- internal.ProgressUpdate
}

// Organizer 整理器：枚举源目录的直接子文件，按扩展名分类后移动到
// 同名分类子目录，可选地删除内容重复的文件
// 整个流程在单个 goroutine 中顺序执行
type Organizer struct {
	fs      afero.Fs
	table   *classifier.Table
	scanner *scanner.FileScanner
	opts    Options

	// seen 本次运行中已出现的内容哈希，不跨运行持久化
	seen  map[string]bool
	stats *internal.RunStats
}

func New(fs afero.Fs, table *classifier.Table, opts Options) *Organizer {
	return &Organizer{
		fs:      fs,
		table:   table,
		scanner: scanner.NewFileScanner(fs),
		opts:    opts,
	}
}

// Organize 整理 sourceDir 中的文件并返回运行统计
// 源目录不存在时立即失败，不产生任何副作用；
// 单个文件的处理失败只计入 Errors，不会中止运行
func (o *Organizer) Organize(sourceDir string) (*internal.RunStats, error) {
	exists, err := afero.DirExists(o.fs, sourceDir)
	if err != nil {
		return nil, fmt.Errorf("检查源目录失败: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("源目录不存在: %s", sourceDir)
	}

	o.seen = make(map[string]bool)
	o.stats = internal.NewRunStats()

	if o.opts.DryRun {
		logger.Get().Info().Msg("=== 预览模式，不会实际修改文件 ===")
	}

	err = o.scanner.Scan(sourceDir, func(path string, info os.FileInfo) error {
		o.stats.TotalFiles++

		if err := o.processFile(sourceDir, path, info); err != nil {
			o.stats.Errors++
			logger.Get().Error().Err(err).Str("file", path).Msg("处理文件失败")
		}

		o.notifyProgress(path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("遍历源目录失败: %w", err)
	}

	o.stats.EndTime = time.Now()
	return o.stats, nil
}

// processFile 处理单个文件：分类、可选哈希去重、移动
// 返回错误表示该文件处理失败，由调用方计数后继续
func (o *Organizer) processFile(sourceDir, path string, info os.FileInfo) error {
	category := o.table.ClassifyPath(path)

	if o.opts.RemoveDuplicates {
		hash, err := hasher.CalculateHash(o.fs, path)
		if err != nil {
			return fmt.Errorf("计算文件哈希失败: %w", err)
		}

		if o.seen[hash] {
			return o.removeDuplicate(path, info, hash)
		}

		// 先登记哈希再移动：即使后续移动失败，该内容在本次运行中也已占位
		o.seen[hash] = true
	}

	destDir := filepath.Join(sourceDir, category)
	destPath := filepath.Join(destDir, filepath.Base(path))

	if !o.opts.DryRun {
		if err := o.fs.MkdirAll(destDir, 0755); err != nil {
			return fmt.Errorf("创建分类目录失败: %w", err)
		}

		// 目标位置同名文件会被静默覆盖
		if err := o.moveFile(path, destPath); err != nil {
			return fmt.Errorf("移动文件失败: %w", err)
		}
	}

	// 预览模式下统计照常更新，只是没有真实移动
	o.stats.Moved++
	o.stats.Categories[category]++

	if o.opts.DryRun {
		logger.Get().Info().Msgf("[预览] 移动: %s -> %s/", filepath.Base(path), category)
	} else {
		logger.Get().Info().Msgf("移动: %s -> %s/", filepath.Base(path), category)
	}

	return nil
}

// removeDuplicate 处理哈希已出现过的文件
// 删除失败计为错误而不是重复，保证各计数互斥
func (o *Organizer) removeDuplicate(path string, info os.FileInfo, hash string) error {
	if !o.opts.DryRun {
		if err := o.fs.Remove(path); err != nil {
			return fmt.Errorf("删除重复文件失败: %w", err)
		}
	}

	o.stats.Duplicates++
	o.stats.FreedSpace += info.Size()

	if o.opts.DryRun {
		logger.Get().Info().Msgf("[预览] 发现重复: %s (哈希: %s)", path, hash)
	} else {
		logger.Get().Info().Msgf("发现重复: %s (已删除, 哈希: %s)", path, hash)
	}

	return nil
}

// moveFile 将文件移动到目标路径
// Rename 被拒绝时退回到复制加删除；两条路径都会覆盖已存在的目标文件
func (o *Organizer) moveFile(src, dst string) error {
	if err := o.fs.Rename(src, dst); err == nil {
		return nil
	}

	sourceFile, err := o.fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := o.fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := o.fs.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}

	return nil
}

func (o *Organizer) notifyProgress(currentFile string) {
	if o.opts.Progress == nil {
		return
	}

	o.opts.Progress <- internal.ProgressUpdate{
		Processed:   o.stats.TotalFiles,
		Moved:       o.stats.Moved,
		Duplicates:  o.stats.Duplicates,
		Errors:      o.stats.Errors,
		CurrentFile: currentFile,
	}
}
