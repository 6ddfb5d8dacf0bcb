package internal

import "time"

// RunStats 单次整理运行的统计信息
// 整个运行过程中增量更新，结束时由 reporter 输出一次
type RunStats struct {
	TotalFiles int            // 扫描到的文件总数（不含子目录）
	Moved      int            // 已移动（或预览模式下将要移动）的文件数
	Duplicates int            // 检测到并删除的重复文件数
	Errors     int            // 单文件处理错误数
	Categories map[string]int // 每个分类下归档的文件数
	FreedSpace int64          // 删除重复文件释放的空间（字节）
	StartTime  time.Time
	EndTime    time.Time
}

// NewRunStats 创建空的统计记录
func NewRunStats() *RunStats {
	return &RunStats{
		Categories: make(map[string]int),
		StartTime:  time.Now(),
	}
}

// 进度更新
type ProgressUpdate struct {
	Processed   int
	Moved       int
	Duplicates  int
	Errors      int
	CurrentFile string
}
