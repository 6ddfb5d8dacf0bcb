package inspector

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/h2non/filetype"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/afero"

	"github.com/moyu-x/organized-file/internal"
	"github.com/moyu-x/organized-file/pkg/classifier"
	"github.com/moyu-x/organized-file/pkg/logger"
	"github.com/moyu-x/organized-file/pkg/scanner"
)

// Result 单个文件的探测结果
type Result struct {
	Path     string
	Category string // 按扩展名确定的归档分类
	MIME     string // 按文件头探测到的 MIME 类型，未识别时为 "unknown"
	Detected bool   // 内容探测是否识别出类型
	Err      error
}

// Inspector 只读的目录预检：列出目录的直接子文件，
// 并给出整理时会使用的分类和按内容探测到的实际类型
// 探测通过 ants 工作池并发执行，整理流水线本身不受影响
type Inspector struct {
	fs      afero.Fs
	table   *classifier.Table
	scanner *scanner.FileScanner
	workers int
}

func New(fs afero.Fs, table *classifier.Table, workers int) *Inspector {
	if workers <= 0 {
		workers = internal.DefaultWorkers
	}
	return &Inspector{
		fs:      fs,
		table:   table,
		scanner: scanner.NewFileScanner(fs),
		workers: workers,
	}
}

// Inspect 探测 dir 中的所有直接子文件，结果按路径排序返回
// 不修改任何文件
func (i *Inspector) Inspect(dir string) ([]Result, error) {
	exists, err := afero.DirExists(i.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("检查目录失败: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("目录不存在: %s", dir)
	}

	pool, err := ants.NewPool(i.workers)
	if err != nil {
		return nil, fmt.Errorf("创建 goroutine 池失败: %w", err)
	}
	defer pool.Release()

	logger.Get().Debug().Msgf("启动类型探测，工作线程数: %d", i.workers)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []Result
	)

	scanErr := i.scanner.Scan(dir, func(path string, info os.FileInfo) error {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			result := i.sniffFile(path)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return fmt.Errorf("提交探测任务失败: %w", submitErr)
		}
		return nil
	})

	wg.Wait()

	if scanErr != nil {
		return nil, scanErr
	}

	sort.Slice(results, func(a, b int) bool { return results[a].Path < results[b].Path })
	return results, nil
}

// sniffFile 读取文件头部并用 filetype 探测实际类型
func (i *Inspector) sniffFile(path string) Result {
	result := Result{
		Path:     path,
		Category: i.table.ClassifyPath(path),
		MIME:     "unknown",
	}

	head, err := i.readFileHeader(path, internal.FileHeaderSize)
	if err != nil {
		result.Err = err
		return result
	}

	kind, err := filetype.Match(head)
	if err != nil {
		result.Err = fmt.Errorf("检测文件类型失败: %w", err)
		return result
	}

	if kind != filetype.Unknown {
		result.MIME = kind.MIME.Value
		result.Detected = true
	}

	return result
}

// readFileHeader 读取文件的前 size 个字节
func (i *Inspector) readFileHeader(path string, size int) ([]byte, error) {
	file, err := i.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	head := make([]byte, size)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("读取文件头部失败: %w", err)
	}

	return head[:n], nil
}
