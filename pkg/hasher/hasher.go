package hasher

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"

	"github.com/moyu-x/organized-file/internal"
	"github.com/moyu-x/organized-file/pkg/logger"
)

// CalculateHash 流式计算文件内容的 xxHash 哈希值
// 以固定大小的块读取文件，返回定长十六进制字符串
// 文件无法打开或读取时返回 I/O 错误，由调用方记录为单文件错误
func CalculateHash(fs afero.Fs, filePath string) (string, error) {
	logger.Get().Debug().Msgf("计算文件哈希: %s", filePath)

	file, err := fs.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	h := xxhash.New()
	buf := make([]byte, internal.HashBufferSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			// xxhash 的 Write 永远不会返回错误
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("读取文件失败: %w", err)
		}
	}

	result := fmt.Sprintf("%016x", h.Sum64())
	logger.Get().Trace().Msgf("文件哈希计算完成: %s -> %s", filePath, result)
	return result, nil
}
