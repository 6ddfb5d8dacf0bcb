package internal

const (
	// 配置文件默认路径
	DefaultConfigPath = "~/.organized-file/config.yaml"

	// 哈希计算时的读取块大小（字节）
	HashBufferSize = 4096

	// 文件类型检测所需的文件头部大小（字节）
	FileHeaderSize = 261

	// 类型检测默认工作线程数
	DefaultWorkers = 4

	// 进度通道缓冲区大小
	DefaultBufferSize = 100

	// OtherCategory 未匹配扩展名的兜底分类
	OtherCategory = "Other"
)
