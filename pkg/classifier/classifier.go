package classifier

import (
	"path/filepath"
	"strings"

	"github.com/moyu-x/organized-file/internal"
)

// Category 一个分类条目：分类名加上它包含的扩展名集合
// 扩展名统一为小写并带前导点
type Category struct {
	Name string
	exts map[string]struct{}
}

// Table 有序的分类表，启动时构建一次，运行期间只读
// 查找按声明顺序线性扫描，第一个命中的分类生效
type Table struct {
	categories []Category
}

// Entry 构建分类表时的一个条目
type Entry struct {
	Name string
	Exts []string
}

// NewTable 按给定顺序构建分类表
// entries 中的扩展名必须已经是小写且带前导点
func NewTable(entries []Entry) *Table {
	table := &Table{}
	for _, entry := range entries {
		exts := make(map[string]struct{}, len(entry.Exts))
		for _, ext := range entry.Exts {
			exts[ext] = struct{}{}
		}
		table.categories = append(table.categories, Category{Name: entry.Name, exts: exts})
	}
	return table
}

// Default 返回内置的分类表
func Default() *Table {
	return NewTable([]Entry{
		{"Documents", []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
			".txt", ".rtf", ".odt", ".ods", ".odp", ".md", ".csv"}},
		{"Images", []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg",
			".tiff", ".ico", ".heic"}},
		{"Videos", []string{".mp4", ".mkv", ".mov", ".webm", ".avi", ".wmv", ".mpg",
			".flv", ".3gp", ".rmvb", ".ts"}},
		{"Audio", []string{".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a", ".wma", ".opus"}},
		{"Archives", []string{".zip", ".tar", ".gz", ".bz2", ".rar", ".7z", ".xz", ".zst"}},
		{"Code", []string{".go", ".py", ".js", ".c", ".cpp", ".h", ".java", ".rs",
			".sh", ".rb", ".html", ".css", ".json", ".yaml", ".yml", ".toml", ".sql"}},
	})
}

// Classify 根据扩展名返回分类名
// 扩展名比较不区分大小写；空扩展名或未匹配时返回 "Other"
func (t *Table) Classify(ext string) string {
	if ext == "" {
		return internal.OtherCategory
	}

	lowered := strings.ToLower(ext)
	for _, category := range t.categories {
		if _, ok := category.exts[lowered]; ok {
			return category.Name
		}
	}

	return internal.OtherCategory
}

// ClassifyPath 根据文件路径的扩展名返回分类名
// "archive.tar.gz" 这类文件只取最后一段扩展名（.gz）
func (t *Table) ClassifyPath(path string) string {
	return t.Classify(filepath.Ext(path))
}

// Names 按声明顺序返回全部分类名，"Other" 固定在最后
// reporter 依赖该顺序输出分类统计
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.categories)+1)
	for _, category := range t.categories {
		names = append(names, category.Name)
	}
	return append(names, internal.OtherCategory)
}
