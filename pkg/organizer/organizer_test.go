package organizer

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/moyu-x/organized-file/internal"
	"github.com/moyu-x/organized-file/pkg/classifier"
)

func newSourceFs(t *testing.T, files map[string][]byte) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()

	if err := fs.MkdirAll("/src", 0755); err != nil {
		t.Fatalf("Failed to create source dir: %v", err)
	}
	for name, content := range files {
		if err := afero.WriteFile(fs, "/src/"+name, content, 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", name, err)
		}
	}

	return fs
}

func mustExist(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Exists(%s) error = %v", path, err)
	}
	if !ok {
		t.Errorf("Expected %s to exist", path)
	}
}

func mustNotExist(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Exists(%s) error = %v", path, err)
	}
	if ok {
		t.Errorf("Expected %s to not exist", path)
	}
}

func TestOrganize_MovesByCategory(t *testing.T) {
	fs := newSourceFs(t, map[string][]byte{
		"notes.txt": []byte("notes"),
		"photo.jpg": []byte("jpeg bytes"),
		"song.mp3":  []byte("audio bytes"),
		"noext":     []byte("no extension"),
	})

	org := New(fs, classifier.Default(), Options{})
	stats, err := org.Organize("/src")
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	mustExist(t, fs, "/src/Documents/notes.txt")
	mustExist(t, fs, "/src/Images/photo.jpg")
	mustExist(t, fs, "/src/Audio/song.mp3")
	mustExist(t, fs, "/src/Other/noext")
	mustNotExist(t, fs, "/src/notes.txt")

	if stats.TotalFiles != 4 || stats.Moved != 4 || stats.Duplicates != 0 || stats.Errors != 0 {
		t.Errorf("stats = %+v, want total=4 moved=4 duplicates=0 errors=0", stats)
	}

	if stats.Categories["Documents"] != 1 || stats.Categories["Images"] != 1 ||
		stats.Categories["Audio"] != 1 || stats.Categories["Other"] != 1 {
		t.Errorf("category counts = %v", stats.Categories)
	}
}

// 规范场景：a.txt、b.jpg 和与 b.jpg 内容相同的 c.jpg
func TestOrganize_DuplicateScenario(t *testing.T) {
	jpeg := []byte("identical jpeg content")
	fs := newSourceFs(t, map[string][]byte{
		"a.txt": []byte("text content"),
		"b.jpg": jpeg,
		"c.jpg": jpeg,
	})

	org := New(fs, classifier.Default(), Options{RemoveDuplicates: true})
	stats, err := org.Organize("/src")
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	mustExist(t, fs, "/src/Documents/a.txt")
	mustExist(t, fs, "/src/Images/b.jpg")
	mustNotExist(t, fs, "/src/c.jpg")
	mustNotExist(t, fs, "/src/Images/c.jpg")

	if stats.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", stats.TotalFiles)
	}
	if stats.Moved != 2 {
		t.Errorf("Moved = %d, want 2", stats.Moved)
	}
	if stats.Duplicates != 1 {
		t.Errorf("Duplicates = %d, want 1", stats.Duplicates)
	}
	if stats.Errors != 0 {
		t.Errorf("Errors = %d, want 0", stats.Errors)
	}

	if stats.Categories["Documents"] != 1 || stats.Categories["Images"] != 1 {
		t.Errorf("category counts = %v, want Documents:1 Images:1", stats.Categories)
	}
	// 重复文件不计入分类统计
	total := 0
	for _, count := range stats.Categories {
		total += count
	}
	if total != 2 {
		t.Errorf("sum of category counts = %d, want 2", total)
	}

	if stats.FreedSpace != int64(len(jpeg)) {
		t.Errorf("FreedSpace = %d, want %d", stats.FreedSpace, len(jpeg))
	}
}

// 枚举顺序由受控的文件名固定：MemMapFs 按名称排序枚举
func TestOrganize_FirstOccurrenceSurvives(t *testing.T) {
	content := []byte("same bytes")
	fs := newSourceFs(t, map[string][]byte{
		"aaa.png": content,
		"zzz.png": content,
	})

	org := New(fs, classifier.Default(), Options{RemoveDuplicates: true})
	stats, err := org.Organize("/src")
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	mustExist(t, fs, "/src/Images/aaa.png")
	mustNotExist(t, fs, "/src/zzz.png")
	mustNotExist(t, fs, "/src/Images/zzz.png")

	if stats.Duplicates != 1 || stats.Moved != 1 {
		t.Errorf("stats = %+v, want moved=1 duplicates=1", stats)
	}
}

func TestOrganize_DryRunNoMutation(t *testing.T) {
	jpeg := []byte("same jpeg")
	fs := newSourceFs(t, map[string][]byte{
		"a.txt": []byte("text"),
		"b.jpg": jpeg,
		"c.jpg": jpeg,
	})

	org := New(fs, classifier.Default(), Options{DryRun: true, RemoveDuplicates: true})
	stats, err := org.Organize("/src")
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	// 文件系统不变
	mustExist(t, fs, "/src/a.txt")
	mustExist(t, fs, "/src/b.jpg")
	mustExist(t, fs, "/src/c.jpg")
	mustNotExist(t, fs, "/src/Documents")
	mustNotExist(t, fs, "/src/Images")

	// 统计与真实运行一致
	if stats.TotalFiles != 3 || stats.Moved != 2 || stats.Duplicates != 1 || stats.Errors != 0 {
		t.Errorf("dry-run stats = %+v, want total=3 moved=2 duplicates=1 errors=0", stats)
	}
}

func TestOrganize_DryRunIdempotent(t *testing.T) {
	fs := newSourceFs(t, map[string][]byte{
		"a.txt": []byte("text"),
		"b.jpg": []byte("image"),
	})

	run := func() *internal.RunStats {
		org := New(fs, classifier.Default(), Options{DryRun: true, RemoveDuplicates: true})
		stats, err := org.Organize("/src")
		if err != nil {
			t.Fatalf("Organize() error = %v", err)
		}
		return stats
	}

	first := run()
	second := run()

	if first.TotalFiles != second.TotalFiles ||
		first.Moved != second.Moved ||
		first.Duplicates != second.Duplicates ||
		first.Errors != second.Errors {
		t.Errorf("dry-run not idempotent: first=%+v second=%+v", first, second)
	}
}

func TestOrganize_MissingSourceDir(t *testing.T) {
	fs := afero.NewMemMapFs()

	org := New(fs, classifier.Default(), Options{})
	stats, err := org.Organize("/does/not/exist")

	if err == nil {
		t.Fatal("Expected error for missing source directory")
	}
	if stats != nil {
		t.Errorf("Expected nil stats, got %+v", stats)
	}

	// 没有任何副作用
	mustNotExist(t, fs, "/does/not/exist")
}

func TestOrganize_OverwritesExistingDestination(t *testing.T) {
	fs := newSourceFs(t, map[string][]byte{
		"a.txt": []byte("new content"),
	})
	if err := afero.WriteFile(fs, "/src/Documents/a.txt", []byte("old content"), 0644); err != nil {
		t.Fatalf("Failed to create pre-existing destination: %v", err)
	}

	org := New(fs, classifier.Default(), Options{})
	stats, err := org.Organize("/src")
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}

	// 同名目标文件被静默覆盖
	got, err := afero.ReadFile(fs, "/src/Documents/a.txt")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "new content" {
		t.Errorf("destination content = %q, want %q", got, "new content")
	}

	mustNotExist(t, fs, "/src/a.txt")

	if stats.Moved != 1 || stats.Errors != 0 {
		t.Errorf("stats = %+v, want moved=1 errors=0", stats)
	}
}

func TestOrganize_PerFileErrorsContinue(t *testing.T) {
	base := newSourceFs(t, map[string][]byte{
		"a.txt": []byte("one"),
		"b.jpg": []byte("two"),
	})
	// 只读文件系统让每次移动都失败
	fs := afero.NewReadOnlyFs(base)

	org := New(fs, classifier.Default(), Options{})
	stats, err := org.Organize("/src")
	if err != nil {
		t.Fatalf("Organize() error = %v, run should continue past per-file errors", err)
	}

	if stats.TotalFiles != 2 || stats.Moved != 0 || stats.Errors != 2 {
		t.Errorf("stats = %+v, want total=2 moved=0 errors=2", stats)
	}

	// moved = total - duplicates - errors
	if stats.Moved != stats.TotalFiles-stats.Duplicates-stats.Errors {
		t.Errorf("accounting law violated: %+v", stats)
	}
}

func TestOrganize_ProgressUpdates(t *testing.T) {
	fs := newSourceFs(t, map[string][]byte{
		"a.txt": []byte("one"),
		"b.jpg": []byte("two"),
	})

	progressCh := make(chan internal.ProgressUpdate, 10)
	org := New(fs, classifier.Default(), Options{Progress: progressCh})

	stats, err := org.Organize("/src")
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}
	close(progressCh)

	updates := []internal.ProgressUpdate{}
	for update := range progressCh {
		updates = append(updates, update)
	}

	if len(updates) != stats.TotalFiles {
		t.Fatalf("Expected %d progress updates, got %d", stats.TotalFiles, len(updates))
	}

	last := updates[len(updates)-1]
	if last.Processed != 2 || last.Moved != 2 {
		t.Errorf("final update = %+v, want processed=2 moved=2", last)
	}
}
