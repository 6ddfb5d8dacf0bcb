package classifier

import (
	"testing"
)

func TestClassify_KnownExtensions(t *testing.T) {
	table := Default()

	cases := []struct {
		ext  string
		want string
	}{
		{".pdf", "Documents"},
		{".txt", "Documents"},
		{".jpg", "Images"},
		{".png", "Images"},
		{".mp4", "Videos"},
		{".mp3", "Audio"},
		{".gz", "Archives"},
		{".zip", "Archives"},
		{".go", "Code"},
		{".xyz", "Other"},
		{"", "Other"},
	}

	for _, c := range cases {
		if got := table.Classify(c.ext); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.ext, got, c.want)
		}
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	table := Default()

	cases := []struct {
		ext  string
		want string
	}{
		{".PDF", "Documents"},
		{".JPG", "Images"},
		{".Mp4", "Videos"},
	}

	for _, c := range cases {
		if got := table.Classify(c.ext); got != c.want {
			t.Errorf("Classify(%q) = %q, want %q", c.ext, got, c.want)
		}
	}
}

func TestClassifyPath(t *testing.T) {
	table := Default()

	cases := []struct {
		path string
		want string
	}{
		{"report.PDF", "Documents"},
		{"archive.tar.gz", "Archives"}, // 只取最后一段扩展名
		{"photo.JPG", "Images"},
		{"noext", "Other"},
		{"/some/dir/song.mp3", "Audio"},
	}

	for _, c := range cases {
		if got := table.ClassifyPath(c.path); got != c.want {
			t.Errorf("ClassifyPath(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// 同一扩展名出现在两个分类中时，声明顺序靠前的生效
	table := NewTable([]Entry{
		{"First", []string{".dat"}},
		{"Second", []string{".dat"}},
	})

	if got := table.Classify(".dat"); got != "First" {
		t.Errorf("Classify(.dat) = %q, want First", got)
	}
}

func TestNames_OrderAndOther(t *testing.T) {
	names := Default().Names()

	if len(names) == 0 {
		t.Fatal("Names() returned empty slice")
	}

	if names[0] != "Documents" {
		t.Errorf("first category = %q, want Documents", names[0])
	}

	if names[len(names)-1] != "Other" {
		t.Errorf("last category = %q, want Other", names[len(names)-1])
	}

	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate category name: %s", name)
		}
		seen[name] = true
	}
}
