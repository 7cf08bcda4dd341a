package pagination

import "testing"

func TestDefaults(t *testing.T) {
	req := PageRequest{}
	req.Defaults()
	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("expected defaults 1/20, got %d/%d", req.Page, req.PageSize)
	}

	req = PageRequest{Page: 3, PageSize: 5}
	req.Defaults()
	if req.Page != 3 || req.PageSize != 5 {
		t.Errorf("explicit values must survive Defaults, got %d/%d", req.Page, req.PageSize)
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Slice(items, PageRequest{Page: 2, PageSize: 2})
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("expected [3 4], got %v", got)
	}

	if got := Slice(items, PageRequest{Page: 3, PageSize: 2}); len(got) != 1 || got[0] != 5 {
		t.Errorf("short last page expected [5], got %v", got)
	}

	if got := Slice(items, PageRequest{Page: 9, PageSize: 2}); len(got) != 0 {
		t.Errorf("page past the end should be empty, got %v", got)
	}
}

func TestPage(t *testing.T) {
	items := []string{"a", "b", "c"}

	page := Page(items, PageRequest{PageSize: 2})
	if page.Page != 1 || page.PageSize != 2 {
		t.Errorf("defaults should apply, got %d/%d", page.Page, page.PageSize)
	}
	if page.TotalItems != 3 || page.TotalPages != 2 {
		t.Errorf("expected 3 items over 2 pages, got %d/%d", page.TotalItems, page.TotalPages)
	}
	if len(page.Data) != 2 || page.Data[0] != "a" {
		t.Errorf("expected first page [a b], got %v", page.Data)
	}

	empty := Page([]string(nil), PageRequest{})
	if empty.Data == nil || len(empty.Data) != 0 {
		t.Errorf("empty input should yield an empty, non-nil page, got %v", empty.Data)
	}
}
