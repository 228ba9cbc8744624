// Package crawler slug 收集测试
package crawler

import (
	"reflect"
	"testing"

	"github.com/namhuunam/xxvn-crawler-go/internal/api"
)

// fakeAPI 可编程的假 API 客户端
type fakeAPI struct {
	pages   map[int]*api.Envelope
	details map[string]*api.Envelope
	pageLog []int
}

func (f *fakeAPI) MoviesPage(page int) (*api.Envelope, error) {
	f.pageLog = append(f.pageLog, page)
	env, ok := f.pages[page]
	if !ok {
		return nil, &api.Error{Retryable: true, Msg: "列表页失败"}
	}
	return env, nil
}

func (f *fakeAPI) MovieDetail(slug string) (*api.Envelope, error) {
	env, ok := f.details[slug]
	if !ok {
		return nil, &api.Error{Retryable: true, Msg: "详情失败"}
	}
	return env, nil
}

func listPage(slugs ...string) *api.Envelope {
	env := &api.Envelope{Status: true}
	for _, s := range slugs {
		env.Movies = append(env.Movies, api.ListMovie{Slug: s})
	}
	return env
}

func TestService_CollectSlugs_Order(t *testing.T) {
	fake := &fakeAPI{
		pages: map[int]*api.Envelope{
			3: listPage("phim-a", "phim-b"),
			2: listPage("phim-c"),
			1: listPage("phim-d"),
		},
	}
	svc := NewService(fake, nil, nil)

	slugs := svc.CollectSlugs(3, 1)

	// 页按 3,2,1 降序访问
	if !reflect.DeepEqual(fake.pageLog, []int{3, 2, 1}) {
		t.Errorf("页访问顺序不正确: %v", fake.pageLog)
	}
	// slug 按页序拼接
	expected := []string{"phim-a", "phim-b", "phim-c", "phim-d"}
	if !reflect.DeepEqual(slugs, expected) {
		t.Errorf("slug 顺序不正确: %v", slugs)
	}
}

func TestService_CollectSlugs_PageFailure(t *testing.T) {
	fake := &fakeAPI{
		pages: map[int]*api.Envelope{
			3: listPage("phim-a"),
			// 第 2 页失败
			1: listPage("phim-b"),
		},
	}
	svc := NewService(fake, nil, nil)

	slugs := svc.CollectSlugs(3, 1)

	// 失败页跳过，不中止
	expected := []string{"phim-a", "phim-b"}
	if !reflect.DeepEqual(slugs, expected) {
		t.Errorf("失败页应被跳过: %v", slugs)
	}
	if !reflect.DeepEqual(fake.pageLog, []int{3, 2, 1}) {
		t.Errorf("失败后应继续访问剩余页: %v", fake.pageLog)
	}
}

func TestService_CollectSlugs_EmptySlugsSkipped(t *testing.T) {
	fake := &fakeAPI{
		pages: map[int]*api.Envelope{
			1: listPage("phim-a", "", "phim-b"),
		},
	}
	svc := NewService(fake, nil, nil)

	slugs := svc.CollectSlugs(1, 1)

	expected := []string{"phim-a", "phim-b"}
	if !reflect.DeepEqual(slugs, expected) {
		t.Errorf("空 slug 应被忽略: %v", slugs)
	}
}

func TestService_CollectSlugs_NoDedup(t *testing.T) {
	fake := &fakeAPI{
		pages: map[int]*api.Envelope{
			2: listPage("phim-a"),
			1: listPage("phim-a"),
		},
	}
	svc := NewService(fake, nil, nil)

	slugs := svc.CollectSlugs(2, 1)

	// 跨页重复由下游存在性检查兜底，此处不去重
	if len(slugs) != 2 {
		t.Errorf("收集阶段不应去重: %v", slugs)
	}
}
