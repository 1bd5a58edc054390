package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/VitaminP8/postql/graph/model"
	"github.com/VitaminP8/postql/internal/post"
)

// MockPostStorage хранит посты в map. Если Err задан, любой вызов возвращает его
// обернутым в post.StorageError.
type MockPostStorage struct {
	posts  map[int]*model.Post
	nextID int
	mu     sync.Mutex

	Err error
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{
		posts: make(map[int]*model.Post),
	}
}

func (m *MockPostStorage) fail(op string) error {
	if m.Err == nil {
		return nil
	}
	return &post.StorageError{Op: op, Err: m.Err}
}

func (m *MockPostStorage) CreatePost(ctx context.Context, in post.Input) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail("create post"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m.nextID++
	p := &model.Post{
		ID:      m.nextID,
		Post:    *in.Post,
		Content: *in.Content,
	}
	m.posts[p.ID] = p

	cp := *p
	return &cp, nil
}

func (m *MockPostStorage) GetPostById(ctx context.Context, id int) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail("get post by id"); err != nil {
		return nil, err
	}

	p, ok := m.posts[id]
	if !ok {
		return nil, post.NewNotFoundError(id)
	}
	cp := *p
	return &cp, nil
}

func (m *MockPostStorage) GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail("get posts"); err != nil {
		return nil, err
	}

	posts := make([]*model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		cp := *p
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (m *MockPostStorage) UpdatePost(ctx context.Context, id int, in post.Input) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail("update post"); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, ok := m.posts[id]
	if !ok {
		return nil, post.NewNotFoundError(id)
	}
	p.Post = *in.Post
	p.Content = *in.Content

	cp := *p
	return &cp, nil
}

func (m *MockPostStorage) DeletePostById(ctx context.Context, id int) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.fail("delete post"); err != nil {
		return nil, err
	}

	p, ok := m.posts[id]
	if !ok {
		return nil, post.NewNotFoundError(id)
	}
	delete(m.posts, id)
	return p, nil
}
