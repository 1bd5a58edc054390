package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/VitaminP8/postql/graph/model"
	"github.com/VitaminP8/postql/internal/post"
)

type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[int]model.Post
	nextId int // id не переиспользуются, даже после удаления
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[int]model.Post),
		nextId: 1,
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, in post.Input) (*model.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Post{
		ID:      s.nextId,
		Post:    *in.Post,
		Content: *in.Content,
	}
	s.nextId++
	s.posts[p.ID] = p

	return &p, nil
}

func (s *PostMemoryStorage) GetPostById(ctx context.Context, id int) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, post.NewNotFoundError(id)
	}

	return &p, nil
}

func (s *PostMemoryStorage) GetAllPosts(ctx context.Context) ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		p := p
		posts = append(posts, &p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	return posts, nil
}

func (s *PostMemoryStorage) UpdatePost(ctx context.Context, id int, in post.Input) (*model.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, post.NewNotFoundError(id)
	}

	p.Post = *in.Post
	p.Content = *in.Content
	s.posts[id] = p

	return &p, nil
}

func (s *PostMemoryStorage) DeletePostById(ctx context.Context, id int) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, post.NewNotFoundError(id)
	}

	delete(s.posts, id)
	return &p, nil
}
