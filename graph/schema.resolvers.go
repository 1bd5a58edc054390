package graph

import (
	"context"
	"fmt"
	"math"

	"github.com/VitaminP8/postql/graph/model"
	"github.com/VitaminP8/postql/internal/post"
)

// PostInput - аргумент input мутаций create_post и update_post.
type PostInput struct {
	Post    string
	Content string
}

func (in PostInput) toInput() post.Input {
	return post.NewInput(in.Post, in.Content)
}

// PostResolver отдает поля типа Post.
type PostResolver struct {
	p *model.Post
}

func NewPostResolver(p *model.Post) *PostResolver {
	return &PostResolver{p: p}
}

// ID - в схеме Int, поэтому id больше math.MaxInt32 отдается ошибкой, а не обрезается.
func (r *PostResolver) ID() (int32, error) {
	if r.p.ID > math.MaxInt32 || r.p.ID < math.MinInt32 {
		return 0, fmt.Errorf("post id %d does not fit into Int", r.p.ID)
	}
	return int32(r.p.ID), nil
}

func (r *PostResolver) Post() string {
	return r.p.Post
}

func (r *PostResolver) Content() string {
	return r.p.Content
}

// GetPosts is the resolver for the getPosts field.
func (r *Resolver) GetPosts(ctx context.Context) ([]*PostResolver, error) {
	posts, err := r.PostStore.GetAllPosts(ctx)
	if err != nil {
		return nil, r.toGraphQLError("getPosts", err)
	}

	results := make([]*PostResolver, 0, len(posts))
	for _, p := range posts {
		results = append(results, NewPostResolver(p))
	}
	return results, nil
}

// GetPost is the resolver for the getPost field.
func (r *Resolver) GetPost(ctx context.Context, args struct{ ID int32 }) (*PostResolver, error) {
	p, err := r.PostStore.GetPostById(ctx, int(args.ID))
	if err != nil {
		return nil, r.toGraphQLError("getPost", err)
	}
	return NewPostResolver(p), nil
}

// CreatePost is the resolver for the create_post field. Input проверяет хранилище.
func (r *Resolver) CreatePost(ctx context.Context, args struct{ Input PostInput }) (*PostResolver, error) {
	p, err := r.PostStore.CreatePost(ctx, args.Input.toInput())
	if err != nil {
		return nil, r.toGraphQLError("create_post", err)
	}
	return NewPostResolver(p), nil
}

// UpdatePost is the resolver for the update_post field.
func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID    int32
	Input PostInput
}) (*PostResolver, error) {
	p, err := r.PostStore.UpdatePost(ctx, int(args.ID), args.Input.toInput())
	if err != nil {
		return nil, r.toGraphQLError("update_post", err)
	}
	return NewPostResolver(p), nil
}

// DeletePost is the resolver for the delete_post field. Возвращает пост в том виде,
// в каком он был до удаления.
func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID int32 }) (*PostResolver, error) {
	p, err := r.PostStore.DeletePostById(ctx, int(args.ID))
	if err != nil {
		return nil, notFoundStatus(r.toGraphQLError("delete_post", err))
	}
	return NewPostResolver(p), nil
}
