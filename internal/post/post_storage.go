package post

import (
	"context"

	"github.com/VitaminP8/postql/graph/model"
)

// PostStorage владеет записями постов. Каждый метод - отдельная транзакция,
// наружу отдаются только копии.
type PostStorage interface {
	CreatePost(ctx context.Context, in Input) (*model.Post, error)
	GetPostById(ctx context.Context, id int) (*model.Post, error)
	// GetAllPosts возвращает посты в порядке возрастания id.
	GetAllPosts(ctx context.Context) ([]*model.Post, error)
	UpdatePost(ctx context.Context, id int, in Input) (*model.Post, error)
	// DeletePostById удаляет пост и возвращает его состояние до удаления.
	DeletePostById(ctx context.Context, id int) (*model.Post, error)
}
