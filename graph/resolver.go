package graph

import (
	"go.uber.org/zap"

	"github.com/VitaminP8/postql/internal/post"
)

// Resolver служит корневой точкой для всех резолверов Query и Mutation.
// Хранилище передается снаружи, глобального состояния нет.
type Resolver struct {
	PostStore post.PostStorage
	Log       *zap.Logger
}

func NewResolver(store post.PostStorage, log *zap.Logger) *Resolver {
	return &Resolver{
		PostStore: store,
		Log:       log,
	}
}

func (r *Resolver) log() *zap.Logger {
	if r.Log == nil {
		return zap.NewNop()
	}
	return r.Log
}
