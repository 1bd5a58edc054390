package graph

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

//go:embed schema.graphqls
var sdl string

// SDL возвращает текст схемы.
func SDL() string {
	return sdl
}

// NewSchema связывает схему с корневым резолвером.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	schema, err := graphql.ParseSchema(sdl, r, graphql.Logger(panicLogger{log: r.log()}))
	if err != nil {
		return nil, fmt.Errorf("could not parse schema: %w", err)
	}
	return schema, nil
}

type panicLogger struct {
	log *zap.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error("panic occurred while resolving", zap.Any("panic", value), zap.Stack("stack"))
}
