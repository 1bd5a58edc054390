package server

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gorilla/mux"
	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

const GraphQLPath = "/graphql"

type Options struct {
	Schema        *graphql.Schema
	Log           *zap.Logger
	AllowedOrigin string
}

// NewRouter: GraphQL на /graphql, Playground на /.
func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(Recoverer(log)), mux.MiddlewareFunc(RequestLogger(log)))

	gql := &GraphQLHandler{Schema: opts.Schema, Log: log}
	r.Handle(GraphQLPath, CORS(opts.AllowedOrigin)(gql)).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	r.Handle("/", playground.Handler("GraphQL Playground", GraphQLPath)).Methods(http.MethodGet)

	return r
}
