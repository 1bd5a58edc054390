package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.uber.org/zap"
)

// Request - тело GraphQL-over-HTTP запроса.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler исполняет запросы к схеме. GET берет параметры из URL,
// POST - из тела application/json.
type GraphQLHandler struct {
	Schema *graphql.Schema
	Log    *zap.Logger
}

func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, status, err := decodeRequest(r)
	if err != nil {
		switch {
		case errors.Is(err, errMutationOverGET):
			w.Header().Set("Allow", http.MethodPost)
		case status == http.StatusMethodNotAllowed:
			w.Header().Set("Allow", "GET, POST")
		}
		h.write(w, status, &graphql.Response{
			Errors: []*gqlerrors.QueryError{gqlerrors.Errorf("%s", err)},
		})
		return
	}

	resp := h.Schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
	h.write(w, responseStatus(resp), resp)
}

func (h *GraphQLHandler) write(w http.ResponseWriter, status int, resp *graphql.Response) {
	body, err := json.Marshal(resp)
	if err != nil {
		h.log().Error("could not encode graphql response", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log().Warn("could not write graphql response", zap.Error(err))
	}
}

func (h *GraphQLHandler) log() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

var errMutationOverGET = errors.New("mutations are only accepted over POST")

// isMutation сообщает, выбрана ли в документе мутация. Документ, который не
// разбирается, оставляем graphql-go: он вернет ошибку разбора сам.
func isMutation(query, operationName string) bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return false
	}

	if operationName == "" {
		for _, op := range doc.Operations {
			if op.Operation == ast.Mutation {
				return true
			}
		}
		return false
	}

	op := doc.Operations.ForName(operationName)
	return op != nil && op.Operation == ast.Mutation
}

func decodeRequest(r *http.Request) (*Request, int, error) {
	req := &Request{}

	switch r.Method {
	case http.MethodGet:
		query := r.URL.Query()
		req.Query = query.Get("query")
		req.OperationName = query.Get("operationName")
		if variables := query.Get("variables"); variables != "" {
			if err := json.Unmarshal([]byte(variables), &req.Variables); err != nil {
				return nil, http.StatusBadRequest, fmt.Errorf("variables are not valid JSON: %w", err)
			}
		}

	case http.MethodPost:
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return nil, http.StatusUnsupportedMediaType, fmt.Errorf("unable to parse media type: %w", err)
		}
		if mediaType != "application/json" {
			return nil, http.StatusUnsupportedMediaType,
				errors.New("unrecognised Content-Type, use application/json for GraphQL requests")
		}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("not a valid GraphQL request body: %w", err)
		}

	default:
		return nil, http.StatusMethodNotAllowed,
			errors.New("unrecognised request method, use GET or POST for GraphQL requests")
	}

	if req.Query == "" {
		return nil, http.StatusBadRequest, errors.New("query is required")
	}
	if r.Method == http.MethodGet && isMutation(req.Query, req.OperationName) {
		return nil, http.StatusMethodNotAllowed, errMutationOverGET
	}
	return req, 0, nil
}

// responseStatus - 200, если ни одна ошибка резолвера не требует другого статуса.
func responseStatus(resp *graphql.Response) int {
	for _, qErr := range resp.Errors {
		if qErr.ResolverError == nil {
			continue
		}
		var withStatus interface{ HTTPStatus() int }
		if errors.As(qErr.ResolverError, &withStatus) && withStatus.HTTPStatus() != 0 {
			return withStatus.HTTPStatus()
		}
	}
	return http.StatusOK
}
