// AngelaMos | 2026
// handler.go

package graph

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"errors"
	"fmt"
	"net/http"
	"strings"

	graphql "github.com/graph-gophers/graphql-go"
	gqlotel "github.com/graph-gophers/graphql-go/trace/otel"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/isiolocityfc/backend/internal/auth"
	"github.com/isiolocityfc/backend/internal/middleware"
)

//go:embed schema.graphql
var schemaSDL string

const maxBodyBytes = 1 << 20

type Options struct {
	MaxDepth      int
	Introspection bool
}

func NewSchema(root *Resolver, opts Options) (*graphql.Schema, error) {
	schemaOpts := []graphql.SchemaOpt{
		graphql.UseFieldResolvers(),
		graphql.Tracer(gqlotel.DefaultTracer()),
		graphql.Logger(&panicLogger{logger: root.logger}),
	}
	if opts.MaxDepth > 0 {
		schemaOpts = append(schemaOpts, graphql.MaxDepth(opts.MaxDepth))
	}
	if !opts.Introspection {
		schemaOpts = append(schemaOpts, graphql.DisableIntrospection())
	}

	return graphql.ParseSchema(schemaSDL, root, schemaOpts...)
}

type panicLogger struct {
	logger *slog.Logger
}

func (l *panicLogger) LogPanic(ctx context.Context, value any) {
	l.logger.ErrorContext(ctx, "graphql resolver panic",
		"panic", value,
		"request_id", middleware.GetRequestID(ctx),
	)
}

// Handler serves GraphQL over HTTP. POST carries a JSON body; GET takes
// query, operationName and variables as URL parameters and only runs
// queries.
type Handler struct {
	schema  *graphql.Schema
	metrics *middleware.Metrics
}

func NewHandler(schema *graphql.Schema, metrics *middleware.Metrics) *Handler {
	return &Handler{schema: schema, metrics: metrics}
}

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request

	switch r.Method {
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			writeRequestError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if vars := q.Get("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				writeRequestError(w, http.StatusBadRequest, "invalid variables")
				return
			}
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		writeRequestError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeRequestError(w, http.StatusBadRequest, "query is required")
		return
	}

	opType, err := operationType(req.Query, req.OperationName)
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, err.Error())
		return
	}
	if r.Method == http.MethodGet && opType != ast.Query {
		w.Header().Set("Allow", "POST")
		writeRequestError(w, http.StatusMethodNotAllowed, "mutations require POST")
		return
	}

	ctx := withClient(r.Context(), auth.ClientInfo{
		UserAgent: r.UserAgent(),
		IPAddress: middleware.ClientIP(r),
	})

	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)

	if h.metrics != nil {
		h.metrics.RecordGraphQL(string(opType), req.OperationName, len(resp.Errors) > 0)
	}

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // nothing useful to do once the status line is out
	_ = json.NewEncoder(w).Encode(resp)
}

func writeRequestError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort error body
	_ = json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]string{{"message": message}},
	})
}

var errNoOperation = errors.New("no operation to run")

// operationType parses the document and reports the kind of the operation
// that operationName selects. An empty name only resolves when the document
// holds a single operation.
func operationType(query, operationName string) (ast.Operation, error) {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Input: query})
	if gqlErr != nil {
		return "", fmt.Errorf("parse query: %s", gqlErr.Message)
	}

	op := doc.Operations.ForName(operationName)
	if op == nil {
		if operationName != "" {
			return "", fmt.Errorf("%w: unknown operation %q", errNoOperation, operationName)
		}
		return "", errNoOperation
	}
	return op.Operation, nil
}

type clientKey struct{}

func withClient(ctx context.Context, info auth.ClientInfo) context.Context {
	return context.WithValue(ctx, clientKey{}, info)
}

func clientFrom(ctx context.Context) auth.ClientInfo {
	info, _ := ctx.Value(clientKey{}).(auth.ClientInfo)
	return info
}
