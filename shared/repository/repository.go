package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"sitepro/infras/otel"
	"sitepro/infras/postgres"
	"sitepro/shared/constant"
	"sitepro/shared/dto"
	"sitepro/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter   = errors.New("required filter")
	errRequiredConflict = errors.New("required conflict columns")
)

// Expr is a raw SQL right hand side for an update column, e.g. an increment.
// Its named args are merged into the statement args.
type Expr struct {
	SQL  string
	Args map[string]any
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// Repository runs named-parameter CRUD statements for the row type T, whose db tags
// name the table columns. Reads go to the replica and writes to the primary.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   string
	entity  string
	columns []string
}

func NewRepository[T any](entityName, tableName string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:      dbConnection,
		otel:    otl,
		table:   tableName,
		entity:  entityName,
		columns: dbColumns(reflect.TypeOf(zero)),
	}
}

// dbColumns collects db tags in field order, descending into embedded structs.
func dbColumns(typ reflect.Type) []string {
	var columns []string

	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

// statement joins the non-empty clauses with single spaces.
func statement(clauses ...string) string {
	return strings.Join(slices.DeleteFunc(clauses, func(c string) bool { return c == "" }), " ")
}

func (repo *Repository[T]) span(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+repo.entity+"."+op)
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) where(filter dto.FilterGroup) (string, map[string]any) {
	clause, args := filter.GetWhereClause()
	if clause == "" {
		return "", map[string]any{}
	}

	return "WHERE " + clause, args
}

func (repo *Repository[T]) selectColumns(only ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		selected = append(selected, repo.table+"."+col)
	}

	return strings.Join(selected, ", ")
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, ex execer, action, query string, arg any) (int64, error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := ex.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, repo.fail(scope, action, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "read affected rows", err)
	}

	return affected, nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.span(ctx, "Insert")
	defer scope.End()

	_, err := repo.exec(ctx, scope, repo.db.Write, "insert data", repo.insertQuery(), model)

	return err
}

func (repo *Repository[T]) InsertTx(ctx context.Context, tx *sqlx.Tx, model T) error {
	ctx, scope := repo.span(ctx, "InsertTx")
	defer scope.End()

	_, err := repo.exec(ctx, scope, tx, "insert data", repo.insertQuery(), model)

	return err
}

// InsertBulk writes every model in one multi-row statement.
func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	ctx, scope := repo.span(ctx, "InsertBulk")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	_, err := repo.exec(ctx, scope, repo.db.Write, "bulk insert data", repo.insertQuery(), models)

	return err
}

// Upsert inserts model, or on a conflict over conflictColumns overwrites updateColumns with the new values.
func (repo *Repository[T]) Upsert(ctx context.Context, model T, conflictColumns, updateColumns []string) error {
	ctx, scope := repo.span(ctx, "Upsert")
	defer scope.End()

	if len(conflictColumns) == 0 {
		return errRequiredConflict
	}

	target := strings.Join(conflictColumns, ", ")
	action := "DO NOTHING"

	if len(updateColumns) > 0 {
		sets := make([]string, len(updateColumns))
		for i, col := range updateColumns {
			sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
		}

		action = "DO UPDATE SET " + strings.Join(sets, ", ")
	}

	query := statement(repo.insertQuery(), fmt.Sprintf("ON CONFLICT (%s)", target), action)
	_, err := repo.exec(ctx, scope, repo.db.Write, "upsert data", query, model)

	return err
}

// InsertIgnore inserts model unless a row already holds the same conflictColumns.
// It reports whether a new row was written.
func (repo *Repository[T]) InsertIgnore(ctx context.Context, model T, conflictColumns ...string) (bool, error) {
	ctx, scope := repo.span(ctx, "InsertIgnore")
	defer scope.End()

	if len(conflictColumns) == 0 {
		return false, errRequiredConflict
	}

	query := statement(repo.insertQuery(), fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", strings.Join(conflictColumns, ", ")))

	affected, err := repo.exec(ctx, scope, repo.db.Write, "insert data", query, model)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.span(ctx, "Get")
	defer scope.End()

	var model T

	where, args := repo.where(filter)
	query := statement("SELECT", repo.selectColumns(columns...), "FROM", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

// GetAll lists rows matching filter in params order. A positive Limit pages the result.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.span(ctx, "GetAll")
	defer scope.End()

	where, args := repo.where(filter)

	var page string

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()
		page = "LIMIT :limit OFFSET :offset"
	}

	query := statement("SELECT", repo.selectColumns(columns...), "FROM", repo.table, where, params.OrderBy(), page)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []T

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return nil, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) update(ctx context.Context, scope otel.Scope, ex execer, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	where, args := repo.where(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	sets := make([]string, 0, len(mod))

	for _, col := range slices.Sorted(maps.Keys(mod)) {
		if expr, ok := mod[col].(Expr); ok {
			sets = append(sets, fmt.Sprintf("%s = %s", col, expr.SQL))
			maps.Copy(args, expr.Args)

			continue
		}

		sets = append(sets, fmt.Sprintf("%s = :%s", col, col))
		args[col] = mod[col]
	}

	query := statement("UPDATE", repo.table, "SET", strings.Join(sets, ", "), where)

	return repo.exec(ctx, scope, ex, "update data", query, args)
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "Update")
	defer scope.End()

	_, err := repo.update(ctx, scope, repo.db.Write, mod, filter)

	return err
}

// UpdateAffected reports how many rows the update touched. Zero means the filter no longer matched,
// which status guarded callers treat as a lost race.
func (repo *Repository[T]) UpdateAffected(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.span(ctx, "UpdateAffected")
	defer scope.End()

	return repo.update(ctx, scope, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateAffectedTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.span(ctx, "UpdateAffectedTx")
	defer scope.End()

	return repo.update(ctx, scope, tx, mod, filter)
}
