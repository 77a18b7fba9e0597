package seeder

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/saherflow/dashseed/internal/database"
)

// querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// store runs the seeder's statements against one querier.
type store struct {
	q       querier
	dialect database.Dialect
	qb      squirrel.StatementBuilderType
	log     *zap.Logger
}

func newStore(q querier, dialect database.Dialect, log *zap.Logger) *store {
	return &store{
		q:       q,
		dialect: dialect,
		qb:      dialect.Builder(),
		log:     log,
	}
}

func (s *store) trace(query string, args []any) {
	s.log.Debug("sql", zap.String("query", query), zap.Any("args", args))
}

func (s *store) lookupID(ctx context.Context, step string, b squirrel.SelectBuilder) (int64, bool, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, false, newDatabaseError(step, err)
	}
	s.trace(query, args)

	var id int64
	err = s.q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, newDatabaseError(step, err)
	}
	return id, true, nil
}

func (s *store) AdminID(ctx context.Context, email string) (int64, bool, error) {
	return s.lookupID(ctx, "look up admin user", s.qb.
		Select("id").
		From(s.dialect.Quote("user")).
		Where(squirrel.Eq{"email": email}).
		Limit(1))
}

func (s *store) DeviceTypeID(ctx context.Context, typeName string) (int64, bool, error) {
	return s.lookupID(ctx, "look up device type", s.qb.
		Select("id").
		From("device_type").
		Where(squirrel.Eq{"type_name": typeName}).
		Limit(1))
}

func (s *store) Mapping(ctx context.Context, deviceTypeID int64, tag string) (Mapping, bool, error) {
	step := "look up " + tag + " mapping"
	query, args, err := s.qb.
		Select("id", "variable_name", "variable_tag", "unit").
		From("device_data_mapping").
		Where(squirrel.Eq{"device_type_id": deviceTypeID, "variable_tag": tag}).
		Limit(1).
		ToSql()
	if err != nil {
		return Mapping{}, false, newDatabaseError(step, err)
	}
	s.trace(query, args)

	var (
		m    Mapping
		unit sql.NullString
	)
	err = s.q.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.VariableName, &m.VariableTag, &unit)
	if errors.Is(err, sql.ErrNoRows) {
		return Mapping{}, false, nil
	}
	if err != nil {
		return Mapping{}, false, newDatabaseError(step, err)
	}
	if unit.Valid {
		m.Unit = &unit.String
	}
	return m, true, nil
}

// Clear deletes every row of table and returns how many went.
func (s *store) Clear(ctx context.Context, table string) (int64, error) {
	step := "clear " + table
	query, args, err := s.qb.Delete(s.dialect.Quote(table)).ToSql()
	if err != nil {
		return 0, newDatabaseError(step, err)
	}
	s.trace(query, args)

	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, newDatabaseError(step, err)
	}
	// the count only feeds diagnostics, some drivers cannot report it
	n, err := res.RowsAffected()
	if err != nil {
		s.log.Debug("rows affected unavailable", zap.String("table", table), zap.Error(err))
	}
	return n, nil
}

func (s *store) Count(ctx context.Context, table string) (int, error) {
	query, args, err := s.qb.Select("COUNT(*)").From(s.dialect.Quote(table)).ToSql()
	if err != nil {
		return 0, newDatabaseError("count "+table, err)
	}
	s.trace(query, args)

	var n int
	if err := s.q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, newDatabaseError("count "+table, err)
	}
	return n, nil
}

// insert runs b and returns the generated id, through RETURNING where the
// dialect has it and LastInsertId otherwise.
func (s *store) insert(ctx context.Context, step string, b squirrel.InsertBuilder) (int64, error) {
	if s.dialect.Returning {
		query, args, err := b.Suffix("RETURNING id").ToSql()
		if err != nil {
			return 0, newDatabaseError(step, err)
		}
		s.trace(query, args)

		var id int64
		if err := s.q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, newDatabaseError(step, err)
		}
		return id, nil
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, newDatabaseError(step, err)
	}
	s.trace(query, args)

	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, newDatabaseError(step, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, newDatabaseError(step, err)
	}
	return id, nil
}

func (s *store) InsertWidgetType(ctx context.Context, wt WidgetType) (int64, error) {
	step := "insert widget type " + wt.Name
	cfg, err := marshalJSON(wt.DefaultConfig)
	if err != nil {
		return 0, newDatabaseError(step, err)
	}
	return s.insert(ctx, step, s.qb.
		Insert(TableWidgetTypes).
		Columns("name", "component_name", "default_config").
		Values(wt.Name, wt.ComponentName, cfg))
}

func (s *store) InsertWidgetDefinition(ctx context.Context, def WidgetDefinition, typeID, createdBy int64) (int64, error) {
	step := "insert widget definition " + def.Name
	cfg, err := marshalJSON(def.DataSourceConfig)
	if err != nil {
		return 0, newDatabaseError(step, err)
	}
	return s.insert(ctx, step, s.qb.
		Insert(TableWidgetDefinitions).
		Columns("name", "description", "widget_type_id", "data_source_config", "created_by").
		Values(def.Name, def.Description, typeID, cfg, createdBy))
}

func (s *store) InsertDashboard(ctx context.Context, name, description string, createdBy int64) (int64, error) {
	return s.insert(ctx, "insert dashboard "+name, s.qb.
		Insert(TableDashboards).
		Columns("name", "description", "created_by").
		Values(name, description, createdBy))
}

func (s *store) InsertLayout(ctx context.Context, dashboardID, widgetDefinitionID int64, p Placement) (int64, error) {
	step := "insert layout for " + p.Widget
	cfg, err := marshalJSON(p.LayoutConfig())
	if err != nil {
		return 0, newDatabaseError(step, err)
	}
	return s.insert(ctx, step, s.qb.
		Insert(TableDashboardLayouts).
		Columns("dashboard_id", "widget_definition_id", "layout_config", "display_order").
		Values(dashboardID, widgetDefinitionID, cfg, p.Order))
}

func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
