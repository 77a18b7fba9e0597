package seeder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/saherflow/dashseed/internal/database"
)

// errDryRun forces the rollback path of a dry run.
var errDryRun = errors.New("dry run")

type Seeder struct {
	db   *database.DB
	opts Options
	log  *zap.Logger
}

func New(db *database.DB, opts Options, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{
		db:   db,
		opts: opts,
		log:  log,
	}
}

// Seed replaces the widget, dashboard and layout rows in one transaction.
// Nothing is left behind when it returns an error.
func (s *Seeder) Seed(ctx context.Context) (res *Result, err error) {
	color.Cyan("🌱 Seeding widgets and dashboard...")

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, newDatabaseError("acquire connection", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: s.db.Dialect.Isolation})
	if err != nil {
		return nil, newDatabaseError("begin transaction", err)
	}
	color.Cyan("🔒 Transaction started")

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err == nil && s.opts.DryRun {
			err = errDryRun
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("seed failed and rollback failed: %v (original: %w)", rbErr, err)
				return
			}
			if errors.Is(err, errDryRun) {
				color.Yellow("↩️  Dry run, transaction rolled back")
				err = nil
				return
			}
			color.Yellow("🔄 Transaction rolled back")
			res = nil
			return
		}

		if cErr := tx.Commit(); cErr != nil {
			err = newDatabaseError("commit transaction", cErr)
			res = nil
			return
		}
		color.Cyan("🔓 Transaction committed")
	}()

	res, err = s.run(ctx, newStore(tx, s.db.Dialect, s.log))
	return res, err
}

func (s *Seeder) run(ctx context.Context, st *store) (*Result, error) {
	res := &Result{DryRun: s.opts.DryRun}

	adminID, found, err := st.AdminID(ctx, s.opts.AdminEmail)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &PreconditionError{
			Prerequisite: fmt.Sprintf("Admin user %s", s.opts.AdminEmail),
			Remedy:       "run the admin seed",
		}
	}
	s.log.Debug("admin resolved", zap.Int64("id", adminID))

	order, err := SeededTables().DeletionOrder()
	if err != nil {
		return nil, err
	}
	for _, table := range order {
		n, err := st.Clear(ctx, table)
		if err != nil {
			return nil, err
		}
		s.log.Debug("table cleared", zap.String("table", table), zap.Int64("rows", n))
	}
	color.Yellow("🗑️  Cleared %d tables", len(order))

	typeIDs := make(map[string]int64)
	for _, wt := range WidgetTypes() {
		id, err := st.InsertWidgetType(ctx, wt)
		if err != nil {
			return nil, err
		}
		typeIDs[wt.Name] = id
	}
	res.WidgetTypes = len(typeIDs)

	deviceTypeID, found, err := st.DeviceTypeID(ctx, s.opts.DeviceType)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &PreconditionError{
			Prerequisite: fmt.Sprintf("%s device type", s.opts.DeviceType),
			Remedy:       "seed device types",
		}
	}

	mappings := make(Mappings)
	for _, tag := range MappingTags {
		m, ok, err := st.Mapping(ctx, deviceTypeID, tag)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.log.Warn("device data mapping not found", zap.String("tag", tag), zap.Int64("device_type_id", deviceTypeID))
			continue
		}
		mappings[tag] = m
	}

	widgets, skipped := BuildWidgets(Candidates(), Env{DeviceTypeID: deviceTypeID, Mappings: mappings})
	res.SkippedWidgets = skipped

	defIDs := make(map[string]int64, len(widgets))
	for _, w := range widgets {
		typeID, ok := typeIDs[w.TypeName]
		if !ok {
			return nil, fmt.Errorf("widget %s references unknown widget type %s", w.Name, w.TypeName)
		}
		id, err := st.InsertWidgetDefinition(ctx, w, typeID, adminID)
		if err != nil {
			return nil, err
		}
		defIDs[w.Name] = id
	}
	res.WidgetDefinitions = len(defIDs)

	dashboardID, err := st.InsertDashboard(ctx, s.opts.DashboardName, s.opts.DashboardDescription, adminID)
	if err != nil {
		return nil, err
	}
	res.Dashboards = 1

	for _, p := range Layout() {
		defID, ok := defIDs[p.Widget]
		if !ok {
			color.Yellow("⚠️  Skipping layout for '%s' - widget definition not found", p.Widget)
			s.log.Warn("layout skipped", zap.String("widget", p.Widget))
			res.SkippedPlacements = append(res.SkippedPlacements, p.Widget)
			continue
		}
		if _, err := st.InsertLayout(ctx, dashboardID, defID, p); err != nil {
			return nil, err
		}
		res.Layouts++
	}

	return res, nil
}
