package seeder

import "context"

type TableCount struct {
	Table string
	Rows  int
}

// Status is a read-only snapshot of the seeded tables and the rows the seed
// depends on.
type Status struct {
	Tables          []TableCount
	AdminFound      bool
	DeviceTypeFound bool
	MappingsFound   []string
	MappingsMissing []string
}

// Ready reports whether a seed run would pass its preconditions.
func (st *Status) Ready() bool {
	return st.AdminFound && st.DeviceTypeFound
}

func (s *Seeder) Status(ctx context.Context) (*Status, error) {
	st := newStore(s.db.DB, s.db.Dialect, s.log)
	out := &Status{}

	order, err := SeededTables().InsertionOrder()
	if err != nil {
		return nil, err
	}
	for _, table := range order {
		n, err := st.Count(ctx, table)
		if err != nil {
			return nil, err
		}
		out.Tables = append(out.Tables, TableCount{Table: table, Rows: n})
	}

	if _, out.AdminFound, err = st.AdminID(ctx, s.opts.AdminEmail); err != nil {
		return nil, err
	}

	deviceTypeID, found, err := st.DeviceTypeID(ctx, s.opts.DeviceType)
	if err != nil {
		return nil, err
	}
	out.DeviceTypeFound = found
	if !found {
		out.MappingsMissing = append(out.MappingsMissing, MappingTags...)
		return out, nil
	}

	for _, tag := range MappingTags {
		_, ok, err := st.Mapping(ctx, deviceTypeID, tag)
		if err != nil {
			return nil, err
		}
		if ok {
			out.MappingsFound = append(out.MappingsFound, tag)
		} else {
			out.MappingsMissing = append(out.MappingsMissing, tag)
		}
	}

	return out, nil
}
