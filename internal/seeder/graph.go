package seeder

import "fmt"

// TableGraph orders tables by their foreign key dependencies. Tables are
// visited in the order they were added, so the result is deterministic.
type TableGraph struct {
	deps  map[string][]string
	names []string
}

func NewTableGraph() *TableGraph {
	return &TableGraph{
		deps: make(map[string][]string),
	}
}

// AddTable registers a table and the tables it references.
func (g *TableGraph) AddTable(name string, references ...string) {
	if _, exists := g.deps[name]; !exists {
		g.names = append(g.names, name)
	}
	g.deps[name] = append(g.deps[name], references...)
}

// InsertionOrder returns parents before children.
func (g *TableGraph) InsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		temp[tableName] = true
		for _, dep := range g.deps[tableName] {
			if dep != tableName {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// DeletionOrder returns children before parents.
func (g *TableGraph) DeletionOrder() ([]string, error) {
	order, err := g.InsertionOrder()
	if err != nil {
		return nil, err
	}
	reversed := make([]string, len(order))
	for i, name := range order {
		reversed[len(order)-1-i] = name
	}
	return reversed, nil
}
