package repository

import (
	"fmt"
	"strings"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// setBuilder collects "column = $n" assignments for partial updates.
type setBuilder struct {
	sets []string
	args []interface{}
}

func (b *setBuilder) add(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// build returns the UPDATE statement for table, always touching updated_at.
func (b *setBuilder) build(table string, id int) (string, []interface{}) {
	sets := append(b.sets, "updated_at = NOW()")
	args := append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		table,
		strings.Join(sets, ", "),
		len(args),
	)
	return query, args
}

// whereBuilder collects equality filters.
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

func (b *whereBuilder) eq(column string, value interface{}) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *whereBuilder) String() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// orderClause resolves a sort key against the allowed columns.
func orderClause(orderBy string, prefix string) (string, error) {
	switch orderBy {
	case "", "id":
		return " ORDER BY " + prefix + "id", nil
	case "name":
		return " ORDER BY " + prefix + "name, " + prefix + "id", nil
	default:
		return "", fmt.Errorf("unsupported order %q", orderBy)
	}
}
